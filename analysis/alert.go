package analysis

import "fmt"

// Alert thresholds: strongly negative sentiment on a highly ESG-relevant
// article.
const (
	alertSentimentThreshold = -0.5
	alertRelevanceThreshold = 0.7
)

// ShouldAlert reports whether a news signal crosses the alert thresholds.
func ShouldAlert(sig NewsSignal) bool {
	return sig.Sentiment < alertSentimentThreshold && sig.ESGRelevance > alertRelevanceThreshold
}

// TriggerAlerts fans a qualifying news signal out to every watching
// subscriber, one alert command each. Emission is not deduplicated;
// replaying the same article produces duplicate commands.
func TriggerAlerts(sig NewsSignal, companyName, articleID, articleTitle, source string, subscriberIDs []string) []AlertCommand {
	if !ShouldAlert(sig) {
		return nil
	}

	if companyName == "" {
		companyName = "Company"
	}

	alerts := make([]AlertCommand, 0, len(subscriberIDs))
	for _, userID := range subscriberIDs {
		alerts = append(alerts, AlertCommand{
			UserID:   userID,
			Type:     AlertTypeNewReport,
			Severity: SeverityWarning,
			Title:    fmt.Sprintf("Negative ESG News: %s", companyName),
			Message:  fmt.Sprintf("New article with negative sentiment detected: %s", articleTitle),
			Data: AlertData{
				ArticleID: articleID,
				Sentiment: sig.Sentiment,
				Source:    source,
			},
		})
	}
	return alerts
}
