package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldAlert(t *testing.T) {
	assert.True(t, ShouldAlert(NewsSignal{Sentiment: -0.6, ESGRelevance: 0.75}))

	// Both thresholds are strict.
	assert.False(t, ShouldAlert(NewsSignal{Sentiment: -0.5, ESGRelevance: 0.75}))
	assert.False(t, ShouldAlert(NewsSignal{Sentiment: -0.6, ESGRelevance: 0.7}))
	assert.False(t, ShouldAlert(NewsSignal{Sentiment: 0.2, ESGRelevance: 0.9}))
}

func TestTriggerAlertsFanOut(t *testing.T) {
	sig := NewsSignal{Sentiment: -0.6, ESGRelevance: 0.75}

	alerts := TriggerAlerts(sig, "Acme Corp", "article-1", "Acme fined over spill", "Reuters",
		[]string{"user-1", "user-2"})
	require.Len(t, alerts, 2)

	for i, userID := range []string{"user-1", "user-2"} {
		alert := alerts[i]
		assert.Equal(t, userID, alert.UserID)
		assert.Equal(t, AlertTypeNewReport, alert.Type)
		assert.Equal(t, SeverityWarning, alert.Severity)
		assert.Equal(t, "Negative ESG News: Acme Corp", alert.Title)
		assert.Contains(t, alert.Message, "Acme fined over spill")
		assert.Equal(t, "article-1", alert.Data.ArticleID)
		assert.Equal(t, -0.6, alert.Data.Sentiment)
		assert.Equal(t, "Reuters", alert.Data.Source)
	}
}

func TestTriggerAlertsBelowThreshold(t *testing.T) {
	sig := NewsSignal{Sentiment: -0.3, ESGRelevance: 0.9}
	assert.Empty(t, TriggerAlerts(sig, "Acme Corp", "article-1", "Mild news", "Reuters",
		[]string{"user-1"}))
}

func TestTriggerAlertsNoSubscribers(t *testing.T) {
	sig := NewsSignal{Sentiment: -0.9, ESGRelevance: 0.95}
	assert.Empty(t, TriggerAlerts(sig, "Acme Corp", "article-1", "Bad news", "Reuters", nil))
}

func TestTriggerAlertsUnknownCompany(t *testing.T) {
	sig := NewsSignal{Sentiment: -0.9, ESGRelevance: 0.95}

	alerts := TriggerAlerts(sig, "", "article-1", "Bad news", "Reuters", []string{"user-1"})
	require.Len(t, alerts, 1)
	assert.Equal(t, "Negative ESG News: Company", alerts[0].Title)
}
