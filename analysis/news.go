package analysis

import (
	"math"
	"strings"
)

// Relevance measures how much of the ESG keyword vocabulary appears in
// title + content. Each keyword contributes its word count at most once,
// however often it repeats; the total is capped at 1 and rounded to two
// decimals.
func Relevance(title, content string) float64 {
	combined := strings.ToLower(title + " " + content)

	matched := 0
	for _, keyword := range esgKeywords {
		if strings.Contains(combined, keyword) {
			matched += len(strings.Fields(keyword))
		}
	}

	return round2(math.Min(float64(matched)/10, 1))
}

// Topics assigns fixed topic labels by keyword presence. Labels come out in
// rule-table order regardless of where the keywords occur in the text.
func Topics(content string) []string {
	lower := strings.ToLower(content)

	var topics []string
	for _, rule := range topicRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				topics = append(topics, rule.topic)
				break
			}
		}
	}
	return topics
}

// AnalyzeArticle runs the full news pipeline over one article.
func AnalyzeArticle(title, content string) NewsSignal {
	return NewsSignal{
		Sentiment:    DocumentSentiment(content),
		ESGRelevance: Relevance(title, content),
		Topics:       Topics(content),
	}
}
