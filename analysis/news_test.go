package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelevanceCountsKeywordsOnce(t *testing.T) {
	// climate + carbon + emission = 3 points, repetition adds nothing.
	content := "carbon carbon carbon emission levels linked to climate"
	assert.Equal(t, 0.3, Relevance("Quarterly update", content))
}

func TestRelevanceMultiWordKeyword(t *testing.T) {
	// "human rights" contributes 2, "labor" 1.
	assert.Equal(t, 0.3, Relevance("", "a human rights and labor dispute"))
}

func TestRelevanceTitleCounts(t *testing.T) {
	assert.Equal(t, 0.1, Relevance("Climate summit opens", "Delegates arrived on Monday"))
}

func TestRelevanceCapped(t *testing.T) {
	content := strings.Join(esgKeywords, " ")
	assert.Equal(t, 1.0, Relevance("", content))
}

func TestRelevanceZero(t *testing.T) {
	assert.Equal(t, 0.0, Relevance("Market report", "Shares traded sideways all week"))
}

func TestTopicsTableOrder(t *testing.T) {
	content := "The board praised solar output while carbon levels fell"

	topics := Topics(content)
	assert.Equal(t, []string{
		"Climate Change",
		"Renewable Energy",
		"Corporate Governance",
	}, topics)
}

func TestTopicsSingleMatchPerRule(t *testing.T) {
	// Several keywords of one rule still yield the topic once.
	topics := Topics("waste piles and recycling plants in a circular economy")
	assert.Equal(t, []string{"Waste & Recycling"}, topics)
}

func TestTopicsNone(t *testing.T) {
	assert.Empty(t, Topics("Quarterly revenue rose slightly"))
}

func TestAnalyzeArticle(t *testing.T) {
	title := "Pollution scandal deepens"
	content := "The pollution scandal triggered an investigation into waste handling and water discharge"

	sig := AnalyzeArticle(title, content)

	assert.Less(t, sig.Sentiment, 0.0)
	assert.Greater(t, sig.ESGRelevance, 0.0)
	assert.Contains(t, sig.Topics, "Water Management")
	assert.Contains(t, sig.Topics, "Waste & Recycling")

	// Sentiment comes from content only; relevance uses title + content.
	assert.Equal(t, DocumentSentiment(content), sig.Sentiment)
	assert.Equal(t, Relevance(title, content), sig.ESGRelevance)
}
