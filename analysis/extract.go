package analysis

import "strings"

// ExtractIndicators scans every retained sentence against the category rule
// table. A rule match yields an indicator only when the sentence carries a
// numeric token; the first number in the sentence becomes the value, even
// when the sentence holds several. Sentiment and credibility are computed
// once per sentence and shared by all indicators from it. Output order is
// sentence order, then rule-table order.
func ExtractIndicators(text string) []Indicator {
	var indicators []Indicator

	for _, sentence := range SplitSentences(text) {
		number := numberPattern.FindString(sentence)
		if number == "" {
			continue
		}
		unit := unitPattern.FindString(sentence)

		var (
			sentiment   float64
			credibility float64
			scored      bool
		)

		for _, rule := range categoryRules {
			if !rule.pattern.MatchString(sentence) {
				continue
			}
			if !scored {
				sentiment = SentenceSentiment(sentence)
				credibility = Credibility(sentence)
				scored = true
			}
			indicators = append(indicators, Indicator{
				Category:    rule.category,
				Subcategory: rule.subcategory,
				Name:        strings.ReplaceAll(rule.subcategory, "_", " "),
				Value:       number,
				Unit:        unit,
				Context:     sentence,
				Sentiment:   sentiment,
				Credibility: credibility,
			})
		}
	}

	return indicators
}
