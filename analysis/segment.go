package analysis

import (
	"regexp"
	"strings"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits text on sentence punctuation runs. Fragments whose
// trimmed length is under 10 characters are dropped as noise.
func SplitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceBoundary.Split(text, -1) {
		trimmed := strings.TrimSpace(part)
		if len(trimmed) < 10 {
			continue
		}
		sentences = append(sentences, trimmed)
	}
	return sentences
}
