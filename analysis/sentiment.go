package analysis

import (
	"math"
	"strings"
)

// SentenceSentiment scores one sentence for the report pipeline: +0.2 per
// positive phrase occurrence, -0.2 per negative, clamped to [-1, 1].
func SentenceSentiment(text string) float64 {
	lower := strings.ToLower(text)

	score := 0.0
	for _, phrase := range sentencePositive {
		score += 0.2 * float64(strings.Count(lower, phrase))
	}
	for _, phrase := range sentenceNegative {
		score -= 0.2 * float64(strings.Count(lower, phrase))
	}

	return clamp(score, -1, 1)
}

// DocumentSentiment scores a whole article for the news pipeline: +0.1 per
// positive occurrence, -0.15 per negative, normalized by
// sqrt(occurrences + 1) and clamped to [-1, 1]. No matches means exactly 0.
func DocumentSentiment(text string) float64 {
	lower := strings.ToLower(text)

	score := 0.0
	occurrences := 0
	for _, phrase := range documentPositive {
		n := strings.Count(lower, phrase)
		score += 0.1 * float64(n)
		occurrences += n
	}
	for _, phrase := range documentNegative {
		n := strings.Count(lower, phrase)
		score -= 0.15 * float64(n)
		occurrences += n
	}

	if occurrences == 0 {
		return 0
	}

	return clamp(score/math.Sqrt(float64(occurrences)+1), -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
