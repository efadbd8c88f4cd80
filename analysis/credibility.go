package analysis

// Credibility assigns a trust score to a single sentence. All rules
// apply independently on top of the 0.5 baseline; the result is clamped
// to [0, 1].
func Credibility(sentence string) float64 {
	score := 0.5

	if verificationPattern.MatchString(sentence) {
		score += 0.3
	}
	if hedgingPattern.MatchString(sentence) {
		score -= 0.1
	}
	if specificityPattern.MatchString(sentence) {
		score += 0.1
	}
	if intentPattern.MatchString(sentence) {
		score -= 0.15
	}

	return clamp(score, 0, 1)
}
