package analysis

import "math"

// Category weights for the overall score; they sum to exactly 1.0.
const (
	weightEnvironmental = 0.35
	weightSocial        = 0.35
	weightGovernance    = 0.30
)

// CalculateScore aggregates an indicator set into category scores, an
// overall score, a risk level and a confidence value. A category with no
// indicators scores the neutral 50.
func CalculateScore(indicators []Indicator) Score {
	var env, soc, gov []Indicator
	for _, ind := range indicators {
		switch ind.Category {
		case CategoryEnvironmental:
			env = append(env, ind)
		case CategorySocial:
			soc = append(soc, ind)
		case CategoryGovernance:
			gov = append(gov, ind)
		}
	}

	envScore := categoryScore(env)
	socScore := categoryScore(soc)
	govScore := categoryScore(gov)

	overall := envScore*weightEnvironmental + socScore*weightSocial + govScore*weightGovernance

	confidence := 0.0
	for _, ind := range indicators {
		confidence += ind.Credibility
	}
	confidence /= math.Max(float64(len(indicators)), 1)

	return Score{
		Overall:       round1(overall),
		Environmental: round1(envScore),
		Social:        round1(socScore),
		Governance:    round1(govScore),
		RiskLevel:     RiskLevel(overall),
		Confidence:    round2(confidence),
		Metrics: ScoreMetrics{
			Total:         len(indicators),
			Environmental: len(env),
			Social:        len(soc),
			Governance:    len(gov),
		},
	}
}

// RiskLevel bands an overall score. Thresholds are checked against the
// unrounded value, first match wins.
func RiskLevel(overall float64) string {
	switch {
	case overall < 40:
		return SeverityCritical
	case overall < 60:
		return SeverityHigh
	case overall < 75:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func categoryScore(indicators []Indicator) float64 {
	if len(indicators) == 0 {
		return 50
	}

	sumSentiment := 0.0
	sumCredibility := 0.0
	for _, ind := range indicators {
		sumSentiment += ind.Sentiment
		sumCredibility += ind.Credibility
	}
	n := float64(len(indicators))
	avgSentiment := sumSentiment / n
	avgCredibility := sumCredibility / n
	richness := math.Min(n/10, 1)

	return clamp(50+avgSentiment*20+avgCredibility*20+richness*10, 0, 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
