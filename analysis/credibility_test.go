package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredibilityBaseline(t *testing.T) {
	assert.InDelta(t, 0.5, Credibility("Our operations span several regions"), 1e-9)
}

func TestCredibilityVerification(t *testing.T) {
	assert.InDelta(t, 0.8, Credibility("Figures verified by an external firm"), 1e-9)
	assert.InDelta(t, 0.8, Credibility("A third-party review confirmed the totals"), 1e-9)
	assert.InDelta(t, 0.8, Credibility("A third party review confirmed the totals"), 1e-9)
}

func TestCredibilityHedging(t *testing.T) {
	assert.InDelta(t, 0.4, Credibility("We used approximately half the fuel"), 1e-9)
}

func TestCredibilitySpecificity(t *testing.T) {
	assert.InDelta(t, 0.6, Credibility("Results were measured across all sites"), 1e-9)
	assert.InDelta(t, 0.6, Credibility("Totals for 2023 cover every region"), 1e-9)
}

func TestCredibilityForwardLooking(t *testing.T) {
	assert.InDelta(t, 0.35, Credibility("We aim to cut usage next cycle"), 1e-9)
}

func TestCredibilityRulesStack(t *testing.T) {
	// verification +0.3, specificity +0.1, hedging -0.1, intent -0.15.
	s := Credibility("We plan to keep roughly the audited 2023 pace")
	assert.InDelta(t, 0.65, s, 1e-9)
}

func TestCredibilityClamped(t *testing.T) {
	// 0.5 + 0.3 + 0.1 stays within [0, 1] even with every bonus firing.
	s := Credibility("Audited and certified 2021 totals, measured on site")
	assert.InDelta(t, 0.9, s, 1e-9)
	assert.LessOrEqual(t, s, 1.0)
	assert.GreaterOrEqual(t, Credibility("roughly aim to"), 0.0)
}
