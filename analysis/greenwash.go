package analysis

import "fmt"

// DetectGreenwashing applies three independent heuristics over the raw
// document text and the indicators already extracted from it. Each rule
// raises at most one flag.
func DetectGreenwashing(text string, indicators []Indicator) []Flag {
	var flags []Flag

	vagueCount := len(vagueClaimPattern.FindAllString(text, -1))
	if vagueCount > 5 {
		specificCount := 0
		for _, ind := range indicators {
			if ind.Value != "" && ind.Unit != "" {
				specificCount++
			}
		}
		if float64(specificCount) < float64(vagueCount)*0.3 {
			flags = append(flags, Flag{
				Type:     FlagVagueClaim,
				Severity: SeverityMedium,
				Description: fmt.Sprintf(
					"High frequency of vague environmental claims (%d) with limited specific metrics (%d)",
					vagueCount, specificCount),
				Evidence: map[string]int{
					"vague_claims":     vagueCount,
					"specific_metrics": specificCount,
				},
			})
		}
	}

	futureCount := len(futureClaimPattern.FindAllString(text, -1))
	verifiedCount := 0
	for _, ind := range indicators {
		if ind.Credibility > 0.6 {
			verifiedCount++
		}
	}
	if futureCount > verifiedCount*2 {
		flags = append(flags, Flag{
			Type:        FlagInconsistency,
			Severity:    SeverityHigh,
			Description: "Excessive future commitments compared to current verified performance data",
			Evidence: map[string]int{
				"future_claims":   futureCount,
				"current_metrics": verifiedCount,
			},
		})
	}

	lowCredCount := 0
	for _, ind := range indicators {
		if ind.Credibility < 0.4 {
			lowCredCount++
		}
	}
	// An empty indicator set never triggers: 0 is not greater than 0.
	if float64(lowCredCount) > float64(len(indicators))*0.5 {
		flags = append(flags, Flag{
			Type:        FlagMissingData,
			Severity:    SeverityMedium,
			Description: "Majority of claims lack third-party verification or specific measurements",
			Evidence: map[string]int{
				"low_credibility_indicators": lowCredCount,
				"total_indicators":           len(indicators),
			},
		})
	}

	return flags
}
