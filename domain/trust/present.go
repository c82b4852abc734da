package trust

import (
	"fmt"
	"math"
	"strings"
)

// HintNoAnalysis is the idle text shown before any analysis has run
const HintNoAnalysis = "No analysis yet. Trust T(m, c) defaults to (0, 0): complete uncertainty."

// HintNoEvidence is the special-cased text for the recognized no-sources case
const HintNoEvidence = "No external evidence sources were provided, so no trust score is assigned. " +
	"T(m, c) = (0, 0), representing complete uncertainty about the reliability of the evidence."

// Percent converts a unit-interval value to a whole percentage using
// round-half-up. Out-of-range input yields an out-of-range percentage on
// purpose: upstream data issues should surface, not be masked.
func Percent(v float64) int {
	return int(math.Round(v * 100))
}

// Hint renders the aggregated trust score as explanatory text. A nil score
// means no analysis result exists yet.
func Hint(agg *Score) string {
	if agg == nil {
		return HintNoAnalysis
	}
	if agg.IsNoEvidence() {
		return HintNoEvidence
	}
	hint := fmt.Sprintf("Aggregated trust T(m, c) = (%.2f, %.2f): "+
		"m reflects overall trustworthiness, c the confidence in that assessment.", agg.M, agg.C)
	if agg.Details != "" {
		hint += " " + agg.Details
	}
	return hint
}

func containsNoSources(details string) bool {
	return strings.Contains(strings.ToLower(details), "no sources")
}
