package heuristic

import (
	"fmt"
	"strings"

	"claimguard/domain/analysis"
	"claimguard/domain/causal"
)

// ComputeEstimand decides identifiability of P(Y | do(X)) under the
// template. With no measured confounders the back-door criterion cannot be
// satisfied; otherwise adjusting on the full Z set yields the back-door
// formula.
func ComputeEstimand(tpl causal.Template) analysis.Estimand {
	if len(tpl.Z) == 0 {
		return analysis.Estimand{
			Identifiable: false,
			Expression:   "",
			Reason:       "Back-door not satisfied with available variables; require experiment or instrument.",
		}
	}

	zList := strings.Join(tpl.Z, ", ")
	return analysis.Estimand{
		Identifiable: true,
		Expression:   fmt.Sprintf("Sum_{%s} P(%s|%s, %s) * P(%s)", zList, tpl.Y, tpl.X, zList, zList),
		Reason:       "Back-door criterion satisfied using Z.",
	}
}
