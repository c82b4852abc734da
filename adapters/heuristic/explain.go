package heuristic

import (
	"fmt"
	"strings"

	"claimguard/domain/analysis"
	"claimguard/domain/causal"
	"claimguard/domain/claim"
	"claimguard/domain/trust"
)

// BuildExplanation assembles the five-paragraph natural-language summary:
// claim, ladder rung, SCM modelling, identifiability, evidence trust.
func BuildExplanation(
	textClaim string,
	domain claim.Domain,
	rung claim.Rung,
	tpl causal.Template,
	estimand analysis.Estimand,
	aggregated trust.Score,
) string {
	var rungText string
	switch rung {
	case claim.RungAssociation:
		rungText = "This is treated as an association-level (L1) claim: " +
			"it describes patterns or correlations without explicit causal or counterfactual language."
	case claim.RungIntervention:
		rungText = "This is treated as an intervention-level (L2) claim: " +
			"it uses causal language (e.g., 'affects', 'reduces', 'causes') " +
			"suggesting that changing the exposure would change the outcome."
	default:
		rungText = "This is treated as a counterfactual-level (L3) claim: " +
			"it talks about what would have happened under a different hypothetical scenario."
	}

	var scmText string
	if len(tpl.Z) > 0 {
		scmText = fmt.Sprintf(
			"In the %s domain, the system models this claim with '%s' as the exposure (X) "+
				"and '%s' as the outcome (Y). It treats [%s] as confounders Z that affect both X and Y. "+
				"The SCM therefore includes edges Z → X, Z → Y, and X → Y.",
			domain, tpl.X, tpl.Y, strings.Join(tpl.Z, ", "))
	} else {
		scmText = fmt.Sprintf(
			"In the %s domain, the system models this claim with '%s' as the exposure (X) "+
				"and '%s' as the outcome (Y), but it does not currently include any confounders Z.",
			domain, tpl.X, tpl.Y)
	}

	var estText string
	if estimand.Identifiable && estimand.Expression != "" {
		estText = fmt.Sprintf(
			"Under these assumptions, the causal effect P(Y | do(X)) is considered identifiable. "+
				"A valid estimand is: %s. Reason: %s", estimand.Expression, estimand.Reason)
	} else {
		reason := estimand.Reason
		if reason == "" {
			reason = "identifiability conditions are not met."
		}
		estText = fmt.Sprintf(
			"Given the available variables, the system cannot express P(Y | do(X)) using only "+
				"observational quantities. Reason: %s", reason)
	}

	var trustText string
	if aggregated.IsNoEvidence() {
		trustText = "No external evidence sources were provided, so the tool does not assign any trust " +
			"score to this claim (trust T(m, c) defaults to (0, 0), representing complete uncertainty " +
			"about the reliability of the evidence)."
	} else {
		trustText = fmt.Sprintf(
			"Based on the provided sources, the aggregated trust in the evidence supporting this claim is "+
				"T(m, c) = (%.2f, %.2f), where m reflects overall trustworthiness and c reflects confidence "+
				"in that assessment.", aggregated.M, aggregated.C)
	}

	return fmt.Sprintf("Claim: %q\n\n%s\n\n%s\n\n%s\n\n%s",
		textClaim, rungText, scmText, estText, trustText)
}
