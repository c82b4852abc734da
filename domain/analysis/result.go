package analysis

import (
	"claimguard/domain/causal"
	"claimguard/domain/claim"
	"claimguard/domain/core"
	"claimguard/domain/trust"
)

// Estimand is the backend's identifiability verdict for P(Y | do(X))
type Estimand struct {
	Identifiable bool
	Expression   string
	Reason       string
}

// Result aggregates one complete analysis response. A fresh Result replaces
// the prior one entirely; nothing is merged.
type Result struct {
	ID          core.AnalysisID
	TextClaim   string
	Domain      claim.Domain
	Rung        claim.Rung
	Template    causal.Template
	Estimand    Estimand
	SourceTrust []trust.Score
	Aggregated  trust.Score
	Explanation string
}

// Derived views below are recomputed on every access rather than cached, so
// rendering stays a pure function of the current result.

// Nodes lays out the diagram nodes for the current template
func (r *Result) Nodes() []causal.DiagramNode {
	if r == nil {
		return nil
	}
	return causal.LayoutNodes(r.Template)
}

// Edges projects the diagram edges for the current template
func (r *Result) Edges() []causal.DiagramEdge {
	if r == nil {
		return nil
	}
	return causal.LayoutEdges(r.Template)
}

// Degraded reports whether the response carried no usable template, so the
// caller can distinguish "no data yet" from "response was malformed".
func (r *Result) Degraded() bool {
	return r != nil && r.Template.IsZero()
}

// TrustHint renders the aggregated trust explanation for this result
func (r *Result) TrustHint() string {
	if r == nil {
		return trust.Hint(nil)
	}
	agg := r.Aggregated
	return trust.Hint(&agg)
}

// TrustPercent is the aggregated belief mass as a whole percentage
func (r *Result) TrustPercent() int {
	if r == nil {
		return 0
	}
	return trust.Percent(r.Aggregated.M)
}

// ConfPercent is the aggregated confidence as a whole percentage
func (r *Result) ConfPercent() int {
	if r == nil {
		return 0
	}
	return trust.Percent(r.Aggregated.C)
}

// Ladder returns the display pair for this result's rung, falling open to
// the association pair when no result exists
func (r *Result) Ladder() claim.LadderDisplay {
	if r == nil {
		return claim.DisplayForRung("")
	}
	return claim.DisplayForRung(r.Rung)
}
