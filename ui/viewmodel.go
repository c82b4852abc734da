package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"

	"claimguard/domain/analysis"
	"claimguard/domain/causal"
	"claimguard/domain/trust"
)

// NodeVM is one positioned diagram node
type NodeVM struct {
	ID    string
	Label string
	Role  string
	X     float64
	Y     float64
}

// EdgeVM is a resolved diagram edge with both endpoint coordinates
type EdgeVM struct {
	X1, Y1 float64
	X2, Y2 float64
}

// DiagramVM is the SVG-ready diagram layout
type DiagramVM struct {
	Width   float64
	Height  float64
	Nodes   []NodeVM
	Edges   []EdgeVM
	Dropped int // dangling edges removed at render time
}

// SourceTrustVM is one per-source trust row
type SourceTrustVM struct {
	Label      string
	TrustPct   int
	ConfPct    int
	Details    string
	NoEvidence bool
}

// PageVM is everything the index template needs
type PageVM struct {
	Phase      string
	StatusText string
	Connected  bool
	Degraded   bool

	HasResult bool
	Claim     string
	Domain    string

	RungLabel string
	RungStyle string

	Diagram      DiagramVM
	TemplateNote string

	Identifiable bool
	Expression   string
	Reason       string

	TrustPct  int
	ConfPct   int
	TrustHint string
	Sources   []SourceTrustVM

	ExplanationHTML template.HTML
}

// buildPageVM derives the page view model from the current view state. All
// derived data (layout, percentages, hints) is recomputed here on every
// render; nothing is cached between requests.
func buildPageVM(state analysis.ViewState, connected bool) PageVM {
	vm := PageVM{
		Phase:     state.Phase.String(),
		Connected: connected,
		TrustHint: trust.Hint(nil),
		RungLabel: "Association",
		RungStyle: "rung-l1",
	}

	if state.Phase == analysis.PhaseError {
		vm.StatusText = state.ErrReason
	}

	r := state.Result
	if r == nil {
		return vm
	}

	vm.HasResult = true
	vm.Claim = r.TextClaim
	vm.Domain = string(r.Domain)
	vm.Degraded = r.Degraded()

	ladder := r.Ladder()
	vm.RungLabel = ladder.Label
	vm.RungStyle = ladder.Style

	vm.Diagram = buildDiagramVM(r)
	vm.TemplateNote = r.Template.Note

	vm.Identifiable = r.Estimand.Identifiable
	vm.Expression = r.Estimand.Expression
	vm.Reason = r.Estimand.Reason

	vm.TrustPct = r.TrustPercent()
	vm.ConfPct = r.ConfPercent()
	vm.TrustHint = r.TrustHint()

	for _, s := range r.SourceTrust {
		vm.Sources = append(vm.Sources, SourceTrustVM{
			Label:      s.Source,
			TrustPct:   trust.Percent(s.M),
			ConfPct:    trust.Percent(s.C),
			Details:    s.Details,
			NoEvidence: s.IsNoEvidence(),
		})
	}

	if r.Explanation != "" {
		rendered := markdown.ToHTML([]byte(r.Explanation), nil, nil)
		vm.ExplanationHTML = template.HTML(rendered)
	}

	return vm
}

// buildDiagramVM lays out the template and resolves edge endpoints to
// coordinates. A dangling edge (endpoint missing from the node set) is
// dropped from the visual and counted, not treated as an error.
func buildDiagramVM(r *analysis.Result) DiagramVM {
	vm := DiagramVM{
		Width:  causal.CanvasWidth,
		Height: causal.CanvasHeight,
	}
	if r.Degraded() {
		return vm
	}

	nodes := r.Nodes()
	for _, n := range nodes {
		vm.Nodes = append(vm.Nodes, NodeVM{
			ID:    n.ID,
			Label: n.Label,
			Role:  string(n.Role),
			X:     n.X,
			Y:     n.Y,
		})
	}

	for _, e := range r.Edges() {
		from, okFrom := causal.FindNode(nodes, e.From)
		to, okTo := causal.FindNode(nodes, e.To)
		if !okFrom || !okTo {
			vm.Dropped++
			continue
		}
		vm.Edges = append(vm.Edges, EdgeVM{X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y})
	}

	return vm
}
