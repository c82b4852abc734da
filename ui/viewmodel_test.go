package ui

import (
	"strings"
	"testing"

	"claimguard/domain/analysis"
	"claimguard/domain/causal"
	"claimguard/domain/claim"
	"claimguard/domain/trust"
)

// TestBuildDiagramVMDropsDanglingEdges tests that edges referencing unknown
// variables are removed from the visual and counted
func TestBuildDiagramVMDropsDanglingEdges(t *testing.T) {
	r := &analysis.Result{
		Template: causal.Template{
			X: "coffee",
			Y: "sleep quality",
			Z: []string{"age"},
			Edges: []causal.Edge{
				{From: "coffee", To: "sleep quality"},
				{From: "ghost", To: "sleep quality"},
				{From: "age", To: "coffee"},
			},
		},
	}

	vm := buildDiagramVM(r)
	if len(vm.Nodes) != 3 {
		t.Errorf("expected 3 nodes, got %d", len(vm.Nodes))
	}
	if len(vm.Edges) != 2 {
		t.Errorf("expected 2 resolvable edges, got %d", len(vm.Edges))
	}
	if vm.Dropped != 1 {
		t.Errorf("expected 1 dropped edge, got %d", vm.Dropped)
	}
}

// TestBuildPageVMDegraded tests the explicit degraded-render signal for a
// template-less result
func TestBuildPageVMDegraded(t *testing.T) {
	state := analysis.ViewState{
		Phase:  analysis.PhaseSuccess,
		Result: &analysis.Result{TextClaim: "something", Rung: claim.RungAssociation},
	}

	vm := buildPageVM(state, true)
	if !vm.Degraded {
		t.Error("missing template should flag degraded render")
	}
	if len(vm.Diagram.Nodes) != 0 {
		t.Error("degraded render should not lay out nodes")
	}
	if !vm.HasResult {
		t.Error("degraded is distinct from no-data-yet")
	}
}

// TestBuildPageVMIdle tests the no-result defaults
func TestBuildPageVMIdle(t *testing.T) {
	vm := buildPageVM(analysis.ViewState{Phase: analysis.PhaseIdle}, true)

	if vm.HasResult {
		t.Error("idle state has no result")
	}
	if vm.TrustHint != trust.HintNoAnalysis {
		t.Error("idle state should carry the default uncertainty hint")
	}
	if vm.RungLabel != "Association" {
		t.Error("idle rung label should fail open to Association")
	}
}

// TestBuildPageVMExplanationMarkdown tests markdown rendering of the
// explanation paragraphs
func TestBuildPageVMExplanationMarkdown(t *testing.T) {
	state := analysis.ViewState{
		Phase: analysis.PhaseSuccess,
		Result: &analysis.Result{
			TextClaim:   "c",
			Template:    causal.Template{X: "x", Y: "y"},
			Explanation: "first paragraph\n\nsecond paragraph",
		},
	}

	vm := buildPageVM(state, true)
	html := string(vm.ExplanationHTML)
	if !strings.Contains(html, "<p>first paragraph</p>") {
		t.Errorf("expected paragraph markup, got %q", html)
	}
}

// TestBuildPageVMSourceRows tests per-source trust row derivation
func TestBuildPageVMSourceRows(t *testing.T) {
	state := analysis.ViewState{
		Phase: analysis.PhaseSuccess,
		Result: &analysis.Result{
			Template: causal.Template{X: "x", Y: "y"},
			SourceTrust: []trust.Score{
				{M: 0.9, C: 0.75, Source: "https://example.edu/a", Details: "type=peer-reviewed"},
			},
			Aggregated: trust.Score{M: 0.9, C: 0.75, Source: "aggregate", Details: "aggregated over 1 sources"},
		},
	}

	vm := buildPageVM(state, true)
	if len(vm.Sources) != 1 {
		t.Fatalf("expected 1 source row, got %d", len(vm.Sources))
	}
	row := vm.Sources[0]
	if row.TrustPct != 90 || row.ConfPct != 75 {
		t.Errorf("unexpected row percents %d/%d", row.TrustPct, row.ConfPct)
	}
}
