package causal

import (
	"reflect"
	"testing"
)

func templateWithCovariates(n int) Template {
	z := make([]string, n)
	names := []string{"sleep", "age", "stress", "workload", "diet", "income", "season"}
	for i := 0; i < n; i++ {
		z[i] = names[i%len(names)]
	}
	return Template{X: "coffee", Y: "sleep quality", Z: z}
}

// TestLayoutNodesCount tests that k covariates always yield k+2 nodes with
// treatment and outcome leading at their fixed anchors
func TestLayoutNodesCount(t *testing.T) {
	for _, k := range []int{0, 1, 2, 3, 4, 7} {
		nodes := LayoutNodes(templateWithCovariates(k))
		if len(nodes) != k+2 {
			t.Fatalf("k=%d: expected %d nodes, got %d", k, k+2, len(nodes))
		}

		x := nodes[0]
		if x.Role != RoleTreatment || x.X != treatmentX || x.Y != midlineY {
			t.Errorf("k=%d: treatment node misplaced: %+v", k, x)
		}
		y := nodes[1]
		if y.Role != RoleOutcome || y.X != outcomeX || y.Y != midlineY {
			t.Errorf("k=%d: outcome node misplaced: %+v", k, y)
		}
		if x.Y != y.Y {
			t.Errorf("k=%d: treatment and outcome should share the midline", k)
		}
	}
}

// TestLayoutNodesFanOut tests the alternating row assignment and pair-step
// horizontal stagger
func TestLayoutNodesFanOut(t *testing.T) {
	nodes := LayoutNodes(templateWithCovariates(5))
	cov := nodes[2:]

	for i, n := range cov {
		if n.Role != RoleCovariate {
			t.Errorf("covariate %d has role %s", i, n.Role)
		}
		wantY := topRowY
		if i%2 == 1 {
			wantY = bottomRowY
		}
		if n.Y != wantY {
			t.Errorf("covariate %d: expected row y=%v, got %v", i, wantY, n.Y)
		}
		wantX := covariateStartX + float64(i/2)*covariateStride
		if n.X != wantX {
			t.Errorf("covariate %d: expected x=%v, got %v", i, wantX, n.X)
		}
	}

	// Z0 and Z1 share the anchor column on different rows; Z2 starts the
	// next column.
	if cov[0].X != cov[1].X {
		t.Error("first covariate pair should share a column")
	}
	if cov[2].X != cov[0].X+covariateStride {
		t.Error("third covariate should sit one stride to the right")
	}
}

// TestLayoutDeterministic tests that layout is a pure function of the
// template (idempotent across calls)
func TestLayoutDeterministic(t *testing.T) {
	tpl := templateWithCovariates(4)
	tpl.Edges = []Edge{
		{From: "coffee", To: "sleep quality"},
		{From: "sleep", To: "coffee"},
		{From: "sleep", To: "sleep quality"},
	}

	n1 := LayoutNodes(tpl)
	n2 := LayoutNodes(tpl)
	if !reflect.DeepEqual(n1, n2) {
		t.Error("LayoutNodes is not deterministic")
	}

	e1 := LayoutEdges(tpl)
	e2 := LayoutEdges(tpl)
	if !reflect.DeepEqual(e1, e2) {
		t.Error("LayoutEdges is not deterministic")
	}
}

// TestLayoutEdgesVerbatim tests order preservation and that duplicates are
// not deduplicated
func TestLayoutEdgesVerbatim(t *testing.T) {
	tpl := Template{
		X: "a", Y: "b",
		Edges: []Edge{
			{From: "a", To: "b"},
			{From: "ghost", To: "b"},
			{From: "a", To: "b"},
		},
	}
	edges := LayoutEdges(tpl)
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(edges))
	}
	if edges[1].From != "ghost" {
		t.Error("edge order not preserved")
	}
	if edges[0] != edges[2] {
		t.Error("duplicate edges should survive projection")
	}
}

// TestFindNode tests exact-match lookup and the not-found path used to drop
// dangling edges
func TestFindNode(t *testing.T) {
	nodes := LayoutNodes(Template{X: "coffee", Y: "sleep quality", Z: []string{"age"}})

	if n, ok := FindNode(nodes, "age"); !ok || n.Role != RoleCovariate {
		t.Errorf("expected covariate 'age', got %+v ok=%v", n, ok)
	}
	if _, ok := FindNode(nodes, "ghost"); ok {
		t.Error("expected not-found for unknown id")
	}
}
