package causal

// NodeRole classifies a diagram node by its place in the causal template
type NodeRole string

const (
	RoleTreatment NodeRole = "treatment"
	RoleOutcome   NodeRole = "outcome"
	RoleCovariate NodeRole = "covariate"
)

// DiagramNode is a laid-out variable: identity key, display label, role and
// position in layout units. Derived, never persisted; recomputed from the
// current template on every access.
type DiagramNode struct {
	ID    string
	Label string
	Role  NodeRole
	X     float64
	Y     float64
}

// DiagramEdge is the projection of a template edge onto node identities
type DiagramEdge struct {
	From string
	To   string
}

// Fixed canvas geometry. Treatment and outcome sit on a shared horizontal
// midline so the diagram reads left to right; covariates fan out over a top
// and a bottom row.
const (
	CanvasWidth  = 640.0
	CanvasHeight = 360.0

	treatmentX = 90.0
	outcomeX   = 550.0
	midlineY   = 180.0

	topRowY    = 70.0
	bottomRowY = 290.0

	covariateStartX = 90.0
	covariateStride = 130.0
)

// LayoutNodes places the template's variables on the canvas. Output order is
// [X, Y, Z0, Z1, ...]. Covariates alternate between the top row (even index)
// and the bottom row (odd index); the horizontal offset advances once per
// pair-step so row neighbours never overlap. Pure function of the template:
// identical input yields identical geometry.
func LayoutNodes(tpl Template) []DiagramNode {
	nodes := make([]DiagramNode, 0, len(tpl.Z)+2)

	nodes = append(nodes, DiagramNode{
		ID:    tpl.X,
		Label: tpl.X,
		Role:  RoleTreatment,
		X:     treatmentX,
		Y:     midlineY,
	})
	nodes = append(nodes, DiagramNode{
		ID:    tpl.Y,
		Label: tpl.Y,
		Role:  RoleOutcome,
		X:     outcomeX,
		Y:     midlineY,
	})

	for i, z := range tpl.Z {
		rowY := topRowY
		if i%2 == 1 {
			rowY = bottomRowY
		}
		nodes = append(nodes, DiagramNode{
			ID:    z,
			Label: z,
			Role:  RoleCovariate,
			X:     covariateStartX + float64(i/2)*covariateStride,
			Y:     rowY,
		})
	}

	return nodes
}

// LayoutEdges projects the template's edge pairs verbatim, preserving order.
// Endpoints are not checked against the node set; a dangling edge is dropped
// at render time, not here.
func LayoutEdges(tpl Template) []DiagramEdge {
	edges := make([]DiagramEdge, 0, len(tpl.Edges))
	for _, e := range tpl.Edges {
		edges = append(edges, DiagramEdge{From: e.From, To: e.To})
	}
	return edges
}

// FindNode resolves a node id among the laid-out nodes by exact match
func FindNode(nodes []DiagramNode, id string) (DiagramNode, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
	}
	return DiagramNode{}, false
}
