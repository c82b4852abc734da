package causal

// Edge is a directed (from, to) pair over variable names
type Edge struct {
	From string
	To   string
}

// Template is the causal structure the backend infers from a claim:
// treatment X, outcome Y, ordered covariates Z and directed edges over
// {X, Y} ∪ Z. Edge endpoints are not re-validated here; rendering degrades
// gracefully on dangling references.
type Template struct {
	X     string
	Y     string
	Z     []string
	Edges []Edge
	Note  string
}

// IsZero reports whether the template carries no structure at all, which is
// how an absent or malformed backend template surfaces downstream.
func (t Template) IsZero() bool {
	return t.X == "" && t.Y == "" && len(t.Z) == 0 && len(t.Edges) == 0
}
