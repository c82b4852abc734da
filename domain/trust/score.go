package trust

// Score is the Beta-like trust primitive T(m, c): m is the point estimate of
// believability, c the confidence/concentration in that estimate. Both are
// intended to lie in [0, 1]; this layer formats without clamping so that
// out-of-range upstream values stay visible.
type Score struct {
	M       float64
	C       float64
	Source  string
	Details string
}

// NoSourcesDetails is the marker the trust engine writes into Details when a
// claim arrives without any evidence sources. The presentation layer keys on
// the "no sources" substring: a (0, 0) score alone is not enough, since it
// can also arise from genuinely contradictory evidence.
const NoSourcesDetails = "no sources provided"

// IsNoEvidence reports whether the score is the recognized no-sources
// degenerate case rather than a numeric coincidence
func (s Score) IsNoEvidence() bool {
	return s.M == 0 && s.C == 0 && containsNoSources(s.Details)
}
