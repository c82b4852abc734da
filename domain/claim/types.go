package claim

import (
	"strings"

	"claimguard/domain/core"
)

// Rung represents a position on Pearl's causal ladder
type Rung string

const (
	RungAssociation    Rung = "L1"
	RungIntervention   Rung = "L2"
	RungCounterfactual Rung = "L3"
)

// Domain identifies the vocabulary used to model a claim
type Domain string

const (
	DomainAuto    Domain = "auto"
	DomainHealth  Domain = "health"
	DomainFinance Domain = "finance"
)

// PeerReviewedType is the source type literal that forces PeerReviewed
const PeerReviewedType = "peer-reviewed"

// SourceRef describes one evidence source attached to a claim.
// All fields are optional; absent values stay nil on the wire.
type SourceRef struct {
	Title        *string
	URL          *string
	Type         *string
	SampleSize   *int
	Year         *int
	PeerReviewed *bool
}

// AnalyzeRequest is the payload sent to the analysis backend
type AnalyzeRequest struct {
	TextClaim string
	Domain    Domain
	Sources   []SourceRef
}

// NewAnalyzeRequest assembles a request from raw form state. The claim is
// trimmed; emptiness is the caller's validation concern. PeerReviewed is
// derived from the source type literal.
func NewAnalyzeRequest(text string, domain Domain, sources []SourceRef) AnalyzeRequest {
	for i := range sources {
		pr := sources[i].Type != nil && strings.EqualFold(*sources[i].Type, PeerReviewedType)
		sources[i].PeerReviewed = &pr
	}
	if sources == nil {
		sources = []SourceRef{}
	}
	return AnalyzeRequest{
		TextClaim: strings.TrimSpace(text),
		Domain:    domain,
		Sources:   sources,
	}
}

// Validate checks local preconditions before any request is sent
func (r AnalyzeRequest) Validate() error {
	if strings.TrimSpace(r.TextClaim) == "" {
		return core.ErrEmptyClaim
	}
	return nil
}
