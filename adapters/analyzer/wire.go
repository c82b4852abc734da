package analyzer

import (
	"claimguard/domain/analysis"
	"claimguard/domain/causal"
	"claimguard/domain/claim"
	"claimguard/domain/trust"
)

// Wire types mirror the backend's JSON contract: PascalCase keys throughout,
// except the lowercase m/c of the trust primitive.

type wireSource struct {
	Title        *string `json:"Title"`
	URL          *string `json:"Url"`
	Type         *string `json:"Type"`
	SampleSize   *int    `json:"SampleSize"`
	Year         *int    `json:"Year"`
	PeerReviewed *bool   `json:"PeerReviewed"`
}

type wireRequest struct {
	TextClaim string       `json:"TextClaim"`
	Domain    string       `json:"Domain"`
	Sources   []wireSource `json:"Sources"`
}

type wireTemplate struct {
	X     string     `json:"X"`
	Y     string     `json:"Y"`
	Z     []string   `json:"Z"`
	Edges [][]string `json:"Edges"`
	Note  string     `json:"Note"`
}

type wireEstimand struct {
	Identifiable bool   `json:"Identifiable"`
	Expression   string `json:"Expression"`
	Reason       string `json:"Reason"`
}

type wireTrust struct {
	M       float64 `json:"m"`
	C       float64 `json:"c"`
	Source  *string `json:"Source"`
	Details *string `json:"Details"`
}

type wireResponse struct {
	TextClaim       string        `json:"TextClaim"`
	Domain          string        `json:"Domain"`
	Rung            string        `json:"Rung"`
	Template        *wireTemplate `json:"Template"`
	Estimand        *wireEstimand `json:"Estimand"`
	SourceTrust     []wireTrust   `json:"SourceTrust"`
	AggregatedTrust *wireTrust    `json:"AggregatedTrust"`
	Explanation     string        `json:"Explanation"`
}

func encodeRequest(req claim.AnalyzeRequest) wireRequest {
	sources := make([]wireSource, 0, len(req.Sources))
	for _, s := range req.Sources {
		sources = append(sources, wireSource{
			Title:        s.Title,
			URL:          s.URL,
			Type:         s.Type,
			SampleSize:   s.SampleSize,
			Year:         s.Year,
			PeerReviewed: s.PeerReviewed,
		})
	}
	return wireRequest{
		TextClaim: req.TextClaim,
		Domain:    string(req.Domain),
		Sources:   sources,
	}
}

// decodeResponse maps the wire verdict onto the domain result. Missing or
// partial fields decode to zero values; rendering handles those fail-soft.
func decodeResponse(w wireResponse) *analysis.Result {
	r := &analysis.Result{
		TextClaim:   w.TextClaim,
		Domain:      claim.Domain(w.Domain),
		Rung:        claim.Rung(w.Rung),
		Explanation: w.Explanation,
	}

	if w.Template != nil {
		tpl := causal.Template{
			X:    w.Template.X,
			Y:    w.Template.Y,
			Z:    w.Template.Z,
			Note: w.Template.Note,
		}
		for _, e := range w.Template.Edges {
			if len(e) >= 2 {
				tpl.Edges = append(tpl.Edges, causal.Edge{From: e[0], To: e[1]})
			}
		}
		r.Template = tpl
	}

	if w.Estimand != nil {
		r.Estimand = analysis.Estimand{
			Identifiable: w.Estimand.Identifiable,
			Expression:   w.Estimand.Expression,
			Reason:       w.Estimand.Reason,
		}
	}

	for _, st := range w.SourceTrust {
		r.SourceTrust = append(r.SourceTrust, decodeTrust(st))
	}
	if w.AggregatedTrust != nil {
		r.Aggregated = decodeTrust(*w.AggregatedTrust)
	}

	return r
}

func decodeTrust(w wireTrust) trust.Score {
	s := trust.Score{M: w.M, C: w.C}
	if w.Source != nil {
		s.Source = *w.Source
	}
	if w.Details != nil {
		s.Details = *w.Details
	}
	return s
}
