package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"claimguard/domain/analysis"
	"claimguard/domain/claim"
	"claimguard/domain/core"
	"claimguard/ports"
)

const serviceVersion = "0.1.0"

// analyzePayload accepts both PascalCase and snake_case key spellings, the
// way older clients of the analysis endpoint sent them
type analyzePayload struct {
	TextClaim      string          `json:"TextClaim"`
	TextClaimSnake string          `json:"text_claim"`
	Domain         string          `json:"Domain"`
	DomainSnake    string          `json:"domain"`
	Sources        []sourcePayload `json:"Sources"`
	SourcesSnake   []sourcePayload `json:"sources"`
}

type sourcePayload struct {
	Title           *string `json:"Title"`
	TitleSnake      *string `json:"title"`
	URL             *string `json:"Url"`
	URLSnake        *string `json:"url"`
	Type            *string `json:"Type"`
	TypeSnake       *string `json:"type"`
	SampleSize      *int    `json:"SampleSize"`
	SampleSizeSnake *int    `json:"sample_size"`
	Year            *int    `json:"Year"`
	YearSnake       *int    `json:"year"`
	PeerReviewed    *bool   `json:"PeerReviewed"`
	PeerRevSnake    *bool   `json:"peer_reviewed"`
}

type trustJSON struct {
	M       float64 `json:"m"`
	C       float64 `json:"c"`
	Source  string  `json:"Source"`
	Details string  `json:"Details"`
}

type analyzeResponse struct {
	TextClaim       string       `json:"TextClaim"`
	Domain          string       `json:"Domain"`
	Rung            string       `json:"Rung"`
	Template        templateJSON `json:"Template"`
	Estimand        estimandJSON `json:"Estimand"`
	SourceTrust     []trustJSON  `json:"SourceTrust"`
	AggregatedTrust trustJSON    `json:"AggregatedTrust"`
	Explanation     string       `json:"Explanation"`
}

type templateJSON struct {
	X     string      `json:"X"`
	Y     string      `json:"Y"`
	Z     []string    `json:"Z"`
	Edges [][2]string `json:"Edges"`
	Note  string      `json:"Note"`
}

type estimandJSON struct {
	Identifiable bool   `json:"Identifiable"`
	Expression   string `json:"Expression"`
	Reason       string `json:"Reason"`
}

// NewRouter builds the analysis service: a health probe plus the claim
// analysis endpoint
func NewRouter(az ports.AnalyzerPort) *gin.Engine {
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"service": "ClaimGuard Analysis Service",
			"version": serviceVersion,
		})
	})

	router.POST("/analyze_claim", func(c *gin.Context) {
		var payload analyzePayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		req := payloadToRequest(payload)
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": core.ErrEmptyClaim.Error()})
			return
		}

		result, err := az.Analyze(c.Request.Context(), req)
		if err != nil {
			log.Printf("analysis failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
			return
		}

		log.Printf("analysis %s: domain=%s rung=%s sources=%d",
			result.ID, result.Domain, result.Rung, len(result.SourceTrust))
		c.JSON(http.StatusOK, resultToResponse(result))
	})

	return router
}

func payloadToRequest(p analyzePayload) claim.AnalyzeRequest {
	text := p.TextClaim
	if text == "" {
		text = p.TextClaimSnake
	}

	domain := p.Domain
	if domain == "" {
		domain = p.DomainSnake
	}
	if domain == "" {
		domain = string(claim.DomainHealth)
	}

	raw := p.Sources
	if len(raw) == 0 {
		raw = p.SourcesSnake
	}

	sources := make([]claim.SourceRef, 0, len(raw))
	for _, s := range raw {
		ref := claim.SourceRef{
			Title:      coalesceStr(s.Title, s.TitleSnake),
			URL:        coalesceStr(s.URL, s.URLSnake),
			Type:       coalesceStr(s.Type, s.TypeSnake),
			SampleSize: coalesceInt(s.SampleSize, s.SampleSizeSnake),
			Year:       coalesceInt(s.Year, s.YearSnake),
		}
		if s.PeerReviewed != nil {
			ref.PeerReviewed = s.PeerReviewed
		} else {
			ref.PeerReviewed = s.PeerRevSnake
		}
		sources = append(sources, ref)
	}

	return claim.AnalyzeRequest{
		TextClaim: strings.TrimSpace(text),
		Domain:    claim.Domain(strings.ToLower(domain)),
		Sources:   sources,
	}
}

func resultToResponse(r *analysis.Result) analyzeResponse {
	tpl := templateJSON{
		X:     r.Template.X,
		Y:     r.Template.Y,
		Z:     r.Template.Z,
		Edges: make([][2]string, 0, len(r.Template.Edges)),
		Note:  r.Template.Note,
	}
	if tpl.Z == nil {
		tpl.Z = []string{}
	}
	for _, e := range r.Template.Edges {
		tpl.Edges = append(tpl.Edges, [2]string{e.From, e.To})
	}

	sourceTrust := make([]trustJSON, 0, len(r.SourceTrust))
	for _, s := range r.SourceTrust {
		sourceTrust = append(sourceTrust, trustJSON{M: s.M, C: s.C, Source: s.Source, Details: s.Details})
	}

	return analyzeResponse{
		TextClaim: r.TextClaim,
		Domain:    string(r.Domain),
		Rung:      string(r.Rung),
		Template:  tpl,
		Estimand: estimandJSON{
			Identifiable: r.Estimand.Identifiable,
			Expression:   r.Estimand.Expression,
			Reason:       r.Estimand.Reason,
		},
		SourceTrust: sourceTrust,
		AggregatedTrust: trustJSON{
			M:       r.Aggregated.M,
			C:       r.Aggregated.C,
			Source:  r.Aggregated.Source,
			Details: r.Aggregated.Details,
		},
		Explanation: r.Explanation,
	}
}

func coalesceStr(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}

func coalesceInt(a, b *int) *int {
	if a != nil {
		return a
	}
	return b
}
