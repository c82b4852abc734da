package trustnet

import (
	"context"
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"claimguard/domain/claim"
	"claimguard/domain/trust"
)

// Engine scores evidence sources into the trust primitive T(m, c). Declared
// metadata (type, year, sample size) is cross-checked against what the URL
// itself reveals.
type Engine struct {
	fetcher *Fetcher

	// maxConcurrent bounds the per-request scoring fan-out
	maxConcurrent int
}

// NewEngine creates a trust engine backed by the given fetcher
func NewEngine(fetcher *Fetcher) *Engine {
	return &Engine{fetcher: fetcher, maxConcurrent: 4}
}

var typeWeights = map[string]float64{
	"peer-reviewed": 0.9,
	"whitepaper":    0.75,
	"news":          0.6,
	"blog":          0.4,
	"unknown":       0.35,
}

// EvaluateSources scores every source concurrently, preserving input order,
// and returns the per-source scores with their aggregate.
func (e *Engine) EvaluateSources(ctx context.Context, sources []claim.SourceRef) ([]trust.Score, trust.Score) {
	scores := make([]trust.Score, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrent)
	for i := range sources {
		g.Go(func() error {
			scores[i] = e.EvaluateSource(gctx, sources[i])
			return nil
		})
	}
	// Workers never return errors; scoring always degrades to a usable value.
	_ = g.Wait()

	return scores, Aggregate(scores)
}

// EvaluateSource scores a single source
func (e *Engine) EvaluateSource(ctx context.Context, src claim.SourceRef) trust.Score {
	var urlInfo *URLAnalysis
	if src.URL != nil && *src.URL != "" {
		info := e.fetcher.Analyze(ctx, *src.URL)
		urlInfo = &info
	}

	sourceType := ""
	if src.Type != nil {
		sourceType = *src.Type
	}
	// An explicit PeerReviewed flag overrides the declared type
	if src.PeerReviewed != nil && *src.PeerReviewed {
		sourceType = claim.PeerReviewedType
	}

	m, c, details := scoreSource(sourceType, src.Year, src.SampleSize, urlInfo)

	label := "unknown"
	switch {
	case src.URL != nil && *src.URL != "":
		label = *src.URL
	case src.Title != nil && *src.Title != "":
		label = *src.Title
	}

	return trust.Score{M: m, C: c, Source: label, Details: details}
}

// scoreSource combines declared and URL-inferred signals into (m, c, details)
func scoreSource(sourceType string, year, sampleSize *int, urlInfo *URLAnalysis) (float64, float64, string) {
	// 1. Effective type: trust the URL when nothing is declared; downgrade a
	// declared peer-reviewed source that lives on a blog.
	declaredType := strings.ToLower(strings.TrimSpace(sourceType))
	inferredType := "unknown"
	if urlInfo != nil && urlInfo.TypeInferred != "" {
		inferredType = urlInfo.TypeInferred
	}

	var effectiveType, typeOrigin string
	switch {
	case declaredType == "":
		effectiveType = inferredType
		typeOrigin = "inferred from URL"
	case declaredType == claim.PeerReviewedType && inferredType == "blog":
		effectiveType = "whitepaper"
		typeOrigin = "user=peer-reviewed, URL looks like blog, downgraded to whitepaper"
	default:
		effectiveType = declaredType
		typeOrigin = "user-provided"
	}

	typeScore, ok := typeWeights[effectiveType]
	if !ok {
		typeScore = typeWeights["unknown"]
	}

	// 2. Year bands, declared year preferred over the inferred one
	y := 0
	if year != nil {
		y = *year
	} else if urlInfo != nil {
		y = urlInfo.YearInferred
	}

	yearScore := 0.5
	yearDetail := "year: unknown"
	if y != 0 {
		switch {
		case y >= 2020:
			yearScore = 0.95
		case y >= 2010:
			yearScore = 0.7
		default:
			yearScore = 0.4
		}
		yearDetail = fmt.Sprintf("year~%d", y)
	}

	// 3. Sample size bands
	sampleScore := 0.5
	sampleDetail := "n: unknown"
	n := 0
	if sampleSize != nil {
		n = *sampleSize
	}
	if n > 0 {
		switch {
		case n >= 1000:
			sampleScore = 0.95
		case n >= 200:
			sampleScore = 0.75
		case n >= 50:
			sampleScore = 0.6
		default:
			sampleScore = 0.4
		}
		sampleDetail = fmt.Sprintf("n=%d", n)
	}

	// 4. URL credibility tweaks
	urlDetail := ""
	domainBonus := 0.0
	confidenceBonus := 0.0
	if urlInfo != nil {
		urlDetail = urlInfo.Details
		if urlInfo.CredibleTLD() {
			domainBonus += 0.07
			confidenceBonus += 0.1
		}
		if urlInfo.ContentOK && urlInfo.ContentLength > 4000 {
			confidenceBonus += 0.1
		}
	}

	// 5. Belief mass
	m := clamp01((typeScore+yearScore+sampleScore)/3.0 + domainBonus)

	// 6. Confidence
	cBase := 0.3
	switch effectiveType {
	case "peer-reviewed", "whitepaper", "news":
		cBase += 0.2
	}
	if y != 0 {
		cBase += 0.2
	}
	if n >= 50 {
		cBase += 0.1
	}
	c := clamp01(cBase + confidenceBonus)

	details := fmt.Sprintf("type=%s (%s); %s; %s", effectiveType, typeOrigin, yearDetail, sampleDetail)
	if urlDetail != "" {
		details += "; url: " + urlDetail
	}

	return m, c, details
}

// Aggregate folds per-source scores into a single trust value: the mean of
// the belief masses and the mean of the confidences. An empty input yields
// the recognized (0, 0) no-sources score.
func Aggregate(scores []trust.Score) trust.Score {
	if len(scores) == 0 {
		return trust.Score{
			M:       0,
			C:       0,
			Source:  "aggregate",
			Details: trust.NoSourcesDetails,
		}
	}

	ms := make([]float64, len(scores))
	cs := make([]float64, len(scores))
	for i, s := range scores {
		ms[i] = s.M
		cs[i] = s.C
	}

	mAgg, _ := stats.Mean(ms)
	cAgg, _ := stats.Mean(cs)

	return trust.Score{
		M:       mAgg,
		C:       cAgg,
		Source:  "aggregate",
		Details: fmt.Sprintf("aggregated over %d sources", len(scores)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
