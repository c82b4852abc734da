package heuristic

import (
	"context"
	"log"
	"strings"

	"claimguard/adapters/trustnet"
	"claimguard/domain/analysis"
	"claimguard/domain/claim"
	"claimguard/domain/core"
)

// Analyzer is the in-process analysis pipeline: ladder classification, SCM
// template construction, estimand derivation, URL-aware trust scoring and
// explanation building. It implements ports.AnalyzerPort so the presentation
// layer cannot tell it apart from the remote backend.
type Analyzer struct {
	classifier *Classifier
	scm        *ScmBuilder
	trust      *trustnet.Engine
}

// NewAnalyzer wires the pipeline stages together
func NewAnalyzer(trustEngine *trustnet.Engine) *Analyzer {
	return &Analyzer{
		classifier: NewClassifier(),
		scm:        NewScmBuilder(),
		trust:      trustEngine,
	}
}

// Analyze runs the full pipeline for one claim
func (a *Analyzer) Analyze(ctx context.Context, req claim.AnalyzeRequest) (*analysis.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	domain := a.resolveDomain(req)
	rung := a.classifier.Classify(req.TextClaim)
	tpl := a.scm.BuildTemplate(req.TextClaim, domain)

	if !IsAcyclic(tpl) {
		// Vocabulary templates are DAGs by construction; a cycle means a bad
		// vocabulary edit. Log and continue, the layout degrades gracefully.
		log.Printf("scm template for %q contains a cycle", req.TextClaim)
	}

	estimand := ComputeEstimand(tpl)
	sourceTrust, aggregated := a.trust.EvaluateSources(ctx, req.Sources)

	return &analysis.Result{
		ID:          core.NewAnalysisID(),
		TextClaim:   req.TextClaim,
		Domain:      domain,
		Rung:        rung,
		Template:    tpl,
		Estimand:    estimand,
		SourceTrust: sourceTrust,
		Aggregated:  aggregated,
		Explanation: BuildExplanation(req.TextClaim, domain, rung, tpl, estimand, aggregated),
	}, nil
}

// Healthy always reports true: the embedded analyzer has no transport to lose
func (a *Analyzer) Healthy(ctx context.Context) bool {
	return true
}

// resolveDomain picks the effective vocabulary domain. "auto" sniffs the
// claim for finance exposures and otherwise defaults to health, which is
// also the fallback for unknown domains.
func (a *Analyzer) resolveDomain(req claim.AnalyzeRequest) claim.Domain {
	domain := claim.Domain(strings.ToLower(string(req.Domain)))
	if domain != claim.DomainAuto {
		return domain
	}

	t := strings.ToLower(req.TextClaim)
	for _, exp := range vocabularyFor(claim.DomainFinance).Exposures {
		if strings.Contains(t, exp.Name) {
			return claim.DomainFinance
		}
	}
	return claim.DomainHealth
}
