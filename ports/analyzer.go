package ports

import (
	"context"

	"claimguard/domain/analysis"
	"claimguard/domain/claim"
)

// AnalyzerPort is the boundary to the analysis backend. The backend's
// reasoning is opaque to the presentation layer: it accepts a claim plus
// optional evidence sources and returns a structured verdict.
type AnalyzerPort interface {
	Analyze(ctx context.Context, req claim.AnalyzeRequest) (*analysis.Result, error)
}

// HealthChecker is implemented by analyzers that can report backend
// reachability for the connectivity indicator.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}
