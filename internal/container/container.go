package container

import (
	"fmt"
	"log"

	"claimguard/adapters/analyzer"
	"claimguard/adapters/heuristic"
	"claimguard/adapters/trustnet"
	"claimguard/internal/config"
	"claimguard/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Trust infrastructure
	Fetcher     *trustnet.Fetcher
	TrustEngine *trustnet.Engine

	// Analysis backend (remote HTTP client or the embedded pipeline)
	Analyzer ports.AnalyzerPort
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{Config: cfg}

	c.Fetcher = trustnet.NewFetcher(cfg.Trust.FetchTimeout, cfg.Trust.CacheTTL)
	c.TrustEngine = trustnet.NewEngine(c.Fetcher)

	if cfg.Backend.Embedded {
		log.Println("using embedded heuristic analyzer")
		c.Analyzer = heuristic.NewAnalyzer(c.TrustEngine)
	} else {
		log.Printf("using remote analyzer at %s", cfg.Backend.URL)
		c.Analyzer = analyzer.NewClient(cfg.Backend.URL, cfg.Backend.Timeout)
	}

	return c, nil
}
