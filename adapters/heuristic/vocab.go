package heuristic

import (
	"claimguard/domain/claim"
)

// ExposureConfig describes one treatment variable the vocabulary knows,
// together with the outcomes it can plausibly act on and the confounders
// that affect both.
type ExposureConfig struct {
	Name        string
	Outcomes    []string
	Confounders []string
}

// DomainConfig is the vocabulary for one analysis domain
type DomainConfig struct {
	Exposures []ExposureConfig
}

var domainDictionary = map[claim.Domain]DomainConfig{
	claim.DomainHealth: {
		Exposures: []ExposureConfig{
			{
				Name:        "coffee",
				Outcomes:    []string{"sleep quality", "focus", "anxiety"},
				Confounders: []string{"sleep", "age", "stress", "workload"},
			},
			{
				Name:        "caffeine",
				Outcomes:    []string{"sleep quality", "alertness", "anxiety"},
				Confounders: []string{"sleep", "age", "stress"},
			},
			{
				Name:        "exercise",
				Outcomes:    []string{"anxiety", "weight", "mood"},
				Confounders: []string{"diet", "age", "baseline health"},
			},
			{
				Name:        "sugar",
				Outcomes:    []string{"weight gain", "energy", "metabolism"},
				Confounders: []string{"metabolism", "activity level", "age"},
			},
			{
				Name:        "screen time",
				Outcomes:    []string{"sleep quality", "focus"},
				Confounders: []string{"age", "stress", "time of day"},
			},
		},
	},
	claim.DomainFinance: {
		Exposures: []ExposureConfig{
			{
				Name:        "positive news",
				Outcomes:    []string{"stock return", "volume"},
				Confounders: []string{"market trend", "sector shock", "macro conditions"},
			},
			{
				Name:        "tweet sentiment",
				Outcomes:    []string{"stock return", "volume", "volatility"},
				Confounders: []string{"market trend", "bot activity", "fake accounts", "macro data"},
			},
			{
				Name:        "earnings surprise",
				Outcomes:    []string{"stock return", "volatility"},
				Confounders: []string{"guidance revisions", "macroeconomic conditions", "sector performance"},
			},
			{
				Name:        "rate cut",
				Outcomes:    []string{"stock return", "volatility", "market stability"},
				Confounders: []string{"inflation", "economic growth", "global market signals"},
			},
		},
	},
}

// vocabularyFor resolves the dictionary for a domain. Unknown domains
// (including "auto") fall back to health, matching the backend default.
func vocabularyFor(domain claim.Domain) DomainConfig {
	if cfg, ok := domainDictionary[domain]; ok {
		return cfg
	}
	return domainDictionary[claim.DomainHealth]
}
