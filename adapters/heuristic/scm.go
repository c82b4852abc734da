package heuristic

import (
	"regexp"
	"strings"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"claimguard/domain/causal"
	"claimguard/domain/claim"
)

// ScmBuilder derives a causal template (X, Y, Z, edges) from the claim text
// and the domain vocabulary. Extraction first tries causal verb patterns to
// pull candidate X/Y phrases, maps those onto the vocabulary by token
// overlap, and falls back to plain substring matching when no pattern fits.
type ScmBuilder struct {
	verbPatterns []*regexp.Regexp
	tokenPattern *regexp.Regexp
	trimPattern  *regexp.Regexp
}

// NewScmBuilder compiles the extraction patterns once
func NewScmBuilder() *ScmBuilder {
	return &ScmBuilder{
		verbPatterns: compileAll([]string{
			`^(.+?)\s+(causes?|affects?|impacts?|increases?|reduces?|improves?|worsens?)\s+(.+)$`,
			`^(.+?)\s+leads?\s+to\s+(.+)$`,
			`^(.+?)\s+results?\s+in\s+(.+)$`,
		}),
		tokenPattern: regexp.MustCompile(`\w+`),
		trimPattern:  regexp.MustCompile(`[.,!?;:]+$`),
	}
}

// BuildTemplate constructs the SCM template for a claim: X → Y plus, for
// each confounder z, z → X and z → Y.
func (b *ScmBuilder) BuildTemplate(text string, domain claim.Domain) causal.Template {
	cfg := vocabularyFor(domain)
	exposure, outcome := b.pickExposureAndOutcome(text, cfg)

	tpl := causal.Template{
		X: exposure.Name,
		Y: outcome,
		Z: append([]string(nil), exposure.Confounders...),
		Note: "Auto-generated SCM template based on domain vocabulary and " +
			"pattern-based extraction from the claim text.",
	}

	tpl.Edges = append(tpl.Edges, causal.Edge{From: tpl.X, To: tpl.Y})
	for _, z := range tpl.Z {
		tpl.Edges = append(tpl.Edges, causal.Edge{From: z, To: tpl.X})
		tpl.Edges = append(tpl.Edges, causal.Edge{From: z, To: tpl.Y})
	}

	return tpl
}

// IsAcyclic verifies the emitted edge set forms a DAG. Vocabulary-driven
// templates always should; this guards hand-edited vocabularies.
func IsAcyclic(tpl causal.Template) bool {
	g := simple.NewDirectedGraph()
	ids := make(map[string]int64)

	nodeFor := func(name string) int64 {
		if id, ok := ids[name]; ok {
			return id
		}
		n := g.NewNode()
		g.AddNode(n)
		ids[name] = n.ID()
		return n.ID()
	}

	for _, e := range tpl.Edges {
		from, to := nodeFor(e.From), nodeFor(e.To)
		if from == to {
			return false
		}
		g.SetEdge(g.NewEdge(g.Node(from), g.Node(to)))
	}

	_, err := topo.Sort(g)
	return err == nil
}

// extractXYCandidates pulls (X phrase, Y phrase) from the claim via the verb
// patterns, or empty strings when nothing matches
func (b *ScmBuilder) extractXYCandidates(text string) (string, string) {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, pat := range b.verbPatterns {
		m := pat.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		left := strings.TrimSpace(m[1])
		right := strings.TrimSpace(m[len(m)-1])

		left = b.trimPattern.ReplaceAllString(left, "")
		right = b.trimPattern.ReplaceAllString(right, "")

		if left != "" && right != "" {
			return left, right
		}
	}
	return "", ""
}

// bestMatch maps a free-text phrase to the closest candidate by substring
// bonus plus token overlap; empty result means no overlap at all
func (b *ScmBuilder) bestMatch(phrase string, candidates []string) string {
	phrase = strings.ToLower(phrase)
	phraseTokens := tokenSet(b.tokenPattern, phrase)

	best := ""
	bestScore := 0

	for _, cand := range candidates {
		candLower := strings.ToLower(cand)
		candTokens := tokenSet(b.tokenPattern, candLower)

		var score int
		if strings.Contains(phrase, candLower) || strings.Contains(candLower, phrase) {
			score = len(candTokens) + 1
		} else {
			score = overlap(phraseTokens, candTokens)
		}

		if score > bestScore {
			bestScore = score
			best = cand
		}
	}

	return best
}

// fallbackExposureAndOutcome is the legacy behavior: first exposure whose
// name occurs in the claim (else the first exposure), then likewise for its
// outcomes
func (b *ScmBuilder) fallbackExposureAndOutcome(text string, cfg DomainConfig) (ExposureConfig, string) {
	t := strings.ToLower(text)

	exposure := cfg.Exposures[0]
	for _, exp := range cfg.Exposures {
		if strings.Contains(t, strings.ToLower(exp.Name)) {
			exposure = exp
			break
		}
	}

	outcome := exposure.Outcomes[0]
	for _, y := range exposure.Outcomes {
		if strings.Contains(t, strings.ToLower(y)) {
			outcome = y
			break
		}
	}

	return exposure, outcome
}

func (b *ScmBuilder) pickExposureAndOutcome(text string, cfg DomainConfig) (ExposureConfig, string) {
	xPhrase, yPhrase := b.extractXYCandidates(text)
	if xPhrase == "" && yPhrase == "" {
		return b.fallbackExposureAndOutcome(text, cfg)
	}

	names := make([]string, 0, len(cfg.Exposures))
	for _, exp := range cfg.Exposures {
		names = append(names, exp.Name)
	}

	var exposure *ExposureConfig
	if xPhrase != "" {
		if name := b.bestMatch(xPhrase, names); name != "" {
			for i := range cfg.Exposures {
				if cfg.Exposures[i].Name == name {
					exposure = &cfg.Exposures[i]
					break
				}
			}
		}
	}
	if exposure == nil {
		return b.fallbackExposureAndOutcome(text, cfg)
	}

	outcome := ""
	if yPhrase != "" && len(exposure.Outcomes) > 0 {
		outcome = b.bestMatch(yPhrase, exposure.Outcomes)
	}
	if outcome == "" {
		t := strings.ToLower(text)
		for _, y := range exposure.Outcomes {
			if strings.Contains(t, strings.ToLower(y)) {
				outcome = y
				break
			}
		}
	}
	if outcome == "" {
		outcome = exposure.Outcomes[0]
	}

	return *exposure, outcome
}

func tokenSet(pat *regexp.Regexp, s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range pat.FindAllString(s, -1) {
		set[tok] = true
	}
	return set
}

func overlap(a, b map[string]bool) int {
	n := 0
	for tok := range a {
		if b[tok] {
			n++
		}
	}
	return n
}
