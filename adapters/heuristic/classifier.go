package heuristic

import (
	"regexp"
	"strings"

	"claimguard/domain/claim"
)

// Classifier places a natural-language claim on Pearl's causal ladder using
// regex markers: L3 counterfactual language is checked first, then L2
// causal/intervention language, and everything else is association-level L1.
type Classifier struct {
	l3Markers []*regexp.Regexp
	l2Markers []*regexp.Regexp
}

var l3Patterns = []string{
	`\bwhat if\b`,
	`\bhadn['’]t\b`,
	`\bhad\b.*\bnot\b`,
	`\bif\b.*\bhad\b`,
	`\bwould have\b`,
	`\bcould have\b`,
	`\bshould have\b`,
	`\bmight have\b`,
	`\bcounterfactual\b`,
}

var l2Patterns = []string{
	`\bcause(s|d)?\b`,
	`\bcausal\b`,
	`\baffect(s|ed|ing)?\b`,
	`\bimpact(s|ed|ing)?\b`,
	`\bleads? to\b`,
	`\bresults? in\b`,
	`\breduce(s|d)?\b`,
	`\bincrease(s|d)?\b`,
	`\bimprove(s|d)?\b`,
	`\bworsen(s|ed|ing)?\b`,
	`\bprevent(s|ed|ing)?\b`,
	`\bprotect(s|ed|ing)?\b`,
}

// NewClassifier compiles the marker sets once
func NewClassifier() *Classifier {
	return &Classifier{
		l3Markers: compileAll(l3Patterns),
		l2Markers: compileAll(l2Patterns),
	}
}

func compileAll(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return res
}

// Classify returns the highest rung whose markers match the claim text
func (c *Classifier) Classify(text string) claim.Rung {
	t := strings.ToLower(text)

	for _, pat := range c.l3Markers {
		if pat.MatchString(t) {
			return claim.RungCounterfactual
		}
	}
	for _, pat := range c.l2Markers {
		if pat.MatchString(t) {
			return claim.RungIntervention
		}
	}
	return claim.RungAssociation
}
