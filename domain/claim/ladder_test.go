package claim

import (
	"testing"
)

// TestDisplayForRung tests the label/style pairing for every rung plus the
// fail-open default
func TestDisplayForRung(t *testing.T) {
	tests := []struct {
		rung  Rung
		label string
		style string
	}{
		{RungAssociation, "Association", "rung-l1"},
		{RungIntervention, "Intervention", "rung-l2"},
		{RungCounterfactual, "Counterfactual", "rung-l3"},
		{Rung(""), "Association", "rung-l1"},
		{Rung("L9"), "Association", "rung-l1"},
	}

	for _, test := range tests {
		got := DisplayForRung(test.rung)
		if got.Label != test.label {
			t.Errorf("rung %q: expected label %q, got %q", test.rung, test.label, got.Label)
		}
		if got.Style != test.style {
			t.Errorf("rung %q: expected style %q, got %q", test.rung, test.style, got.Style)
		}
	}
}

// TestNewAnalyzeRequestPeerReviewed tests PeerReviewed derivation from the
// source type literal
func TestNewAnalyzeRequestPeerReviewed(t *testing.T) {
	peer := "peer-reviewed"
	news := "news"
	url := "https://example.edu/study"

	req := NewAnalyzeRequest("Coffee affects sleep", DomainAuto, []SourceRef{
		{URL: &url, Type: &peer},
	})
	if len(req.Sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(req.Sources))
	}
	if req.Sources[0].PeerReviewed == nil || !*req.Sources[0].PeerReviewed {
		t.Error("expected PeerReviewed true for type peer-reviewed")
	}

	req = NewAnalyzeRequest("Coffee affects sleep", DomainAuto, []SourceRef{
		{URL: &url, Type: &news},
	})
	if req.Sources[0].PeerReviewed == nil || *req.Sources[0].PeerReviewed {
		t.Error("expected PeerReviewed false for type news")
	}
}

// TestNewAnalyzeRequestEmptySources tests that nil sources become an empty
// slice so the wire payload carries Sources: []
func TestNewAnalyzeRequestEmptySources(t *testing.T) {
	req := NewAnalyzeRequest("  Does coffee cause better sleep?  ", DomainAuto, nil)
	if req.Sources == nil {
		t.Error("expected non-nil empty source slice")
	}
	if len(req.Sources) != 0 {
		t.Errorf("expected 0 sources, got %d", len(req.Sources))
	}
	if req.TextClaim != "Does coffee cause better sleep?" {
		t.Errorf("expected trimmed claim, got %q", req.TextClaim)
	}
}

// TestValidateEmptyClaim tests local validation of the claim text
func TestValidateEmptyClaim(t *testing.T) {
	if err := NewAnalyzeRequest("   ", DomainHealth, nil).Validate(); err == nil {
		t.Error("expected error for blank claim")
	}
	if err := NewAnalyzeRequest("Sugar causes weight gain", DomainHealth, nil).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
