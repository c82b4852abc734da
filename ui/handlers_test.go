package ui

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"claimguard/domain/analysis"
	"claimguard/domain/causal"
	"claimguard/domain/claim"
	"claimguard/domain/trust"
)

// fakeAnalyzer scripts the backend boundary for handler tests
type fakeAnalyzer struct {
	result  *analysis.Result
	err     error
	healthy bool
	calls   int
	lastReq claim.AnalyzeRequest
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, req claim.AnalyzeRequest) (*analysis.Result, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeAnalyzer) Healthy(ctx context.Context) bool { return f.healthy }

func coffeeResult() *analysis.Result {
	return &analysis.Result{
		TextClaim: "Does coffee cause better sleep?",
		Domain:    claim.DomainHealth,
		Rung:      claim.RungIntervention,
		Template: causal.Template{
			X:     "coffee",
			Y:     "sleep quality",
			Edges: []causal.Edge{{From: "coffee", To: "sleep quality"}},
		},
		Estimand:    analysis.Estimand{Identifiable: false, Reason: "Back-door not satisfied with available variables; require experiment or instrument."},
		Aggregated:  trust.Score{M: 0.8, C: 0.6, Source: "aggregate", Details: "2 sources, avg recency 3y"},
		Explanation: "Claim: \"Does coffee cause better sleep?\"\n\nThis is treated as an intervention-level (L2) claim.",
	}
}

func postForm(t *testing.T, app *App, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, req)
	return w
}

// TestIndexIdle tests the idle page before any analysis
func TestIndexIdle(t *testing.T) {
	app, err := NewApp(&fakeAnalyzer{healthy: true})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, trust.HintNoAnalysis) {
		t.Error("idle page should show the default uncertainty hint")
	}
	if !strings.Contains(body, "backend connected") {
		t.Error("healthy backend should show the connected indicator")
	}
}

// TestAnalyzeEmptyClaim tests that a blank claim never reaches the backend
func TestAnalyzeEmptyClaim(t *testing.T) {
	fake := &fakeAnalyzer{healthy: true}
	app, _ := NewApp(fake)

	w := postForm(t, app, url.Values{"claim": {"   "}, "domain": {"auto"}})

	if fake.calls != 0 {
		t.Error("empty claim should not trigger a backend call")
	}
	if !strings.Contains(w.Body.String(), statusEmptyClaim) {
		t.Error("expected the inline empty-claim status")
	}
}

// TestAnalyzeSuccessRendersResult tests the full success render
func TestAnalyzeSuccessRendersResult(t *testing.T) {
	fake := &fakeAnalyzer{healthy: true, result: coffeeResult()}
	app, _ := NewApp(fake)

	w := postForm(t, app, url.Values{"claim": {"Does coffee cause better sleep?"}, "domain": {"auto"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()

	for _, want := range []string{
		"Intervention",     // ladder badge
		"<svg",             // diagram rendered
		">coffee<",         // treatment node label
		">sleep quality<",  // outcome node label
		"80%",              // trust percent
		"60%",              // confidence percent
		"0.80",             // hint two-decimal formatting
		"not identifiable", // estimand verdict
	} {
		if !strings.Contains(body, want) {
			t.Errorf("result page missing %q", want)
		}
	}

	if fake.lastReq.Domain != claim.DomainAuto {
		t.Errorf("expected auto domain on the request, got %s", fake.lastReq.Domain)
	}
	if len(fake.lastReq.Sources) != 0 {
		t.Errorf("empty source form should send no sources, got %d", len(fake.lastReq.Sources))
	}
}

// TestAnalyzeFormSource tests zero-or-one source assembly from the form
func TestAnalyzeFormSource(t *testing.T) {
	fake := &fakeAnalyzer{healthy: true, result: coffeeResult()}
	app, _ := NewApp(fake)

	postForm(t, app, url.Values{
		"claim":         {"Coffee affects sleep"},
		"domain":        {"health"},
		"source_url":    {"https://pubmed.ncbi.nlm.nih.gov/12345/"},
		"source_type":   {"peer-reviewed"},
		"source_sample": {"1200"},
		"source_year":   {"2021"},
	})

	if len(fake.lastReq.Sources) != 1 {
		t.Fatalf("expected one source, got %d", len(fake.lastReq.Sources))
	}
	src := fake.lastReq.Sources[0]
	if src.PeerReviewed == nil || !*src.PeerReviewed {
		t.Error("peer-reviewed type should set PeerReviewed true")
	}
	if src.SampleSize == nil || *src.SampleSize != 1200 {
		t.Error("sample size should parse from the form")
	}
	if src.Title != nil {
		t.Error("blank title should stay nil")
	}
}

// TestAnalyzeFailureKeepsLastResult tests the degraded error display
func TestAnalyzeFailureKeepsLastResult(t *testing.T) {
	fake := &fakeAnalyzer{healthy: true, result: coffeeResult()}
	app, _ := NewApp(fake)

	postForm(t, app, url.Values{"claim": {"Does coffee cause better sleep?"}})

	// Backend goes away; the next submission fails.
	fake.err = fmt.Errorf("connection refused")
	fake.healthy = false
	w := postForm(t, app, url.Values{"claim": {"Sugar causes weight gain"}})

	body := w.Body.String()
	if !strings.Contains(body, statusBackendError) {
		t.Error("expected the generic backend-error status")
	}
	if !strings.Contains(body, "Does coffee cause better sleep?") {
		t.Error("previous result should remain displayed after a failure")
	}
	if !strings.Contains(body, "backend unreachable") {
		t.Error("connectivity indicator should show the degraded state")
	}
}
