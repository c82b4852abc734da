package ui

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"claimguard/domain/claim"
	"claimguard/ports"
)

const statusBackendError = "error during analysis, check backend"
const statusEmptyClaim = "please enter a claim to analyze"

// handleIndex renders the page for the current view state
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, "")
}

// handleAnalyze validates the form, calls the analysis backend and installs
// the outcome in the result slot. Responses are applied under the sequence
// number issued at submit time, so a slow response that was superseded by a
// newer submission is discarded instead of overwriting it.
func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	req := claim.NewAnalyzeRequest(
		r.FormValue("claim"),
		claim.Domain(r.FormValue("domain")),
		sourceFromForm(r),
	)

	// Empty-claim error is local: no request leaves the process.
	if err := req.Validate(); err != nil {
		a.render(w, r, statusEmptyClaim)
		return
	}

	seq := a.slot.Begin()
	result, err := a.analyzer.Analyze(r.Context(), req)
	if err != nil {
		log.Printf("analysis request failed: %v", err)
		a.slot.Fail(seq, statusBackendError)
		a.render(w, r, "")
		return
	}

	if a.slot.Apply(seq, result) {
		log.Printf("analysis %s applied: rung=%s", result.ID, result.Rung)
	}
	a.render(w, r, "")
}

// sourceFromForm assembles zero or one evidence source from the form state
func sourceFromForm(r *http.Request) []claim.SourceRef {
	title := strings.TrimSpace(r.FormValue("source_title"))
	url := strings.TrimSpace(r.FormValue("source_url"))
	typ := strings.TrimSpace(r.FormValue("source_type"))

	if title == "" && url == "" && typ == "" {
		return nil
	}

	src := claim.SourceRef{}
	if title != "" {
		src.Title = &title
	}
	if url != "" {
		src.URL = &url
	}
	if typ != "" {
		src.Type = &typ
	}
	if n, err := strconv.Atoi(r.FormValue("source_sample")); err == nil && n > 0 {
		src.SampleSize = &n
	}
	if y, err := strconv.Atoi(r.FormValue("source_year")); err == nil && y > 0 {
		src.Year = &y
	}

	return []claim.SourceRef{src}
}

func (a *App) render(w http.ResponseWriter, r *http.Request, statusOverride string) {
	vm := buildPageVM(a.slot.State(), a.backendHealthy(r.Context()))
	if statusOverride != "" {
		vm.StatusText = statusOverride
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, "index.html", vm); err != nil {
		log.Printf("template render failed: %v", err)
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

// backendHealthy drives the connectivity indicator; analyzers without a
// health probe count as reachable
func (a *App) backendHealthy(ctx context.Context) bool {
	hc, ok := a.analyzer.(ports.HealthChecker)
	if !ok {
		return true
	}
	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return hc.Healthy(probeCtx)
}
