package trustnet

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/temoto/robotstxt"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

const (
	userAgent       = "ClaimGuard/1.0"
	minContentBytes = 500
	maxContentBytes = 1 << 20
)

// Fetcher retrieves and inspects evidence URLs. Outbound traffic is polite:
// per-host rate limiting, robots.txt checks, and a TTL cache so repeated
// analyses of the same source do not refetch.
type Fetcher struct {
	httpClient *http.Client
	cache      *gocache.Cache

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	robots   map[string]*robotstxt.RobotsData

	perHostRate  rate.Limit
	perHostBurst int

	// resolveHost is swappable for tests; defaults to net.DefaultResolver
	resolveHost func(ctx context.Context, host string) error
}

// NewFetcher creates a fetcher with a bounded request timeout and cache TTL
func NewFetcher(timeout, cacheTTL time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		cache:        gocache.New(cacheTTL, 2*cacheTTL),
		limiters:     make(map[string]*rate.Limiter),
		robots:       make(map[string]*robotstxt.RobotsData),
		perHostRate:  rate.Limit(2),
		perHostBurst: 2,
		resolveHost: func(ctx context.Context, host string) error {
			_, err := net.DefaultResolver.LookupHost(ctx, host)
			return err
		},
	}
}

// Analyze inspects one evidence URL best-effort: every failure mode returns
// a usable fallback analysis rather than an error, since a dead link is a
// trust signal, not a fault.
func (f *Fetcher) Analyze(ctx context.Context, rawURL string) URLAnalysis {
	if cached, ok := f.cache.Get(rawURL); ok {
		return cached.(URLAnalysis)
	}
	result := f.analyze(ctx, rawURL)
	f.cache.SetDefault(rawURL, result)
	return result
}

func (f *Fetcher) analyze(ctx context.Context, rawURL string) URLAnalysis {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return URLAnalysis{TypeInferred: "unknown", Details: "URL present but could not fetch or parse."}
	}

	host := parsed.Hostname()
	fallback := URLAnalysis{
		Host:         host,
		TLD:          matchTLD(host),
		Scheme:       schemeOr(parsed.Scheme, "http"),
		TypeInferred: "unknown",
		Details:      "URL present but could not fetch or parse.",
	}

	// DNS precheck weeds out obvious garbage before any HTTP work
	if err := f.resolveHost(ctx, host); err != nil {
		return fallback
	}

	if !f.robotsAllow(ctx, parsed) {
		fallback.Details = "Fetch skipped: disallowed by robots.txt."
		return fallback
	}

	if err := f.wait(ctx, host); err != nil {
		return fallback
	}

	content, ok := f.get(ctx, rawURL)
	if !ok {
		return fallback
	}

	if len(content) < minContentBytes {
		short := fallback
		short.ContentLength = len(content)
		short.Details = "Fetched but content too short to analyze."
		return short
	}

	return f.inspect(fallback, parsed.Path, content)
}

func (f *Fetcher) inspect(base URLAnalysis, path, content string) URLAnalysis {
	result := base
	result.ContentOK = true
	result.ContentLength = len(content)

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		result.Details = "Fetched but HTML parsing failed."
		return result
	}

	title, metaText := titleAndMeta(doc)
	textForYear := title + " " + metaText
	if len(textForYear) > 8000 {
		textForYear = textForYear[:8000]
	}

	year := extractYear(textForYear)
	if year == 0 {
		head := content
		if len(head) > 20000 {
			head = head[:20000]
		}
		year = extractYear(head)
	}

	result.YearInferred = year
	result.TypeInferred = inferType(result.Host, path, title+" "+metaText)

	var bits []string
	if result.TypeInferred != "unknown" {
		bits = append(bits, "type: "+result.TypeInferred)
	}
	if year != 0 {
		bits = append(bits, fmt.Sprintf("year~%d", year))
	}
	if result.TLD != "" {
		bits = append(bits, "tld="+result.TLD)
	}
	if len(bits) == 0 {
		bits = append(bits, "no strong signals")
	}
	result.Details = strings.Join(bits, "; ")

	return result
}

func (f *Fetcher) get(ctx context.Context, rawURL string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxContentBytes))
	if err != nil {
		return "", false
	}
	return string(body), true
}

// wait blocks on the per-host rate limiter
func (f *Fetcher) wait(ctx context.Context, host string) error {
	f.mu.Lock()
	limiter, ok := f.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(f.perHostRate, f.perHostBurst)
		f.limiters[host] = limiter
	}
	f.mu.Unlock()
	return limiter.Wait(ctx)
}

// robotsAllow checks robots.txt for the URL's host. Unfetchable robots.txt
// allows by default.
func (f *Fetcher) robotsAllow(ctx context.Context, u *url.URL) bool {
	f.mu.Lock()
	data, ok := f.robots[u.Host]
	f.mu.Unlock()

	if !ok {
		robotsURL := fmt.Sprintf("%s://%s/robots.txt", schemeOr(u.Scheme, "http"), u.Host)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
		if err != nil {
			return true
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := f.httpClient.Do(req)
		if err != nil {
			return true
		}
		defer resp.Body.Close()

		data, err = robotstxt.FromResponse(resp)
		if err != nil {
			return true
		}
		f.mu.Lock()
		f.robots[u.Host] = data
		f.mu.Unlock()
	}

	return data.TestAgent(u.Path, userAgent)
}

func schemeOr(scheme, def string) string {
	if scheme == "" {
		return def
	}
	return scheme
}
