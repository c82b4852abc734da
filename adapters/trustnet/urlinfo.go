package trustnet

import (
	"strings"

	"golang.org/x/net/html"
)

// URLAnalysis captures what could be inferred about an evidence source from
// its URL and fetched content
type URLAnalysis struct {
	Host          string
	TLD           string
	Scheme        string
	TypeInferred  string // "peer-reviewed" | "whitepaper" | "news" | "blog" | "unknown"
	YearInferred  int    // 0 when unknown
	ContentOK     bool
	ContentLength int
	Details       string
}

var academicTLDs = []string{".edu", ".ac.uk", ".ac.in", ".ac", ".edu.au", ".edu.in"}
var govTLDs = []string{".gov", ".gov.uk", ".gov.in", ".gov.au"}
var credibleTLDs = []string{".edu", ".ac.uk", ".ac.in", ".gov", ".gov.uk", ".gov.in"}

var newsHints = []string{"news", "reuters", "bbc", "nytimes", "bloomberg", "guardian"}
var blogHints = []string{"blog", "medium.com", "substack.com", "wordpress", "blogspot"}

// CredibleTLD reports whether the TLD gets the academic/gov trust and
// confidence bonus
func (a URLAnalysis) CredibleTLD() bool {
	for _, tld := range credibleTLDs {
		if a.TLD == tld {
			return true
		}
	}
	return false
}

func matchTLD(host string) string {
	suffixes := append(append([]string{}, academicTLDs...), govTLDs...)
	suffixes = append(suffixes, ".org", ".com", ".net", ".info", ".xyz")
	for _, suffix := range suffixes {
		if strings.HasSuffix(host, suffix) {
			return suffix
		}
	}
	return ""
}

// inferType categorizes a source from its host, path and page text. Journal
// and preprint hosts are recognized explicitly; otherwise academic/gov TLDs
// read as whitepapers, then news and blog hints apply.
func inferType(host, path, text string) string {
	hostLower := strings.ToLower(host)
	combined := hostLower + " " + strings.ToLower(path)

	if strings.Contains(combined, "pubmed") ||
		strings.Contains(combined, "ncbi.nlm.nih.gov") ||
		strings.Contains(combined, "doi.org") {
		return "peer-reviewed"
	}
	if strings.Contains(combined, "arxiv.org") {
		return "whitepaper"
	}

	for _, tld := range append(append([]string{}, govTLDs...), academicTLDs...) {
		if strings.Contains(hostLower, tld) {
			return "whitepaper"
		}
	}

	for _, h := range newsHints {
		if strings.Contains(hostLower, h) {
			return "news"
		}
	}
	for _, h := range blogHints {
		if strings.Contains(combined, h) {
			return "blog"
		}
	}
	if strings.Contains(strings.ToLower(text), "blog") {
		return "blog"
	}

	return "unknown"
}

// extractYear finds the earliest plausible publication year (2000..2035)
// mentioned in the text
func extractYear(text string) int {
	best := 0
	for i := 0; i+4 <= len(text); i++ {
		if text[i] != '2' || text[i+1] != '0' {
			continue
		}
		if !isDigit(text[i+2]) || !isDigit(text[i+3]) {
			continue
		}
		year := 2000 + int(text[i+2]-'0')*10 + int(text[i+3]-'0')
		if year > 2035 {
			continue
		}
		if best == 0 || year < best {
			best = year
		}
	}
	return best
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// titleAndMeta walks the parsed document and collects the <title> text plus
// meta tag content values, the signals year and type inference key on
func titleAndMeta(doc *html.Node) (string, string) {
	var title string
	var meta []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					title = n.FirstChild.Data
				}
			case "meta":
				for _, attr := range n.Attr {
					if attr.Key == "content" && attr.Val != "" {
						meta = append(meta, attr.Val)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	metaText := strings.Join(meta, " ")
	if len(metaText) > 5000 {
		metaText = metaText[:5000]
	}
	return title, metaText
}
