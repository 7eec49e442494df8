// Package engine orchestrates the extraction pipeline for a single page:
// strategy selection and escalation, confidence scoring, and intra-page
// deduplication.
package engine

import (
	"strings"

	"github.com/fwojciec/prospect"
	"github.com/fwojciec/prospect/goquery"
	"github.com/fwojciec/prospect/heuristic"
	"github.com/fwojciec/prospect/htmltomarkdown"
	"github.com/fwojciec/prospect/trafilatura"
	"golang.org/x/net/html"
)

// Ensure Engine implements prospect.Engine at compile time.
var _ prospect.Engine = (*Engine)(nil)

// DefaultThreshold is the candidate count below which the orchestrator
// escalates to the next strategy. Single-name pages are rarely rosters worth
// strategy-switching, while a page that holds a team should yield at least a
// couple of names under the primary strategy if it is going to yield any.
const DefaultThreshold = 2

// Engine runs the strategy escalation chain over one page. Fields are
// exported so callers can swap individual strategies; New wires the default
// chain. An Engine holds no state between calls, so one instance serves
// concurrent extractions without synchronization.
type Engine struct {
	// Primary runs first, against markdown.
	Primary prospect.Strategy

	// Blocks and Structured run against HTML when the primary yield is
	// below Threshold; the larger of their results is kept.
	Blocks     prospect.Strategy
	Structured prospect.Strategy

	// Fallback is the last-resort heading scan over markdown.
	Fallback prospect.Strategy

	// Extractor and Converter turn HTML-only pages into markdown for the
	// text strategies.
	Extractor prospect.Extractor
	Converter prospect.Converter

	// Threshold is the escalation cutoff. Zero means DefaultThreshold.
	Threshold int

	rules *prospect.RuleSet
}

// New returns an Engine with the default strategy chain bound to the given
// rules. A nil rules falls back to the compiled defaults.
func New(rules *prospect.RuleSet) *Engine {
	if rules == nil {
		rules = prospect.DefaultRules()
	}
	return &Engine{
		Primary:    heuristic.NewNameBoundary(rules),
		Blocks:     goquery.NewBlocks(rules),
		Structured: goquery.NewStructuredData(rules),
		Fallback:   heuristic.NewHeading(rules),
		Extractor:  trafilatura.NewExtractor(),
		Converter:  htmltomarkdown.NewConverter(),
		Threshold:  DefaultThreshold,
		rules:      rules,
	}
}

// Extract runs the escalation chain and returns the scored, deduplicated
// candidates for one page. The result of the single best-yielding strategy
// run is kept; partial results from different strategies are never merged,
// so one page's candidates all share the same confidence assumptions.
func (e *Engine) Extract(page *prospect.RawPage) []prospect.Candidate {
	if page == nil {
		return nil
	}

	// Work on a copy so markdown synthesis never mutates the caller's page.
	p := *page
	if strings.TrimSpace(p.Markdown) == "" && strings.TrimSpace(p.HTML) != "" {
		p.Markdown = e.markdownFromHTML(p.HTML)
	}
	if len(strings.TrimSpace(p.Markdown)) < prospect.MinContentLength &&
		len(strings.TrimSpace(p.HTML)) < prospect.MinContentLength {
		return nil
	}

	best := e.Primary.Extract(&p)
	if len(best) < e.threshold() && strings.TrimSpace(p.HTML) != "" {
		fromHTML := e.Blocks.Extract(&p)
		if structured := e.Structured.Extract(&p); len(structured) > len(fromHTML) {
			fromHTML = structured
		}
		if len(fromHTML) > len(best) {
			best = fromHTML
		}
	}
	if len(best) < e.threshold() && strings.TrimSpace(p.Markdown) != "" {
		if fallback := e.Fallback.Extract(&p); len(fallback) > len(best) {
			best = fallback
		}
	}
	if len(best) == 0 {
		return nil
	}

	for i := range best {
		best[i].SourceURL = p.SourceURL
		best[i].Confidence = prospect.Score(&best[i], e.rules)
	}
	return prospect.Dedupe(best, e.rules)
}

func (e *Engine) threshold() int {
	if e.Threshold > 0 {
		return e.Threshold
	}
	return DefaultThreshold
}

// markdownFromHTML synthesizes markdown for an HTML-only page: boilerplate
// removal first, then conversion. If either step fails it degrades to
// tag-stripped text so the line-oriented strategies still get something to
// chew on.
func (e *Engine) markdownFromHTML(rawHTML string) string {
	content := rawHTML
	if result, err := e.Extractor.Extract(rawHTML); err == nil && strings.TrimSpace(result.ContentHTML) != "" {
		content = result.ContentHTML
	}
	if markdown, err := e.Converter.Convert(content); err == nil {
		return markdown
	}
	return stripTags(content)
}

// stripTags renders an HTML fragment as plain text with newlines at block
// boundaries.
func stripTags(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "template":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "section", "article", "li", "td", "tr",
				"br", "h1", "h2", "h3", "h4", "h5", "h6":
				b.WriteByte('\n')
			}
		}
	}
	walk(doc)
	return b.String()
}
