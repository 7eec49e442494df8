// Package goquery implements the HTML-based extraction strategies: the
// structured-data strategy over embedded JSON-LD Person records, and the
// block/card strategy over block-level element boundaries.
package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/prospect"
)

// Ensure StructuredData implements prospect.Strategy at compile time.
var _ prospect.Strategy = (*StructuredData)(nil)

// StructuredData extracts people from JSON-LD blocks embedded in the page.
// When present, this is the most reliable source: the page author asserted
// the structure, so no context-window heuristics are needed.
type StructuredData struct {
	rules *prospect.RuleSet
}

// NewStructuredData returns the strategy bound to the given rules.
func NewStructuredData(rules *prospect.RuleSet) *StructuredData {
	return &StructuredData{rules: rules}
}

// Name identifies the strategy.
func (s *StructuredData) Name() string { return "structured-data" }

// Extract parses every ld+json script block and maps Person entities,
// whether top-level, in arrays, or nested in a @graph container. Malformed
// blocks are skipped, never propagated.
func (s *StructuredData) Extract(page *prospect.RawPage) []prospect.Candidate {
	if strings.TrimSpace(page.HTML) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil
	}

	var out []prospect.Candidate
	doc.Find(`script[type='application/ld+json']`).Each(func(_ int, sel *goquery.Selection) {
		raw := strings.TrimSpace(sel.Text())
		if raw == "" {
			return
		}
		var payload any
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return
		}
		s.collectPersons(payload, &out)
	})
	return out
}

func (s *StructuredData) collectPersons(payload any, out *[]prospect.Candidate) {
	switch t := payload.(type) {
	case map[string]any:
		if isPersonType(t["@type"]) {
			if c, ok := s.personCandidate(t); ok {
				*out = append(*out, c)
			}
		}
		if graph, ok := t["@graph"].([]any); ok {
			for _, item := range graph {
				s.collectPersons(item, out)
			}
		}
	case []any:
		for _, item := range t {
			s.collectPersons(item, out)
		}
	}
}

func isPersonType(v any) bool {
	switch t := v.(type) {
	case string:
		return t == "Person"
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "Person" {
				return true
			}
		}
	}
	return false
}

// personCandidate maps one Person entity to a candidate. Single-token names
// are rejected: they are usually brands or first-name-only bylines.
func (s *StructuredData) personCandidate(m map[string]any) (prospect.Candidate, bool) {
	name := strings.Join(strings.Fields(stringValue(m["name"])), " ")
	if len(strings.Fields(name)) < 2 {
		return prospect.Candidate{}, false
	}

	c := prospect.Candidate{
		Name:  name,
		Title: strings.TrimSpace(stringValue(m["jobTitle"])),
		Email: strings.TrimPrefix(strings.TrimSpace(stringValue(m["email"])), "mailto:"),
	}

	switch w := m["worksFor"].(type) {
	case string:
		c.Company = strings.TrimSpace(w)
	case map[string]any:
		c.Company = strings.TrimSpace(stringValue(w["name"]))
	}

	for _, link := range stringValues(m["sameAs"]) {
		if s.rules.IsProfileURL(link) {
			c.LinkedInURL = link
			break
		}
	}

	return c, true
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func stringValues(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
