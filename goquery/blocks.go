package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/prospect"
	"github.com/fwojciec/prospect/detect"
	"golang.org/x/net/html"
)

// Ensure Blocks implements prospect.Strategy at compile time.
var _ prospect.Strategy = (*Blocks)(nil)

// Block text length band. Below the floor a block cannot hold a name plus a
// secondary signal; above the ceiling it is page-level chrome, not a card.
const (
	minBlockLength = 10
	maxBlockLength = 2000
)

// blockSelector matches the elements team pages use as person card
// containers.
const blockSelector = "div, section, article, li, td, figure"

// Blocks extracts people from card-shaped HTML fragments. Team pages tend to
// wrap each person in a small block element, so a block whose text holds a
// name plus at least one secondary signal is treated as one person's card.
type Blocks struct {
	rules    *prospect.RuleSet
	detector *detect.Detector
}

// NewBlocks returns the strategy bound to the given rules.
func NewBlocks(rules *prospect.RuleSet) *Blocks {
	return &Blocks{rules: rules, detector: detect.New(rules)}
}

// Name identifies the strategy.
func (s *Blocks) Name() string { return "blocks" }

// Extract walks every block-level element and emits a candidate for blocks
// that pair a person name with a title, email, profile link, or phone.
// Nested blocks yield the same person more than once; duplicates collapse by
// name, keeping the candidate with the most populated fields.
func (s *Blocks) Extract(page *prospect.RawPage) []prospect.Candidate {
	if strings.TrimSpace(page.HTML) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil
	}

	var out []prospect.Candidate
	seen := make(map[string]int)
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		text := s.blockText(sel)
		if len(text) < minBlockLength || len(text) > maxBlockLength {
			return
		}

		names := s.detector.Names(text)
		if len(names) == 0 {
			return
		}
		anchor := names[0]

		c := prospect.Candidate{
			Name:        anchor.Name,
			Title:       s.findTitle(text, anchor.Name),
			Company:     s.detector.Company(text),
			Email:       s.detector.Email(text),
			Phone:       s.detector.Phone(text),
			LinkedInURL: s.detector.ProfileURL(text),
		}
		if c.Title == "" && c.Email == "" && c.LinkedInURL == "" && c.Phone == "" {
			return
		}

		key := strings.ToLower(c.Name)
		if idx, ok := seen[key]; ok {
			if c.FieldCount() > out[idx].FieldCount() {
				out[idx] = c
			}
			return
		}
		seen[key] = len(out)
		out = append(out, c)
	})
	return out
}

// blockText renders a block's text with newlines at block boundaries so the
// line-oriented detectors see the same shape they would in markdown. Profile
// link targets live in href attributes, so anchors pointing at profile hosts
// have their URL appended after the link text.
func (s *Blocks) blockText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		s.writeNodeText(node, &b)
	}

	lines := strings.Split(b.String(), "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func (s *Blocks) writeNodeText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			s.writeNodeText(c, b)
		}
		if n.Data == "a" {
			if href, ok := attr(n, "href"); ok && s.rules.IsProfileURL(href) {
				b.WriteByte(' ')
				b.WriteString(href)
			}
		}
		if isBlockTag(n.Data) {
			b.WriteByte('\n')
		}
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			s.writeNodeText(c, b)
		}
	}
}

func (s *Blocks) findTitle(text, name string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.EqualFold(line, name) {
			continue
		}
		if s.detector.Title(line) {
			return line
		}
	}
	return ""
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func isBlockTag(tag string) bool {
	switch tag {
	case "p", "div", "section", "article", "li", "ul", "ol", "td", "th",
		"tr", "table", "figure", "figcaption", "header", "footer", "br",
		"h1", "h2", "h3", "h4", "h5", "h6", "blockquote":
		return true
	}
	return false
}
