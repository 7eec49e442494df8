// Package trafilatura strips boilerplate from raw HTML pages. Team pages
// arrive wrapped in navigation, cookie banners, and footers full of
// "Contact Us" style anchor text that the name detectors would otherwise
// have to fight through, so HTML-only pages pass through this readability
// step before conversion to markdown.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/prospect"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements prospect.Extractor at compile time.
var _ prospect.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull main content out of HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content region. Fallback
// extraction stays enabled: team pages are often grid layouts that the
// primary algorithm scores as boilerplate.
func (e *Extractor) Extract(rawHTML string) (*prospect.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, prospect.Errorf(prospect.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &prospect.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node back to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
