// Package heuristic implements the markdown-based extraction strategies:
// the primary regex name-boundary strategy and the last-resort heading
// strategy, plus the text normalizer they share.
package heuristic

import (
	"regexp"
	"strings"

	"github.com/fwojciec/prospect"
)

var (
	imagePattern     = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)
	linkPattern      = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldPattern      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern    = regexp.MustCompile(`\*([^*\n]+)\*`)
	boldUnderscore   = regexp.MustCompile(`__([^_]+)__`)
	italicUnderscore = regexp.MustCompile(`\b_([^_\n]+)_\b`)
)

// Normalize strips markdown decoration while preserving hyperlink targets
// that point at a professional-network domain, so a profile URL is not lost
// when its anchor text is stripped. Image syntax is reduced to alt text and
// emphasis markers to their inner text. Pure function.
func Normalize(markdown string, rules *prospect.RuleSet) string {
	// Images first: a linked image would otherwise leave a stray "!".
	out := imagePattern.ReplaceAllString(markdown, "$1")

	out = linkPattern.ReplaceAllStringFunc(out, func(m string) string {
		sub := linkPattern.FindStringSubmatch(m)
		label, target := sub[1], sub[2]
		if rules.IsProfileURL(target) {
			return label + " " + target
		}
		return label
	})

	out = boldPattern.ReplaceAllString(out, "$1")
	out = italicPattern.ReplaceAllString(out, "$1")
	out = boldUnderscore.ReplaceAllString(out, "$1")
	out = italicUnderscore.ReplaceAllString(out, "$1")

	return out
}

// tooShort reports whether the text is too small to pattern-match safely.
func tooShort(text string) bool {
	return len(strings.TrimSpace(text)) < prospect.MinContentLength
}
