// Package detect provides the small, independent signal matchers shared by
// every extraction strategy: person-name shape, job-title lines, company
// phrases, email addresses, phone numbers, and professional-network profile
// URLs. Detectors are pure functions over text spans; a miss is a zero
// value, never an error.
package detect

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/prospect"
)

// nameToken matches one capitalized-initial, lowercase-tail word, with an
// optional hyphenated second part (Jean-Paul).
const nameToken = `[A-Z][a-z]+(?:[-'][A-Z][a-z]+)?`

// namePattern matches a line that consists of 2-3 name tokens, optionally
// followed by a single trailing punctuation mark and a URL. Requiring the
// tokens to fill the whole line keeps sentence-leading phrases ("Acme Corp
// announced today...") out of the anchor set; the URL allowance is for
// names whose markdown hyperlink target the normalizer preserved onto the
// same line ("Jane Doe https://linkedin.com/in/janedoe").
var namePattern = regexp.MustCompile(
	`(?m)^[ \t]*(` + nameToken + `(?:[ \t]+` + nameToken + `){1,2})[ \t]*[,.:]?(?:[ \t]+https?://\S+)?[ \t]*$`,
)

// titleOnlyPatterns match phrases that satisfy the name shape but are
// freestanding job titles.
var titleOnlyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Chief\s+[A-Z][a-z]+\s+Officer$`),
	regexp.MustCompile(`^Vice\s+President\b`),
	regexp.MustCompile(`^(?:Director|Head)\s+[Oo]f\b`),
}

// maxTitleLength rejects prose lines that merely mention a role keyword.
const maxTitleLength = 150

// NameMatch is a confirmed person-name anchor and its character position in
// the scanned text.
type NameMatch struct {
	Name  string
	Start int
	End   int
}

// Detector runs the signal matchers against a rule set. A zero Detector is
// not usable; construct one with New.
type Detector struct {
	rules         *prospect.RuleSet
	suffixPattern *regexp.Regexp
}

// New returns a Detector bound to the given rules.
func New(rules *prospect.RuleSet) *Detector {
	return &Detector{
		rules:         rules,
		suffixPattern: compileSuffixPattern(rules.CompanySuffixes),
	}
}

// Names returns every confirmed person-name anchor in the text, in document
// order, with character positions suitable for context-window bounding.
func (d *Detector) Names(text string) []NameMatch {
	idxs := namePattern.FindAllStringSubmatchIndex(text, -1)
	if len(idxs) == 0 {
		return nil
	}

	matches := make([]NameMatch, 0, len(idxs))
	for _, idx := range idxs {
		start, end := idx[2], idx[3]
		name := text[start:end]
		if !d.isPersonName(name) {
			continue
		}
		matches = append(matches, NameMatch{Name: name, Start: start, End: end})
	}
	return matches
}

// MatchName reports whether the trimmed text is a confirmed person name,
// tolerating trailing punctuation or a preserved profile URL, and returns
// the bare name without either.
func (d *Detector) MatchName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	loc := namePattern.FindStringSubmatchIndex(s)
	if loc == nil || loc[0] != 0 || loc[1] != len(s) {
		return "", false
	}
	name := s[loc[2]:loc[3]]
	if !d.isPersonName(name) {
		return "", false
	}
	return name, true
}

// IsName reports whether the trimmed text is, in its entirety, a confirmed
// person name.
func (d *Detector) IsName(s string) bool {
	_, ok := d.MatchName(s)
	return ok
}

// isPersonName applies the rejection filters to a shape-confirmed name.
// Rejection order matters: the exact deny-list check is cheapest and runs
// first, token containment second, shape checks last.
func (d *Detector) isPersonName(name string) bool {
	if d.rules.IsDeniedName(name) {
		return false
	}

	tokens := strings.Fields(name)
	for _, tok := range tokens {
		if d.rules.IsDeniedToken(tok) {
			return false
		}
	}

	for _, pattern := range titleOnlyPatterns {
		if pattern.MatchString(name) {
			return false
		}
	}
	if len(tokens) >= 2 && d.rules.IsSeniority(tokens[0]) && d.rules.IsRoleNoun(tokens[1]) {
		return false
	}

	if d.rules.IsSeniority(tokens[0]) {
		return false
	}

	return true
}

// Title reports whether the trimmed line qualifies as a job title: it
// contains a title keyword, is short enough to be a label rather than
// prose, and is not itself a recognized person name.
func (d *Detector) Title(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || len(line) >= maxTitleLength {
		return false
	}
	if !d.rules.HasTitleKeyword(line) {
		return false
	}
	return !d.IsName(line)
}

// compileSuffixPattern builds a single alternation over the configured
// company suffixes, longest first so "Corporation" wins over "Corp".
func compileSuffixPattern(suffixes []string) *regexp.Regexp {
	if len(suffixes) == 0 {
		// Matches nothing.
		return regexp.MustCompile(`\bx\bx`)
	}
	quoted := make([]string, len(suffixes))
	copy(quoted, suffixes)
	sort.Slice(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	for i, s := range quoted {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b\.?`)
}
