package detect

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// phonePattern matches North-American 10-digit numbers with optional
	// country code, parentheses, and common separators.
	phonePattern = regexp.MustCompile(`(?:\+?1[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)

	// Personal profile paths are preferred over organization paths.
	personalProfilePattern = regexp.MustCompile(`(?i)https?://(?:[a-z]{2,3}\.)?linkedin\.com/(?:in|pub)/[A-Za-z0-9_%.\-]+/?`)
	orgProfilePattern      = regexp.MustCompile(`(?i)https?://(?:[a-z]{2,3}\.)?linkedin\.com/(?:company|school)/[A-Za-z0-9_%.\-]+/?`)
)

// companyWindow is how far around a suffix match the company phrase is
// recovered from.
const companyWindow = 50

// maxCompanyLength caps the recovered company phrase.
const maxCompanyLength = 100

// Company finds legal-entity suffixes in the span and recovers the longest
// capitalized phrase ending in one of them. Returns "" when no suffix
// occurs. Names like "Initech Solutions Inc" contain two suffix hits;
// evaluating every hit and keeping the longest phrase lets the trailing
// legal suffix win.
func (d *Detector) Company(span string) string {
	var best string
	for _, loc := range d.suffixPattern.FindAllStringIndex(span, -1) {
		if phrase := d.companyAt(span, loc); len(phrase) > len(best) {
			best = phrase
		}
	}
	return best
}

// companyAt recovers the capitalized phrase ending at one suffix match by
// walking tokens backwards within the ±50 character window.
func (d *Detector) companyAt(span string, loc []int) string {
	windowStart := loc[0] - companyWindow
	if windowStart < 0 {
		windowStart = 0
	}

	suffix := strings.TrimRight(span[loc[0]:loc[1]], ".")
	prefix := span[windowStart:loc[0]]

	// The phrase must sit on the suffix's own line; a newline in the
	// lookback means the preceding tokens belong to other content.
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		prefix = prefix[i+1:]
	}

	tokens := strings.Fields(prefix)
	phrase := []string{suffix}
	for i := len(tokens) - 1; i >= 0; i-- {
		if !isCompanyToken(tokens[i]) {
			break
		}
		phrase = append([]string{strings.Trim(tokens[i], ",;:")}, phrase...)
	}

	company := strings.Join(phrase, " ")
	for len(company) > maxCompanyLength && len(phrase) > 1 {
		phrase = phrase[1:]
		company = strings.Join(phrase, " ")
	}
	return company
}

// isCompanyToken reports whether a token can be part of a company phrase:
// capitalized words and ampersands.
func isCompanyToken(tok string) bool {
	tok = strings.Trim(tok, ",;:")
	if tok == "" {
		return false
	}
	if tok == "&" {
		return true
	}
	r := tok[0]
	return r >= 'A' && r <= 'Z'
}

// Email returns the most personal-looking email address in the span.
// Role-based addresses (noreply, support, info, ...) are deprioritized but
// still returned when nothing better occurs.
func (d *Detector) Email(span string) string {
	matches := emailPattern.FindAllString(span, -1)
	if len(matches) == 0 {
		return ""
	}
	for _, m := range matches {
		local := m[:strings.IndexByte(m, '@')]
		if !d.rules.IsRoleEmail(local) {
			return m
		}
	}
	return matches[0]
}

// Phone returns the first North-American phone number in the span.
func (d *Detector) Phone(span string) string {
	for _, loc := range phonePattern.FindAllStringIndex(span, -1) {
		// Reject matches embedded in longer digit runs (IDs, timestamps).
		if loc[0] > 0 && isDigit(span[loc[0]-1]) {
			continue
		}
		if loc[1] < len(span) && isDigit(span[loc[1]]) {
			continue
		}
		return span[loc[0]:loc[1]]
	}
	return ""
}

// ProfileURL returns a professional-network profile URL from the span,
// preferring personal profile paths; an organization path is accepted as a
// fallback when no personal path occurs.
func (d *Detector) ProfileURL(span string) string {
	if m := personalProfilePattern.FindString(span); m != "" {
		return strings.TrimRight(m, "/")
	}
	if m := orgProfilePattern.FindString(span); m != "" {
		return strings.TrimRight(m, "/")
	}
	return ""
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
