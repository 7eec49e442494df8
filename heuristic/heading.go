package heuristic

import (
	"regexp"
	"strings"

	"github.com/fwojciec/prospect"
	"github.com/fwojciec/prospect/detect"
)

// Ensure Heading implements prospect.Strategy at compile time.
var _ prospect.Strategy = (*Heading)(nil)

// headingPattern matches H2-H4 markdown headings. H1 is almost always the
// page title, never a roster entry.
var headingPattern = regexp.MustCompile(`(?m)^#{2,4}[ \t]+(.+?)[ \t]*$`)

// headingContext is how much text after a name heading is searched for
// secondary signals.
const headingContext = 400

// Heading is the last-resort strategy for documentation-style or blog-style
// team pages: no visual cards, but markdown headings delimit people.
type Heading struct {
	rules    *prospect.RuleSet
	detector *detect.Detector
}

// NewHeading returns the strategy bound to the given rules.
func NewHeading(rules *prospect.RuleSet) *Heading {
	return &Heading{rules: rules, detector: detect.New(rules)}
}

// Name identifies the strategy.
func (s *Heading) Name() string { return "heading" }

// Extract scans for headings whose text is a person name and corroborates
// each against the text that follows. A heading with no secondary signal is
// dropped.
func (s *Heading) Extract(page *prospect.RawPage) []prospect.Candidate {
	text := Normalize(page.Markdown, s.rules)
	if tooShort(text) {
		return nil
	}

	var out []prospect.Candidate
	matches := headingPattern.FindAllStringSubmatchIndex(text, -1)
	for i, idx := range matches {
		headingText := text[idx[2]:idx[3]]
		name, ok := s.detector.MatchName(headingText)
		if !ok {
			continue
		}

		// The context ends at the next heading or ~400 characters,
		// whichever comes first, so one entry's contact details are not
		// attributed to its neighbour.
		end := idx[3] + headingContext
		if i+1 < len(matches) && matches[i+1][0] < end {
			end = matches[i+1][0]
		}
		if end > len(text) {
			end = len(text)
		}
		context := text[idx[3]:end]

		title := s.findTitle(context, name)
		email := s.detector.Email(context)
		// A name that was itself a profile link carries the URL on the
		// heading line, outside the trailing context.
		profile := s.detector.ProfileURL(headingText)
		if profile == "" {
			profile = s.detector.ProfileURL(context)
		}
		if title == "" && email == "" && profile == "" {
			continue
		}

		out = append(out, prospect.Candidate{
			Name:        name,
			Title:       title,
			Email:       email,
			LinkedInURL: profile,
		})
	}
	return out
}

// findTitle returns the first qualifying title line in the context.
func (s *Heading) findTitle(context, name string) string {
	for _, line := range strings.Split(context, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, name) {
			continue
		}
		if s.detector.Title(line) {
			return line
		}
	}
	return ""
}
