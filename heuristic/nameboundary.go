package heuristic

import (
	"strings"

	"github.com/fwojciec/prospect"
	"github.com/fwojciec/prospect/detect"
)

// Ensure NameBoundary implements prospect.Strategy at compile time.
var _ prospect.Strategy = (*NameBoundary)(nil)

const (
	// contextWindow bounds how far past an anchor the secondary signals
	// are searched when no further anchor interrupts first.
	contextWindow = 600

	// companyLookback extends the company search before the anchor, for
	// pages that print the employer above the person's name.
	companyLookback = 100

	// titleScanLines is how many non-empty lines after the anchor are
	// considered for the title.
	titleScanLines = 8
)

// NameBoundary is the primary extraction strategy. It confirms person-name
// anchors in normalized markdown, then searches a bounded context window
// after each anchor for the secondary signals. The window ends at the next
// confirmed anchor rather than the next title-shaped line: that stops one
// person's block from bleeding into the next while tolerating job-title
// lines that look superficially like names.
type NameBoundary struct {
	rules    *prospect.RuleSet
	detector *detect.Detector
}

// NewNameBoundary returns the strategy bound to the given rules.
func NewNameBoundary(rules *prospect.RuleSet) *NameBoundary {
	return &NameBoundary{rules: rules, detector: detect.New(rules)}
}

// Name identifies the strategy.
func (s *NameBoundary) Name() string { return "name-boundary" }

// Extract runs the strategy over the page's markdown. A candidate is
// emitted only when a title or company corroborates the anchor; a bare name
// is the dominant false-positive class and is never emitted.
func (s *NameBoundary) Extract(page *prospect.RawPage) []prospect.Candidate {
	text := Normalize(page.Markdown, s.rules)
	if tooShort(text) {
		return nil
	}

	anchors := s.detector.Names(text)
	if len(anchors) == 0 {
		return nil
	}

	var out []prospect.Candidate
	for i, anchor := range anchors {
		end := anchor.Start + contextWindow
		if i+1 < len(anchors) && anchors[i+1].Start < end {
			end = anchors[i+1].Start
		}
		if end > len(text) {
			end = len(text)
		}

		window := text[anchor.Start:end]
		title := s.findTitle(window, anchor.Name)

		lookStart := anchor.Start - companyLookback
		if lookStart < 0 {
			lookStart = 0
		}
		company := s.detector.Company(text[lookStart:end])

		if title == "" && company == "" {
			continue
		}

		// Contact details are searched after the anchor only; the
		// lookback would misattribute an adjacent person's details.
		after := text[anchor.End:end]

		out = append(out, prospect.Candidate{
			Name:        anchor.Name,
			Title:       title,
			Company:     company,
			Email:       s.detector.Email(after),
			Phone:       s.detector.Phone(after),
			LinkedInURL: s.detector.ProfileURL(after),
		})
	}
	return out
}

// findTitle scans the first few non-empty lines after the anchor line for a
// title. The anchor's own text and link/URL lines never qualify.
func (s *NameBoundary) findTitle(window, anchorName string) string {
	lines := strings.Split(window, "\n")
	if len(lines) < 2 {
		return ""
	}

	scanned := 0
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > titleScanLines {
			break
		}
		if strings.EqualFold(line, anchorName) {
			continue
		}
		if strings.HasPrefix(line, "LinkedIn") || strings.HasPrefix(line, "http") {
			continue
		}
		if s.detector.Title(line) {
			return line
		}
	}
	return ""
}
