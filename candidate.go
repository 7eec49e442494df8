package prospect

import "strings"

// MinContentLength is the minimum trimmed content length worth
// pattern-matching. Anything shorter yields no candidates by design
// rather than an error.
const MinContentLength = 20

// RawPage is the input unit: raw scraped content for a single page.
// Either content field may be empty; the orchestrator degrades strategy
// selection accordingly. RawPage is never mutated by the engine.
type RawPage struct {
	SourceURL string `json:"url"`
	Markdown  string `json:"markdown,omitempty"`
	HTML      string `json:"html,omitempty"`
}

// Candidate is a provisional prospect extracted from one RawPage.
// Name and SourceURL are required; everything else is best-effort.
type Candidate struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	SourceURL   string `json:"source"`

	// Confidence is a 0-100 completeness/quality score assigned after
	// extraction. It is advisory metadata for the consumer; the engine
	// never discards low-confidence candidates.
	Confidence int `json:"confidence"`
}

// Validate returns an error if the candidate is missing required fields.
func (c *Candidate) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "candidate name required")
	}
	if c.SourceURL == "" {
		return Errorf(EINVALID, "candidate source URL required")
	}
	return nil
}

// IdentityKey returns the deduplication key for the candidate: the email
// address when present, otherwise lowercase name joined with company.
// The key is derived on demand and never persisted.
func (c *Candidate) IdentityKey() string {
	if c.Email != "" {
		return strings.ToLower(c.Email)
	}
	return strings.ToLower(c.Name) + "_" + strings.ToLower(c.Company)
}

// FieldCount returns the number of populated optional fields. Used to pick
// the richer of two extractions of the same person.
func (c *Candidate) FieldCount() int {
	n := 0
	for _, f := range []string{c.Title, c.Company, c.Email, c.Phone, c.LinkedInURL} {
		if f != "" {
			n++
		}
	}
	return n
}
