package prospect

// Strategy is one self-contained extraction algorithm operating over either
// the markdown or the HTML content of a page. Strategies degrade to "no
// match" rather than failing: heuristic misclassification is an accuracy
// characteristic, not an error condition.
type Strategy interface {
	// Name identifies the strategy in logs and diagnostics.
	Name() string

	// Extract returns raw candidates found on the page. Candidates are
	// returned unscored and undeduplicated; the orchestrator owns both
	// passes. A nil or empty result means the strategy found nothing.
	Extract(page *RawPage) []Candidate
}

// Engine runs the full extraction pipeline for a single page: strategy
// selection and escalation, confidence scoring, and intra-page
// deduplication. Implementations hold no state between calls, so concurrent
// invocations for different pages are safe without synchronization.
type Engine interface {
	Extract(page *RawPage) []Candidate
}

// ExtractResult holds the main content recovered from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar, ads) removed. Stripping boilerplate before
	// text analysis cuts the dominant false-positive surface: capitalized
	// navigation and footer phrases.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown so that HTML-only pages can still be
// fed to the markdown-based strategies.
type Converter interface {
	Convert(html string) (string, error)
}
