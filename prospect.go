// Package prospect extracts candidate contact records (people with a name
// and, where recoverable, title, employer, email, phone, and LinkedIn
// profile) from raw scraped web content. It works on adversarial,
// inconsistently formatted page text using layered heuristics: a primary
// regex strategy over markdown, with structured-data, HTML-block, and
// heading fallbacks that the orchestrator escalates to while results
// remain sparse.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., goquery/, heuristic/,
// trafilatura/).
package prospect
