package prospect

import "strings"

// Dedupe collapses duplicate and ghost candidates within one page's
// extraction output. Candidates are visited in extraction order; the first
// occurrence of a lowercased name wins.
//
// The title collision rule handles a specific ghost: a person and their own
// unlinked title line can both satisfy the name-shape detector, yielding two
// candidates under the same title. When that happens, the entry whose name
// does not itself read like a job title is the more likely real person and
// replaces the other; otherwise the newcomer is dropped.
//
// Dedupe is idempotent: running it on its own output is a no-op.
func Dedupe(cands []Candidate, rules *RuleSet) []Candidate {
	if len(cands) == 0 {
		return nil
	}

	seenNames := make(map[string]bool, len(cands))
	seenTitles := make(map[string]int, len(cands))
	out := make([]Candidate, 0, len(cands))

	for _, c := range cands {
		nameKey := strings.ToLower(strings.TrimSpace(c.Name))
		if nameKey == "" || seenNames[nameKey] {
			continue
		}

		if c.Title != "" {
			titleKey := strings.ToLower(c.Title)
			if idx, ok := seenTitles[titleKey]; ok {
				kept := out[idx]
				if rules.HasTitleKeyword(kept.Name) && !rules.HasTitleKeyword(c.Name) {
					out[idx] = c
					seenNames[nameKey] = true
				}
				continue
			}
			seenTitles[titleKey] = len(out)
		}

		seenNames[nameKey] = true
		out = append(out, c)
	}

	return out
}
