package prospect

import "strings"

// RuleSet is the curated heuristic vocabulary the signal detectors run
// against. Keeping the lists on one value type (rather than scattering
// string literals through control flow) keeps the heuristic surface
// auditable, independently testable, and overridable from configuration:
// the lists drift out of sync with real-world page content over time, and
// deployments need to update them without a rebuild.
type RuleSet struct {
	// DenyNames are exact phrases that pass the capitalized two/three-word
	// shape check but are never people: navigation labels, section headers,
	// boilerplate legal links.
	DenyNames []string `yaml:"deny_names"`

	// DenyTokens reject a candidate name when any single token matches.
	// Mostly legal suffixes and site-chrome vocabulary.
	DenyTokens []string `yaml:"deny_tokens"`

	// SeniorityWords are rank words that start job titles, not names.
	SeniorityWords []string `yaml:"seniority_words"`

	// RoleNouns complete a title-only phrase after a seniority word
	// ("Senior Engineer", "Managing Director").
	RoleNouns []string `yaml:"role_nouns"`

	// TitleKeywords mark a line as a plausible job title.
	TitleKeywords []string `yaml:"title_keywords"`

	// SeniorTitleKeywords mark a title as senior-level for scoring.
	SeniorTitleKeywords []string `yaml:"senior_title_keywords"`

	// CompanySuffixes are legal-entity or common trade-name suffixes that
	// anchor company phrase recovery.
	CompanySuffixes []string `yaml:"company_suffixes"`

	// GenericCompanies are placeholder strings that carry no identifying
	// information and earn no quality bonus.
	GenericCompanies []string `yaml:"generic_companies"`

	// RoleEmailPrefixes deprioritize shared-mailbox addresses in favor of
	// personal-looking ones.
	RoleEmailPrefixes []string `yaml:"role_email_prefixes"`

	// ProfileHosts are professional-network domains whose link targets are
	// preserved during markdown normalization.
	ProfileHosts []string `yaml:"profile_hosts"`
}

// IsDeniedName reports whether the name exactly matches a deny-listed
// phrase. This is the cheapest rejection and runs first.
func (r *RuleSet) IsDeniedName(name string) bool {
	return containsFold(r.DenyNames, strings.TrimSpace(name))
}

// IsDeniedToken reports whether a single name token is deny-listed.
func (r *RuleSet) IsDeniedToken(token string) bool {
	return containsFold(r.DenyTokens, token)
}

// IsSeniority reports whether the word is a rank/seniority word.
func (r *RuleSet) IsSeniority(word string) bool {
	return containsFold(r.SeniorityWords, word)
}

// IsRoleNoun reports whether the word names a role.
func (r *RuleSet) IsRoleNoun(word string) bool {
	return containsFold(r.RoleNouns, word)
}

// HasTitleKeyword reports whether the text contains a job-title keyword.
// Multi-word keywords match as substrings; single-word keywords must match
// a whole word so that "VP" does not fire inside "VPN".
func (r *RuleSet) HasTitleKeyword(s string) bool {
	return hasKeyword(r.TitleKeywords, s)
}

// HasSeniorTitleKeyword reports whether the text contains a senior-role
// keyword.
func (r *RuleSet) HasSeniorTitleKeyword(s string) bool {
	return hasKeyword(r.SeniorTitleKeywords, s)
}

// IsGenericCompany reports whether the company string is a contentless
// placeholder.
func (r *RuleSet) IsGenericCompany(s string) bool {
	return containsFold(r.GenericCompanies, strings.TrimSpace(s))
}

// IsRoleEmail reports whether the local part of an email address looks like
// a shared mailbox rather than a person.
func (r *RuleSet) IsRoleEmail(local string) bool {
	local = strings.ToLower(local)
	for _, prefix := range r.RoleEmailPrefixes {
		if strings.HasPrefix(local, strings.ToLower(prefix)) {
			return true
		}
	}
	return false
}

// IsProfileURL reports whether the URL points at a professional-network
// host.
func (r *RuleSet) IsProfileURL(url string) bool {
	lower := strings.ToLower(url)
	for _, host := range r.ProfileHosts {
		if strings.Contains(lower, strings.ToLower(host)) {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

func hasKeyword(keywords []string, s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(lower, kw) {
				return true
			}
			continue
		}
		if containsWord(lower, kw) {
			return true
		}
	}
	return false
}

// containsWord reports whether word appears in s as a whole word. Both
// arguments must already be lowercase.
func containsWord(s, word string) bool {
	for start := 0; start < len(s); {
		idx := strings.Index(s[start:], word)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(word)
		beforeOK := idx == 0 || !isWordByte(s[idx-1])
		afterOK := end == len(s) || !isWordByte(s[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// DefaultRules returns the compiled-in heuristic vocabulary. Callers that
// need site-specific tuning should load overrides via the yaml package
// instead of mutating the returned value.
func DefaultRules() *RuleSet {
	return &RuleSet{
		DenyNames: []string{
			"Contact Us", "About Us", "Our Team", "Meet The Team", "The Team",
			"Privacy Policy", "Cookie Policy", "Terms Of Service", "Terms Of Use",
			"Get Started", "Learn More", "Read More", "Find Out",
			"Sign In", "Sign Up", "Log In", "Log Out",
			"Site Map", "Home Page", "All Rights", "Rights Reserved",
			"Case Studies", "Press Releases", "White Papers", "Open Positions",
			"Board Of Directors", "Leadership Team", "Executive Team",
			"Customer Success", "Social Media", "Quick Links", "Follow Us",
			"United States", "New York", "San Francisco", "Los Angeles",
			"View Profile", "Email Us", "Book Demo", "Free Trial",
		},
		DenyTokens: []string{
			"Inc", "Corp", "LLC", "Ltd", "Limited", "Corporation", "Company",
			"Technologies", "Technology", "Solutions", "Systems", "Software",
			"Services", "Group", "Holdings", "Ventures", "Capital", "Agency",
			"About", "Contact", "Privacy", "Policy", "Terms", "Cookies",
			"Home", "Blog", "News", "Careers", "Jobs", "Products", "Pricing",
			"Resources", "Support", "Login", "Register", "Subscribe",
			"Newsletter", "Events", "Partners", "Platform", "Features",
			"Menu", "Search", "Copyright", "Reserved", "Webinar", "Podcast",
			"Facebook", "Twitter", "Instagram", "Youtube",
		},
		SeniorityWords: []string{
			"Chief", "Vice", "Senior", "Junior", "Lead", "Principal",
			"Executive", "Managing", "Deputy", "Associate", "Assistant",
			"Global", "Head", "Director", "President", "General", "Interim",
			"Founding", "Staff", "Regional",
		},
		RoleNouns: []string{
			"Officer", "President", "Manager", "Director", "Engineer",
			"Developer", "Designer", "Architect", "Scientist", "Analyst",
			"Consultant", "Strategist", "Specialist", "Partner", "Counsel",
			"Recruiter", "Marketer", "Accountant", "Advisor", "Chairman",
			"Economist", "Researcher",
		},
		TitleKeywords: []string{
			"CEO", "CTO", "CFO", "COO", "CMO", "CIO", "CRO", "CISO", "VP",
			"Vice President", "President", "Chief", "Founder", "Co-Founder",
			"Cofounder", "Owner", "Director", "Head of", "Manager", "Lead",
			"Principal", "Partner", "Engineer", "Developer", "Designer",
			"Architect", "Scientist", "Analyst", "Consultant", "Officer",
			"Strategist", "Specialist", "Evangelist", "Advisor", "Advocate",
			"Recruiter", "Counsel", "Chairman", "Chairwoman",
		},
		SeniorTitleKeywords: []string{
			"CEO", "CTO", "CFO", "COO", "CMO", "CIO", "CRO", "CISO", "Chief",
			"VP", "Vice President", "President", "Founder", "Co-Founder",
			"Cofounder", "Owner", "Partner", "Director", "Managing",
		},
		CompanySuffixes: []string{
			"Inc", "Corp", "Corporation", "LLC", "LLP", "Ltd", "Limited",
			"GmbH", "Co", "Company", "Technologies", "Technology", "Labs",
			"Solutions", "Systems", "Software", "Ventures", "Capital",
			"Partners", "Consulting", "Agency", "Studio", "Studios", "Media",
			"Digital", "Group", "Holdings", "Industries", "Enterprises",
		},
		GenericCompanies: []string{
			"Company", "Inc", "LLC", "Ltd", "Corp", "Corporation",
			"The Company", "Organization", "Group", "Agency", "Solutions",
			"Technologies",
		},
		RoleEmailPrefixes: []string{
			"noreply", "no-reply", "no_reply", "donotreply", "do-not-reply",
			"support", "info", "hello", "contact", "admin", "sales",
			"marketing", "team", "office", "help", "careers", "jobs",
			"press", "media", "webmaster", "privacy", "legal", "billing",
			"mail", "enquiries", "inquiries", "feedback", "service",
		},
		ProfileHosts: []string{
			"linkedin.com",
		},
	}
}
