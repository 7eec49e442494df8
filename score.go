package prospect

import "strings"

// Confidence point values. The scorer is a deterministic accumulation
// clamped to [0,100]: more populated fields can never lower the score.
const (
	pointsName          = 25
	pointsTwoTokenName  = 5
	pointsTitle         = 20
	pointsSeniorTitle   = 5
	pointsCompany       = 15
	pointsCompanyProper = 5
	pointsEmail         = 15
	pointsProfileURL    = 10
)

// Score computes the completeness/quality confidence for a candidate.
// Phone numbers are carried on the candidate but contribute no points.
func Score(c *Candidate, rules *RuleSet) int {
	score := 0

	if c.Name != "" {
		score += pointsName
		// Two clean tokens is the most person-like shape; three-token
		// matches admit more title/company noise.
		if len(strings.Fields(c.Name)) == 2 {
			score += pointsTwoTokenName
		}
	}

	if c.Title != "" {
		score += pointsTitle
		if rules.HasSeniorTitleKeyword(c.Title) {
			score += pointsSeniorTitle
		}
	}

	if c.Company != "" {
		score += pointsCompany
		if !rules.IsGenericCompany(c.Company) {
			score += pointsCompanyProper
		}
	}

	if c.Email != "" {
		score += pointsEmail
	}

	if c.LinkedInURL != "" {
		score += pointsProfileURL
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
