package prospect_test

import (
	"testing"

	"github.com/fwojciec/prospect"
	"github.com/stretchr/testify/assert"
)

func TestRuleSet_DenyLists(t *testing.T) {
	t.Parallel()

	rules := prospect.DefaultRules()

	t.Run("rejects navigation phrases exactly", func(t *testing.T) {
		t.Parallel()

		assert.True(t, rules.IsDeniedName("Contact Us"))
		assert.True(t, rules.IsDeniedName("Privacy Policy"))
		assert.True(t, rules.IsDeniedName("contact us"))
		assert.False(t, rules.IsDeniedName("Jane Doe"))
	})

	t.Run("rejects legal-suffix tokens", func(t *testing.T) {
		t.Parallel()

		assert.True(t, rules.IsDeniedToken("Corp"))
		assert.True(t, rules.IsDeniedToken("Technologies"))
		assert.False(t, rules.IsDeniedToken("Doe"))
	})

	t.Run("recognizes seniority words", func(t *testing.T) {
		t.Parallel()

		assert.True(t, rules.IsSeniority("Chief"))
		assert.True(t, rules.IsSeniority("Vice"))
		assert.False(t, rules.IsSeniority("Jane"))
	})
}

func TestRuleSet_HasTitleKeyword(t *testing.T) {
	t.Parallel()

	rules := prospect.DefaultRules()

	t.Run("matches single keywords as whole words", func(t *testing.T) {
		t.Parallel()

		assert.True(t, rules.HasTitleKeyword("VP of Engineering"))
		assert.True(t, rules.HasTitleKeyword("Chief Executive Officer"))
		assert.False(t, rules.HasTitleKeyword("VPN Administrator Guide"))
	})

	t.Run("matches multi-word keywords as substrings", func(t *testing.T) {
		t.Parallel()

		assert.True(t, rules.HasTitleKeyword("Head of Product at Acme"))
		assert.True(t, rules.HasTitleKeyword("Senior Vice President, Sales"))
	})

	t.Run("does not match plain names", func(t *testing.T) {
		t.Parallel()

		assert.False(t, rules.HasTitleKeyword("Jane Doe"))
	})
}

func TestRuleSet_IsRoleEmail(t *testing.T) {
	t.Parallel()

	rules := prospect.DefaultRules()

	assert.True(t, rules.IsRoleEmail("noreply"))
	assert.True(t, rules.IsRoleEmail("no-reply"))
	assert.True(t, rules.IsRoleEmail("info"))
	assert.True(t, rules.IsRoleEmail("support2"))
	assert.False(t, rules.IsRoleEmail("jane.doe"))
}

func TestRuleSet_IsProfileURL(t *testing.T) {
	t.Parallel()

	rules := prospect.DefaultRules()

	assert.True(t, rules.IsProfileURL("https://www.linkedin.com/in/janedoe"))
	assert.False(t, rules.IsProfileURL("https://example.com/team"))
}

func TestRuleSet_IsGenericCompany(t *testing.T) {
	t.Parallel()

	rules := prospect.DefaultRules()

	assert.True(t, rules.IsGenericCompany("Company"))
	assert.True(t, rules.IsGenericCompany("LLC"))
	assert.False(t, rules.IsGenericCompany("Acme Corp"))
}
