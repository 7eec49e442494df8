package prospect_test

import (
	"testing"

	"github.com/fwojciec/prospect"
	"github.com/stretchr/testify/assert"
)

func TestCandidate_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid candidate passes", func(t *testing.T) {
		t.Parallel()

		c := &prospect.Candidate{Name: "Jane Doe", SourceURL: "https://example.com/team"}

		assert.NoError(t, c.Validate())
	})

	t.Run("missing name is invalid", func(t *testing.T) {
		t.Parallel()

		c := &prospect.Candidate{SourceURL: "https://example.com/team"}

		assert.Equal(t, prospect.EINVALID, prospect.ErrorCode(c.Validate()))
	})

	t.Run("missing source URL is invalid", func(t *testing.T) {
		t.Parallel()

		c := &prospect.Candidate{Name: "Jane Doe"}

		assert.Equal(t, prospect.EINVALID, prospect.ErrorCode(c.Validate()))
	})
}

func TestCandidate_IdentityKey(t *testing.T) {
	t.Parallel()

	t.Run("prefers email when present", func(t *testing.T) {
		t.Parallel()

		c := &prospect.Candidate{Name: "Jane Doe", Company: "Acme Corp", Email: "Jane@Acme.com"}

		assert.Equal(t, "jane@acme.com", c.IdentityKey())
	})

	t.Run("falls back to name and company", func(t *testing.T) {
		t.Parallel()

		c := &prospect.Candidate{Name: "Jane Doe", Company: "Acme Corp"}

		assert.Equal(t, "jane doe_acme corp", c.IdentityKey())
	})

	t.Run("same email means same key regardless of name", func(t *testing.T) {
		t.Parallel()

		a := &prospect.Candidate{Name: "Jane Doe", Email: "jane@acme.com"}
		b := &prospect.Candidate{Name: "J. Doe", Email: "jane@acme.com"}

		assert.Equal(t, a.IdentityKey(), b.IdentityKey())
	})
}

func TestCandidate_FieldCount(t *testing.T) {
	t.Parallel()

	c := &prospect.Candidate{Name: "Jane Doe", Title: "CEO", Email: "jane@acme.com"}

	assert.Equal(t, 2, c.FieldCount())
}
