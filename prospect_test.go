package prospect_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/prospect"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := prospect.Errorf(prospect.EINVALID, "page %q has no content", "https://example.com")

	assert.Equal(t, prospect.EINVALID, prospect.ErrorCode(err))
	assert.Equal(t, "page \"https://example.com\" has no content", prospect.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, prospect.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, prospect.EINTERNAL, prospect.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, prospect.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", prospect.ErrorMessage(errors.New("boom")))
}
