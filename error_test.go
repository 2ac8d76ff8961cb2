package wikidex_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wikidex/wikidex"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := wikidex.Errorf(wikidex.ENOTFOUND, "record %q not found", "test")

	assert.Equal(t, wikidex.ENOTFOUND, wikidex.ErrorCode(err))
	assert.Equal(t, "record \"test\" not found", wikidex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wikidex.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, wikidex.EINTERNAL, wikidex.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wikidex.ErrorMessage(nil))
}
