//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"flight-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both identities", func(t *testing.T) {
		cause := errors.New("pool closed")
		marked := errs.Mark(cause, errs.ErrConflict)

		assert.True(t, errs.Is(marked, errs.ErrConflict))
		assert.True(t, errs.Is(marked, cause))
		assert.Equal(t, "pool closed", marked.Error())
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "ignored"))

	err := errs.Wrapf(errs.ErrNotFound, "flight %s", "FL1000")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Equal(t, "flight FL1000: not found", err.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
	lines := errs.ExtractStackLines(errs.New("boom"), 2)
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "boom")
}
