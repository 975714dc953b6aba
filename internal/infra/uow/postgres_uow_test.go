//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"flight-booking/internal/infra"
	"flight-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "update"), want: true},
		{name: "version conflict", err: infra.WrapRepoErr(infra.KindConflict, "stale flight", nil), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "not found", err: infra.WrapRepoErr(infra.KindNotFound, "missing", nil), want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	conflict := infra.WrapRepoErr(infra.KindConflict, "stale flight", nil)
	assert.True(t, shouldRetry(conflict, 0, 3))
	assert.False(t, shouldRetry(conflict, 3, 3))
	assert.False(t, shouldRetry(errors.New("boom"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := range 3 {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
