package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLockKey(t *testing.T) {
	a := userLockKey("3f6c1a52-2f0e-4a5b-9d3c-0b1d2e3f4a5b")
	b := userLockKey("3f6c1a52-2f0e-4a5b-9d3c-0b1d2e3f4a5b")
	c := userLockKey("9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.GreaterOrEqual(t, a, int64(0))
	assert.GreaterOrEqual(t, c, int64(0))
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("3f6c1a52-2f0e-4a5b-9d3c-0b1d2e3f4a5b"))
	assert.False(t, validID("ghost"))
	assert.False(t, validID(""))
}

func TestIsPgError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: PgErrorCodeUniqueViolation})
	assert.True(t, isPgError(err, PgErrorCodeUniqueViolation))
	assert.False(t, isPgError(err, PgErrorCodeForeignKeyViolation))
	assert.False(t, isPgError(errors.New("plain"), PgErrorCodeUniqueViolation))
}

func TestNumericToFloat64(t *testing.T) {
	var n pgtype.Numeric
	require.NoError(t, n.Scan("123.45"))

	v, err := numericToFloat64(n)
	require.NoError(t, err)
	assert.InDelta(t, 123.45, v, 1e-9)
}
