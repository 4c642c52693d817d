package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindMatching(t *testing.T) {
	err := NotFound("appointment_not_found", "Appointment not found.")

	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindForbidden))
	assert.True(t, IsCode(err, "appointment_not_found"))
	assert.False(t, IsCode(err, "other"))
}

func TestKindMatchingThroughWrapping(t *testing.T) {
	inner := Forbidden("not_owner", "Not yours.")
	wrapped := fmt.Errorf("update appointment: %w", inner)

	assert.True(t, IsKind(wrapped, KindForbidden))
	assert.True(t, IsCode(wrapped, "not_owner"))
}

func TestDependencyFailureWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := DependencyFailure("pricing_unavailable", "Pricing is down.", cause)

	require.True(t, IsKind(err, KindDependencyFailure))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "pricing_unavailable")
}

func TestPlainErrorsMatchNothing(t *testing.T) {
	err := errors.New("boom")
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsCode(err, "boom"))
}
