package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandomoreu/mercadillo/internal/apperror"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	err := apperror.Conflict("email", "a@x.com")
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Equal(t, `an account with email "a@x.com" already exists`, err.Error())
}

func TestAppError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("updating profile: %w", apperror.Permission("not the owner"))

	assert.ErrorIs(t, wrapped, apperror.ErrPermission)

	var appErr *apperror.AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "not the owner", appErr.Message)
}

func TestValidation_CarriesDetails(t *testing.T) {
	err := apperror.Validation([]apperror.FieldError{
		{Field: "name", Reason: "is required"},
	})

	assert.ErrorIs(t, err, apperror.ErrValidation)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "name", err.Details[0].Field)
}

func TestTransient_PreservesCauseMessage(t *testing.T) {
	cause := errors.New("smtp connection refused")
	err := apperror.Transient(cause)

	assert.ErrorIs(t, err, apperror.ErrTransient)
	assert.Equal(t, "smtp connection refused", err.Message)
}
