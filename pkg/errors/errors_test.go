package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/ecnhealth/clinical-api/pkg/errors"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		err    *apperrors.AppError
		status int
	}{
		{apperrors.NewNotFound("Patient", nil), http.StatusNotFound},
		{apperrors.NewValidation("dosage is required", nil), http.StatusUnprocessableEntity},
		{apperrors.NewConflict("patient with this email already exists", nil), http.StatusConflict},
		{apperrors.NewInternal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.StatusCode())
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := apperrors.NewNotFound("Treatment", nil)
	assert.Equal(t, "Treatment not found", err.Message)
}

func TestUnwrapAndChecks(t *testing.T) {
	cause := errors.New("row missing")
	err := apperrors.NewNotFound("Assessment", cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, apperrors.IsNotFound(err))
	assert.False(t, apperrors.IsConflict(err))

	wrapped := fmt.Errorf("loading record: %w", err)
	assert.True(t, apperrors.IsNotFound(wrapped))
}
