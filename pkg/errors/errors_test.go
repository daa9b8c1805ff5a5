package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", Validation("age", "must be a number", nil), http.StatusBadRequest},
		{"bad request", BadRequest("bad", nil), http.StatusBadRequest},
		{"not found", NotFound("patient", nil), http.StatusNotFound},
		{"persistence", Persistence("create patient", stderrors.New("conn refused")), http.StatusInternalServerError},
		{"internal", Internal(nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestPersistenceKeepsCauseButHidesIt(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := Persistence("list doctors", cause)

	assert.Equal(t, "internal server error", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "list doctors")
}

func TestAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create appointment: %w", Validation("patient_id", "patient does not exist", nil))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "patient_id", appErr.Field)
	assert.True(t, HasCode(wrapped, ErrValidation))
	assert.False(t, HasCode(wrapped, ErrPersistence))
	assert.False(t, HasCode(stderrors.New("plain"), ErrValidation))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "email: must be a valid email", Validation("email", "must be a valid email", nil).Error())
	assert.Equal(t, "patient not found", NotFound("patient", nil).Error())
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "validation", ErrValidation.String())
	assert.Equal(t, "persistence", ErrPersistence.String())
	assert.Equal(t, "not_found", ErrNotFound.String())
	assert.Equal(t, "internal", ErrorCode(0).String())
}
