package validator

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
)

type form struct {
	PatientID string `form:"patient_id" binding:"required,number"`
	Email     string `form:"email" binding:"required,email"`
}

func bind(t *testing.T, values url.Values) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterFormTags()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var f form
	return c.ShouldBind(&f)
}

func TestFromBinding(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		field   string
		message string
	}{
		{"missing", url.Values{"email": {"a@b.co"}}, "patient_id", "is required"},
		{"not a number", url.Values{"patient_id": {"abc"}, "email": {"a@b.co"}}, "patient_id", "must be a whole number"},
		{"bad email", url.Values{"patient_id": {"1"}, "email": {"nope"}}, "email", "must be a valid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromBinding(bind(t, tt.values))
			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrValidation, appErr.Code)
			assert.Equal(t, tt.field, appErr.Field)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestFromBindingValid(t *testing.T) {
	assert.NoError(t, FromBinding(bind(t, url.Values{"patient_id": {"1"}, "email": {"a@b.co"}})))
}

func TestFromBindingOtherError(t *testing.T) {
	assert.True(t, apperrors.HasCode(FromBinding(errors.New("EOF")), apperrors.ErrBadRequest))
}
