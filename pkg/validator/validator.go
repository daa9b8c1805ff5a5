// Package validator turns gin binding failures into field-level application errors.
package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"

	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
)

var messages = map[string]string{
	"required": "is required",
	"number":   "must be a whole number",
	"numeric":  "must be a number",
	"email":    "must be a valid email",
	"datetime": "has an invalid format",
	"max":      "is too long",
	"min":      "is too short",
}

var registerOnce sync.Once

// RegisterFormTags makes validation errors report the form field name
// (patient_id) instead of the Go field name (PatientID).
func RegisterFormTags() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*playground.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"form", "json"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	})
}

// FromBinding converts the error returned by c.ShouldBind. The first failing
// field is reported; later ones are in the wrapped cause.
func FromBinding(err error) error {
	if err == nil {
		return nil
	}

	var verrs playground.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return apperrors.Validation(first.Field(), message(first), err)
	}
	return apperrors.BadRequest("malformed form submission", err)
}

func message(fe playground.FieldError) string {
	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}
	return "is invalid"
}
