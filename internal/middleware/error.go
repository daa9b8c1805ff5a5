package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"

	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
)

const ErrorTemplate = "error.html"

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// NewErrorResponse exposes only the client-safe parts of err.
func NewErrorResponse(err *apperrors.AppError, traceID string) ErrorResponse {
	return ErrorResponse{
		Code:    err.StatusCode(),
		Message: err.Message,
		Field:   err.Field,
		TraceID: traceID,
	}
}

// ErrorHandler renders the last error attached with c.Error. Application
// errors keep their status and message; anything else becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		lastErr := c.Errors.Last()
		appErr, ok := apperrors.As(lastErr.Err)
		if !ok {
			appErr = apperrors.Internal(lastErr.Err)
		}
		resp := NewErrorResponse(appErr, c.GetString(ContextRequestID))

		logger := zerolog.Ctx(c.Request.Context())
		event := logger.Warn()
		if resp.Code >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Err(lastErr.Err).
			Str("kind", appErr.Code.String()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Str("client_ip", c.ClientIP()).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}
		RenderError(c, resp)
	}
}

// RenderError writes resp as the error page, or as JSON when the client asks for it.
func RenderError(c *gin.Context, resp ErrorResponse) {
	if resp.TraceID == "" {
		resp.TraceID = c.GetString(ContextRequestID)
	}
	c.Negotiate(resp.Code, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: ErrorTemplate,
		HTMLData: resp,
		JSONData: resp,
	})
	c.Abort()
}
