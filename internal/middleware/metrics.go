package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
)

// Metrics records request counts and latency by route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		m.RequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		m.RequestTotal.WithLabelValues(method, path, status).Inc()

		for _, e := range c.Errors {
			kind := apperrors.ErrInternal
			if appErr, ok := apperrors.As(e.Err); ok {
				kind = appErr.Code
			}
			m.ErrorTotal.WithLabelValues(method, path, kind.String()).Inc()
		}
	}
}
