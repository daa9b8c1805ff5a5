package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/session"
)

const (
	LoginPath         = "/login"
	LoginFirstMessage = "Please login first."
)

type AuthMiddleware struct {
	sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireLogin lets authenticated requests through. Anonymous ones are sent
// to the login page and the wrapped handler never runs.
func (m *AuthMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.IdentityFromContext(c.Request.Context()); ok {
			c.Next()
			return
		}

		if err := m.sessions.AddFlash(c, model.FlashWarning, LoginFirstMessage); err != nil {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Failed to store login flash")
		}
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
	}
}
