package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/pkg/auth"
)

const (
	contextKey       = "session"
	cookieWrittenKey = "session_cookie_id"
)

// DefaultAnonymousTTL bounds sessions that only carry flashes for a visitor
// who has not logged in.
const DefaultAnonymousTTL = 5 * time.Minute

// CookieConfig sets the cookie and store lifetimes. TTL applies to logged-in
// sessions, AnonymousTTL to the rest; zero means DefaultAnonymousTTL.
type CookieConfig struct {
	Name         string
	TTL          time.Duration
	AnonymousTTL time.Duration
	Secure       bool
}

// Manager binds sessions to requests. Every mutation is persisted and the
// cookie is written immediately, so handlers may redirect right after.
type Manager struct {
	store  Store
	tokens *auth.TokenManager
	cookie CookieConfig
}

func NewManager(store Store, tokens *auth.TokenManager, cookie CookieConfig) *Manager {
	if cookie.AnonymousTTL <= 0 {
		cookie.AnonymousTTL = DefaultAnonymousTTL
	}
	if cookie.TTL > 0 && cookie.AnonymousTTL > cookie.TTL {
		cookie.AnonymousTTL = cookie.TTL
	}
	return &Manager{
		store:  store,
		tokens: tokens,
		cookie: cookie,
	}
}

// Load resolves the session named by the request cookie. A missing, forged,
// expired or unknown cookie yields a fresh anonymous session that is only
// stored once something is written to it.
func (m *Manager) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.bind(c, m.resolve(c))
		c.Next()
	}
}

func (m *Manager) resolve(c *gin.Context) *model.Session {
	raw, err := c.Cookie(m.cookie.Name)
	if err != nil || raw == "" {
		return newSession()
	}

	id, err := m.tokens.Parse(raw)
	if err != nil {
		log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Discarding session cookie")
		return newSession()
	}

	s, err := m.store.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Error().Err(err).Msg("Failed to load session")
		}
		return newSession()
	}
	return s
}

func (m *Manager) bind(c *gin.Context, s *model.Session) {
	c.Set(contextKey, s)
	if s.Authenticated() {
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), s.Username))
	}
}

// Current returns the request's session. Without Load it is a detached anonymous session.
func (m *Manager) Current(c *gin.Context) *model.Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*model.Session); ok {
			return s
		}
	}
	s := newSession()
	c.Set(contextKey, s)
	return s
}

// Authenticate marks the session as logged in under username. The session id
// is rotated so a pre-login cookie never names an authenticated session.
func (m *Manager) Authenticate(c *gin.Context, username string) error {
	prev := m.Current(c)
	if err := m.store.Delete(c.Request.Context(), prev.ID); err != nil {
		return err
	}

	s := newSession()
	s.Username = username
	s.Flashes = prev.Flashes
	m.bind(c, s)
	return m.save(c, s)
}

// Clear drops the session and starts an anonymous one in its place. The new
// session is only stored once something is written to it.
func (m *Manager) Clear(c *gin.Context) error {
	prev := m.Current(c)
	if err := m.store.Delete(c.Request.Context(), prev.ID); err != nil {
		return err
	}

	c.Set(contextKey, newSession())
	c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), ""))
	return nil
}

func (m *Manager) AddFlash(c *gin.Context, category, message string) error {
	s := m.Current(c)
	s.Flashes = append(s.Flashes, model.Flash{Category: category, Message: message})
	return m.save(c, s)
}

// Flashes returns and removes the pending flash messages. An anonymous
// session holds nothing else, so it is dropped from the store once empty.
func (m *Manager) Flashes(c *gin.Context) []model.Flash {
	s := m.Current(c)
	if len(s.Flashes) == 0 {
		return nil
	}

	flashes := s.Flashes
	s.Flashes = nil

	var err error
	if s.Authenticated() {
		err = m.save(c, s)
	} else {
		err = m.store.Delete(c.Request.Context(), s.ID)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to clear flashes")
	}
	return flashes
}

func (m *Manager) ttl(s *model.Session) time.Duration {
	if s.Authenticated() {
		return m.cookie.TTL
	}
	return m.cookie.AnonymousTTL
}

func (m *Manager) save(c *gin.Context, s *model.Session) error {
	ttl := m.ttl(s)
	if err := m.store.Save(c.Request.Context(), s, ttl); err != nil {
		return err
	}
	if c.GetString(cookieWrittenKey) == s.ID {
		return nil
	}

	token, err := m.tokens.Sign(s.ID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, token, int(ttl.Seconds()), "/", "", m.cookie.Secure, true)
	c.Set(cookieWrittenKey, s.ID)
	return nil
}

func newSession() *model.Session {
	return &model.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}
