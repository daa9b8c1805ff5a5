package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/pkg/auth"
)

const testCookie = "test_session"

func setupManager(t *testing.T) (*Manager, *MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	store := NewMemoryStore(time.Hour)
	return NewManager(store, tokens, CookieConfig{Name: testCookie, TTL: time.Hour}), store
}

func newRouter(m *Manager) *gin.Engine {
	r := gin.New()
	r.Use(m.Load())
	r.GET("/login", func(c *gin.Context) {
		if err := m.Authenticate(c, "admin"); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})
	r.GET("/logout", func(c *gin.Context) {
		if err := m.Clear(c); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})
	r.GET("/flash", func(c *gin.Context) {
		if err := m.AddFlash(c, model.FlashInfo, "hello"); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})
	r.GET("/whoami", func(c *gin.Context) {
		username, _ := IdentityFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"username": username, "flashes": m.Flashes(c)})
	})
	return r
}

func do(r http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func TestAnonymousRequestSetsNoCookie(t *testing.T) {
	m, _ := setupManager(t)
	w := do(newRouter(m), "/whoami", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, sessionCookie(w))
	assert.JSONEq(t, `{"username":"","flashes":null}`, w.Body.String())
}

func TestAuthenticateRotatesSession(t *testing.T) {
	m, _ := setupManager(t)
	r := newRouter(m)

	anon := sessionCookie(do(r, "/flash", nil))
	require.NotNil(t, anon)

	w := do(r, "/login", anon)
	authed := sessionCookie(w)
	require.NotNil(t, authed)
	assert.NotEqual(t, anon.Value, authed.Value)
	assert.True(t, authed.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, authed.SameSite)

	w = do(r, "/whoami", authed)
	assert.JSONEq(t, `{"username":"admin","flashes":[{"category":"info","message":"hello"}]}`, w.Body.String())

	// The pre-login cookie must not carry the identity.
	w = do(r, "/whoami", anon)
	assert.JSONEq(t, `{"username":"","flashes":null}`, w.Body.String())
}

func TestFlashesAreShownOnce(t *testing.T) {
	m, _ := setupManager(t)
	r := newRouter(m)

	cookie := sessionCookie(do(r, "/flash", nil))
	require.NotNil(t, cookie)

	w := do(r, "/whoami", cookie)
	assert.Contains(t, w.Body.String(), "hello")

	w = do(r, "/whoami", cookie)
	assert.NotContains(t, w.Body.String(), "hello")
}

func TestClearLogsOut(t *testing.T) {
	m, store := setupManager(t)
	r := newRouter(m)

	authed := sessionCookie(do(r, "/login", nil))
	require.NotNil(t, authed)

	id, err := m.tokens.Parse(authed.Value)
	require.NoError(t, err)

	do(r, "/logout", authed)
	_, err = store.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)

	w := do(r, "/whoami", authed)
	assert.JSONEq(t, `{"username":"","flashes":null}`, w.Body.String())
}

func TestAnonymousSessionsAreShortLived(t *testing.T) {
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	store := NewMemoryStore(time.Hour)
	m := NewManager(store, tokens, CookieConfig{Name: testCookie, TTL: time.Hour, AnonymousTTL: 250 * time.Millisecond})
	r := newRouter(m)

	for i := 0; i < 50; i++ {
		w := do(r, "/flash", nil)
		require.Equal(t, http.StatusNoContent, w.Code)
		cookie := sessionCookie(w)
		require.NotNil(t, cookie)
		assert.LessOrEqual(t, cookie.MaxAge, 1)
	}
	assert.Equal(t, 50, store.Len())

	authed := sessionCookie(do(r, "/login", nil))
	require.NotNil(t, authed)
	assert.Equal(t, int(time.Hour.Seconds()), authed.MaxAge)

	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, 1, store.Len(), "only the logged-in session outlives the anonymous ttl")
}

func TestShownFlashesDropAnonymousSession(t *testing.T) {
	m, store := setupManager(t)
	r := newRouter(m)

	cookie := sessionCookie(do(r, "/flash", nil))
	require.NotNil(t, cookie)
	require.Equal(t, 1, store.Len())

	w := do(r, "/whoami", cookie)
	assert.Contains(t, w.Body.String(), "hello")
	assert.Equal(t, 0, store.Len())
}

func TestClearStoresNothingUntilWritten(t *testing.T) {
	m, store := setupManager(t)
	r := newRouter(m)

	authed := sessionCookie(do(r, "/login", nil))
	require.NotNil(t, authed)
	require.Equal(t, 1, store.Len())

	do(r, "/logout", authed)
	assert.Equal(t, 0, store.Len())
}

func TestForgedCookieIsIgnored(t *testing.T) {
	m, _ := setupManager(t)
	r := newRouter(m)

	other, err := auth.NewTokenManager("other-secret", time.Hour)
	require.NoError(t, err)
	forged, err := other.Sign("whatever")
	require.NoError(t, err)

	w := do(r, "/whoami", &http.Cookie{Name: testCookie, Value: forged})
	assert.JSONEq(t, `{"username":"","flashes":null}`, w.Body.String())
}
