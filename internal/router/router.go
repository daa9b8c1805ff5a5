package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	authHandler "github.com/jwalitptl/hospital-admin/internal/handler/auth"
	"github.com/jwalitptl/hospital-admin/internal/handler/health"
	"github.com/jwalitptl/hospital-admin/internal/handler/prometheus"
	"github.com/jwalitptl/hospital-admin/internal/middleware"
	"github.com/jwalitptl/hospital-admin/internal/session"
	"github.com/jwalitptl/hospital-admin/internal/view"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
	"github.com/jwalitptl/hospital-admin/pkg/validator"
)

// Handler is a resource that mounts its list and add routes.
type Handler interface {
	RegisterRoutes(gin.IRoutes)
}

type Handlers struct {
	Auth      *authHandler.Handler
	Resources []Handler
	Health    *health.Handler
	Metrics   *prometheus.Handler
}

type RouterConfig struct {
	LoginRate      rate.Limit
	LoginBurst     int
	RequestTimeout time.Duration
	// HSTS should only be enabled when served over TLS.
	HSTS bool
}

type Router struct {
	engine       *gin.Engine
	sessions     *session.Manager
	auth         *middleware.AuthMiddleware
	handlers     Handlers
	loginLimiter *middleware.RateLimiter
}

func NewRouter(sessions *session.Manager, handlers Handlers, m *metrics.Metrics, config RouterConfig) (*Router, error) {
	engine := gin.New() // Use New() instead of Default() for more control

	templates, err := view.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	engine.SetHTMLTemplate(templates)
	validator.RegisterFormTags()

	security := middleware.DefaultSecurityConfig()
	security.HSTS = config.HSTS

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.SecurityHeaders(security),
		middleware.Metrics(m),
		middleware.ErrorHandler(),
		middleware.SizeLimit(middleware.DefaultSizeLimitConfig()),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.RequestTimeout}),
		sessions.Load(),
	)

	return &Router{
		engine:   engine,
		sessions: sessions,
		auth:     middleware.NewAuthMiddleware(sessions),
		handlers: handlers,
		loginLimiter: middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.LoginRate,
			Burst: config.LoginBurst,
		}),
	}, nil
}

func (r *Router) Setup() {
	public := &r.engine.RouterGroup

	if r.handlers.Health != nil {
		r.handlers.Health.RegisterRoutes(public)
	}
	if r.handlers.Metrics != nil {
		r.handlers.Metrics.RegisterRoutes(public)
	}

	// Every route below requires a logged-in admin.
	protected := r.engine.Group("")
	protected.Use(r.auth.RequireLogin(), middleware.NoStore())

	r.handlers.Auth.RegisterRoutes(public, protected, r.loginLimiter.RateLimit())
	for _, h := range r.handlers.Resources {
		h.RegisterRoutes(protected)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
