package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/hospital-admin/internal/config"
	"github.com/jwalitptl/hospital-admin/internal/handler"
	"github.com/jwalitptl/hospital-admin/internal/handler/appointment"
	"github.com/jwalitptl/hospital-admin/internal/handler/auth"
	"github.com/jwalitptl/hospital-admin/internal/handler/doctor"
	"github.com/jwalitptl/hospital-admin/internal/handler/health"
	"github.com/jwalitptl/hospital-admin/internal/handler/patient"
	"github.com/jwalitptl/hospital-admin/internal/handler/prometheus"
	"github.com/jwalitptl/hospital-admin/internal/handler/staff"
	"github.com/jwalitptl/hospital-admin/internal/repository/postgres"
	"github.com/jwalitptl/hospital-admin/internal/router"
	appointmentService "github.com/jwalitptl/hospital-admin/internal/service/appointment"
	authService "github.com/jwalitptl/hospital-admin/internal/service/auth"
	doctorService "github.com/jwalitptl/hospital-admin/internal/service/doctor"
	patientService "github.com/jwalitptl/hospital-admin/internal/service/patient"
	staffService "github.com/jwalitptl/hospital-admin/internal/service/staff"
	"github.com/jwalitptl/hospital-admin/internal/session"
	tokens "github.com/jwalitptl/hospital-admin/pkg/auth"
	"github.com/jwalitptl/hospital-admin/pkg/logger"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
	"github.com/jwalitptl/hospital-admin/pkg/security"
)

const metricsNamespace = "hospital_admin"

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.SetGlobal(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	gin.SetMode(cfg.Server.Mode)

	ctx := context.Background()

	// Initialize database
	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.NewSchema(db).Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}

	registry := prom.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(metricsNamespace, registry)

	// Initialize repositories
	adminRepo := postgres.NewAdminRepository(db, m)
	patientRepo := postgres.NewPatientRepository(db, m)
	doctorRepo := postgres.NewDoctorRepository(db, m)
	appointmentRepo := postgres.NewAppointmentRepository(db, m)
	staffRepo := postgres.NewStaffRepository(db, m)

	// Initialize services
	authSvc := authService.NewService(adminRepo, security.NewBcryptHasher(cfg.Admin.BcryptCost), m)
	patientSvc := patientService.NewService(patientRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, doctorRepo)
	staffSvc := staffService.NewService(staffRepo)

	created, err := authSvc.SeedAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin")
	}
	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("seeded default admin")
	}

	store, closeStore, err := newSessionStore(ctx, cfg.Session)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session store")
	}
	defer closeStore()

	tokenManager, err := tokens.NewTokenManager(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session tokens")
	}
	sessions := session.NewManager(store, tokenManager, session.CookieConfig{
		Name:         cfg.Session.CookieName,
		TTL:          cfg.Session.TTL,
		AnonymousTTL: cfg.Session.AnonymousTTL,
		Secure:       cfg.Session.Secure,
	})

	// Initialize handlers
	base := handler.NewBaseHandler(sessions)
	handlers := router.Handlers{
		Auth: auth.NewHandler(authSvc, base),
		Resources: []router.Handler{
			patient.NewHandler(patientSvc, base),
			doctor.NewHandler(doctorSvc, base),
			appointment.NewHandler(appointmentSvc, base),
			staff.NewHandler(staffSvc, base),
		},
		Health:  health.NewHandler(db),
		Metrics: prometheus.New(registry),
	}

	// Setup router
	r, err := router.NewRouter(sessions, handlers, m, router.RouterConfig{
		LoginRate:      rate.Limit(cfg.RateLimit.LoginRPS),
		LoginBurst:     cfg.RateLimit.LoginBurst,
		RequestTimeout: cfg.Server.RequestTimeout,
		HSTS:           cfg.Session.Secure,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create router")
	}
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("session_backend", cfg.Session.Backend).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func newSessionStore(ctx context.Context, cfg config.SessionConfig) (session.Store, func(), error) {
	if cfg.Backend == config.SessionBackendRedis {
		connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		store, err := session.NewRedisStore(connectCtx, cfg.RedisURL, cfg.TTL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close Redis session store")
			}
		}, nil
	}
	return session.NewMemoryStore(cfg.TTL), func() {}, nil
}
