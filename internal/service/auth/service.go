package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/repository"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
	"github.com/jwalitptl/hospital-admin/pkg/security"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// dummyPassword is hashed once and compared against when the username is
// unknown, so both failure paths cost one bcrypt comparison.
const dummyPassword = "not-a-real-admin-password"

type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.Admin, error)
	SeedAdmin(ctx context.Context, username, password string) (bool, error)
}

type Service struct {
	admins  repository.AdminRepository
	hasher  security.PasswordHasher
	metrics *metrics.Metrics

	dummyOnce sync.Once
	dummyHash string
}

func NewService(admins repository.AdminRepository, hasher security.PasswordHasher, m *metrics.Metrics) *Service {
	return &Service{
		admins:  admins,
		hasher:  hasher,
		metrics: m,
	}
}

// Login verifies credentials against the stored admin rows. It returns
// ErrInvalidCredentials for an unknown username and for a wrong password alike.
func (s *Service) Login(ctx context.Context, username, password string) (*model.Admin, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		_ = s.hasher.Compare(s.dummy(), password)
		s.metrics.ObserveLogin(false)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		if !errors.Is(err, security.ErrMismatch) {
			log.Error().Err(err).Str("username", username).Msg("Stored password hash is unusable")
		}
		s.metrics.ObserveLogin(false)
		return nil, ErrInvalidCredentials
	}

	s.metrics.ObserveLogin(true)
	return admin, nil
}

// SeedAdmin creates the initial admin when the admin table is empty.
func (s *Service) SeedAdmin(ctx context.Context, username, password string) (bool, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	created, err := s.admins.SeedDefault(ctx, &model.Admin{Username: username, PasswordHash: hash})
	if err != nil {
		return false, fmt.Errorf("failed to seed admin: %w", err)
	}
	return created, nil
}

func (s *Service) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(dummyPassword)
		if err != nil {
			log.Error().Err(err).Msg("Failed to prepare dummy password hash")
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
