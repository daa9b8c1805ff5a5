package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadConfigDefaultsWithEnv(t *testing.T) {
	t.Setenv("HOSPITAL_SESSION_SECRET", testSecret)
	t.Setenv("HOSPITAL_DATABASE_HOST", "db.internal")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, testSecret, cfg.Session.Secret)
	assert.Equal(t, SessionBackendMemory, cfg.Session.Backend)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 5*time.Minute, cfg.Session.AnonymousTTL)
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 9090
database:
  name: clinic
session:
  backend: redis
  secret: 0123456789abcdef0123456789abcdef
  ttl: 30m
rate_limit:
  login_burst: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "clinic", cfg.Database.Name)
	assert.Equal(t, SessionBackendRedis, cfg.Session.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 2, cfg.RateLimit.LoginBurst)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "session.secret")
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Port: 8080},
		Session: SessionConfig{Backend: "memcached", Secret: testSecret, TTL: time.Hour},
		Admin:   AdminConfig{Username: "admin"},
	}
	assert.ErrorContains(t, cfg.Validate(), "memcached")
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", Name: "hospital_db", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=hospital_db sslmode=disable", d.DSN())
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Port: 8080, Mode: "production"},
		Session: SessionConfig{Backend: SessionBackendMemory, Secret: testSecret, TTL: time.Hour},
		Admin:   AdminConfig{Username: "admin"},
	}
	assert.ErrorContains(t, cfg.Validate(), "production")
}

func TestValidateRejectsWeakSecrets(t *testing.T) {
	for _, secret := range []string{"change-me-in-production", "CHANGE-ME", "short-secret"} {
		cfg := Config{
			Server:  ServerConfig{Port: 8080, Mode: "release"},
			Session: SessionConfig{Backend: SessionBackendMemory, Secret: secret, TTL: time.Hour},
			Admin:   AdminConfig{Username: "admin"},
		}
		assert.ErrorContains(t, cfg.Validate(), "session.secret", secret)
	}
}

func TestValidateRejectsAnonymousTTLAboveTTL(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Port: 8080, Mode: "release"},
		Session: SessionConfig{Backend: SessionBackendMemory, Secret: testSecret, TTL: time.Minute, AnonymousTTL: time.Hour},
		Admin:   AdminConfig{Username: "admin"},
	}
	assert.ErrorContains(t, cfg.Validate(), "anonymous_ttl")
}

func TestSampleConfigFailsClosed(t *testing.T) {
	t.Setenv("HOSPITAL_SESSION_SECRET", "")
	_, err := LoadConfig(filepath.Join("..", "..", "config"))
	assert.ErrorContains(t, err, "session.secret")
}
