package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("MODAL_DELAY", "")
	t.Setenv("UPSTASH_REDIS_URL", "")
	t.Setenv("REDIS_ADDR", "")

	c, err := Load("testdata/missing.env")
	require.NoError(t, err)
	assert.Equal(t, "development", c.AppEnv)
	assert.Equal(t, ":3000", c.Addr)
	assert.Equal(t, time.Second, c.ModalDelay)
	assert.Equal(t, 2*time.Second, c.SettingsDelay)
	assert.Equal(t, 5*time.Second, c.ReportDelay)
	assert.Equal(t, "admin", c.AdminUsername)
	assert.Equal(t, 1000, c.AuditKeep)
	assert.False(t, c.RedisEnabled())
	assert.False(t, c.S3.Enabled())
	assert.Equal(t, []string{"http://localhost:4200", "http://127.0.0.1:4200"}, c.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MODAL_DELAY", "0s")
	t.Setenv("CORS_ORIGINS", " https://admin.nexus.test , ")
	t.Setenv("AUDIT_KEEP", "50")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("AWS_BUCKET", "nexus")
	t.Setenv("AWS_ACCESS_KEY_ID", "k")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "s")

	c, err := Load("testdata/missing.env")
	require.NoError(t, err)
	assert.Zero(t, c.ModalDelay)
	assert.Equal(t, []string{"https://admin.nexus.test"}, c.CORSOrigins)
	assert.Equal(t, 50, c.AuditKeep)
	assert.Equal(t, 2.5, c.RateLimitRPS)
	assert.True(t, c.S3.Enabled())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("MODAL_DELAY", "soon")
	t.Setenv("AUDIT_KEEP", "many")
	_, err := Load("testdata/missing.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MODAL_DELAY")
	assert.Contains(t, err.Error(), "AUDIT_KEEP")
}

func TestValidate(t *testing.T) {
	base := Config{AuditWorkers: 1, AuditBuffer: 1, AuditKeep: 1, RateLimitRPS: 1, RateLimitBurst: 1, LoginMaxAttempts: 1, RetentionAt: "03:00"}
	require.NoError(t, base.Validate())

	tls := base
	tls.TLSCert = "cert.pem"
	assert.Error(t, tls.Validate())

	clock := base
	clock.RetentionAt = "25:00"
	assert.Error(t, clock.Validate())
}

func TestHardeningWarnings(t *testing.T) {
	c := Config{AppEnv: "production", RedisURL: "redis://x", ModalDelay: time.Second}
	warns := strings.Join(c.HardeningWarnings(), "\n")
	assert.Contains(t, warns, "ADMIN_PASSWORD_HASH")
	assert.Contains(t, warns, "rediss://")
	assert.Contains(t, warns, "TLS_CERT")
	assert.Contains(t, warns, "simulated delays")
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("04:30")
	require.NoError(t, err)
	assert.Equal(t, 4, h)
	assert.Equal(t, 30, m)
}
