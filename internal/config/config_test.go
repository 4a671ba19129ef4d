package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/timezone"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "JWT_EXPIRY_HOURS", "REDIS_ADDR", "CORS_ALLOWED_ORIGINS",
		"AUTH_RATE_LIMIT_RPS", "BUSINESS_TIMEZONE", "VERIFY_EMAIL_DOMAIN", "ENVIRONMENT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24, cfg.JWTExpiryHours)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, float64(5), cfg.AuthRateLimitRPS)
	assert.Equal(t, timezone.DefaultTimezone, cfg.BusinessTimezone)
	assert.False(t, cfg.VerifyEmailDomain)
	assert.False(t, cfg.MailDeliveryEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRY_HOURS", "1")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("VERIFY_EMAIL_DOMAIN", "true")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 1, cfg.JWTExpiryHours)
	assert.True(t, cfg.MailDeliveryEnabled())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.VerifyEmailDomain)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "soon")
	t.Setenv("AUTH_RATE_LIMIT_RPS", "fast")

	cfg := Load()

	assert.Equal(t, 24, cfg.JWTExpiryHours)
	assert.Equal(t, float64(5), cfg.AuthRateLimitRPS)
}
