package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "test-khong-co-file")
	t.Setenv("ACCESS_TOKEN_SECRET", "access")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh")
	t.Setenv("MONGODB_CONNECTION_URI", "mongodb://localhost:27017")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_SECURE", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "salesman_order", cfg.MongoDB_DBName)
	assert.Equal(t, 900, cfg.AccessTokenTTL)
	assert.Equal(t, 604800, cfg.RefreshTokenTTL)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.Secure)
	assert.False(t, cfg.SMTP.Configured(), "thiếu user/password thì chưa đủ cấu hình")
}

func TestNewConfig_MissingRequired(t *testing.T) {
	t.Setenv("GO_ENV", "test-khong-co-file")
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh")
	t.Setenv("MONGODB_CONNECTION_URI", "mongodb://localhost:27017")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestSMTPConfig_Sender(t *testing.T) {
	s := SMTPConfig{User: "noreply@example.com"}
	assert.Equal(t, "noreply@example.com", s.Sender())

	s.From = "Shop <shop@example.com>"
	assert.Equal(t, "Shop <shop@example.com>", s.Sender())
}
