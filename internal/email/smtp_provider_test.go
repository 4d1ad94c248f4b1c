package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSMTPConfig() SMTPConfig {
	return SMTPConfig{
		Host:      "smtp.example.com",
		Port:      587,
		Username:  "mailer",
		Password:  "secret",
		FromEmail: "noreply@example.com",
		FromName:  "crudboard",
		BaseURL:   "https://crudboard.example.com",
	}
}

func TestSMTPConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validSMTPConfig().Validate())

	noHost := validSMTPConfig()
	noHost.Host = ""
	assert.Error(t, noHost.Validate())

	noPort := validSMTPConfig()
	noPort.Port = 0
	assert.Error(t, noPort.Validate())

	noFrom := validSMTPConfig()
	noFrom.FromEmail = ""
	assert.Error(t, noFrom.Validate())
}

func TestNewSMTPProvider_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := NewSMTPProvider(SMTPConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email config")
}

func TestNewSMTPProvider_ValidConfig(t *testing.T) {
	t.Parallel()

	provider, err := NewSMTPProvider(validSMTPConfig())
	require.NoError(t, err)
	assert.NotNil(t, provider)
}
