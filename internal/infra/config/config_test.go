package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Event Announcer", cfg.AppName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "data/family_members.csv", cfg.FamilyMembersCSV)
	assert.Equal(t, "data/company-officers.csv", cfg.CompanyOfficersCSV)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "Event Announcer", cfg.SMTP.SenderName)
	assert.Equal(t, "https://graph.facebook.com/v17.0", cfg.WhatsApp.APIBaseURL)
	assert.Equal(t, 30, cfg.LookaheadDays)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "Socx Event Announcer")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_SECURE", "true")
	t.Setenv("COMPANY_EVENT_LOOKAHEAD_DAYS", "14")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Socx Event Announcer", cfg.AppName)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.Secure)
	assert.Equal(t, "Socx Event Announcer", cfg.SMTP.SenderName, "sender name falls back to the app name")
	assert.Equal(t, 14, cfg.LookaheadDays)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("SMTP_PORT", "587")
	t.Setenv("COMPANY_EVENT_LOOKAHEAD_DAYS", "-1")
	_, err = Load()
	require.Error(t, err)
}
