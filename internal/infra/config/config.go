package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// SMTPConfig holds the email transport settings. It is validated once at
// startup by the email client constructor, never re-read per call.
type SMTPConfig struct {
	Host       string
	Port       int
	Secure     bool
	User       string
	Password   string
	SenderName string
}

// WhatsAppConfig holds the chat transport settings.
type WhatsAppConfig struct {
	Token         string
	PhoneNumberID string
	APIBaseURL    string
}

// AppConfig holds all configuration for the application.
type AppConfig struct {
	AppName     string
	LogLevel    string
	Environment string

	FamilyMembersCSV   string
	RecipientsCSV      string
	CompaniesCSV       string
	CompanyOfficersCSV string

	SMTP     SMTPConfig
	WhatsApp WhatsAppConfig

	CronSpecCelebrants string
	CronSpecCompanies  string
	LookaheadDays      int
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.AppName = os.Getenv("APP_NAME")
	if cfg.AppName == "" {
		cfg.AppName = "Event Announcer"
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.FamilyMembersCSV = envOrDefault("FAMILY_MEMBERS_CSV", "data/family_members.csv")
	cfg.RecipientsCSV = envOrDefault("RECIPIENTS_CSV", "data/recipients.csv")
	cfg.CompaniesCSV = envOrDefault("COMPANIES_CSV", "data/companies.csv")
	cfg.CompanyOfficersCSV = envOrDefault("COMPANY_OFFICERS_CSV", "data/company-officers.csv")

	cfg.SMTP.Host = os.Getenv("SMTP_HOST")
	portStr := envOrDefault("SMTP_PORT", "587")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", portStr, err)
	}
	cfg.SMTP.Port = port
	cfg.SMTP.Secure = os.Getenv("SMTP_SECURE") == "true"
	cfg.SMTP.User = os.Getenv("SMTP_USER")
	cfg.SMTP.Password = os.Getenv("SMTP_PASSWORD")
	cfg.SMTP.SenderName = envOrDefault("SMTP_SENDER_NAME", cfg.AppName)

	cfg.WhatsApp.Token = os.Getenv("WHATSAPP_TOKEN")
	cfg.WhatsApp.PhoneNumberID = os.Getenv("PHONE_NUMBER_ID")
	cfg.WhatsApp.APIBaseURL = envOrDefault("WHATSAPP_API_BASE_URL", "https://graph.facebook.com/v17.0")

	cfg.CronSpecCelebrants = envOrDefault("CRON_SPEC_CELEBRANTS", "0 7 * * *")
	cfg.CronSpecCompanies = envOrDefault("CRON_SPEC_COMPANIES", "0 8 * * *")

	lookaheadStr := envOrDefault("COMPANY_EVENT_LOOKAHEAD_DAYS", "30")
	lookahead, err := strconv.Atoi(lookaheadStr)
	if err != nil {
		return nil, fmt.Errorf("invalid COMPANY_EVENT_LOOKAHEAD_DAYS %q: %w", lookaheadStr, err)
	}
	if lookahead < 0 {
		return nil, fmt.Errorf("COMPANY_EVENT_LOOKAHEAD_DAYS must not be negative, got %d", lookahead)
	}
	cfg.LookaheadDays = lookahead

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
