// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package shared

import (
	"log/slog"
	"os"
	"strconv"
)

// Config collects every environment-sourced setting once at startup instead
// of ad hoc os.Getenv lookups scattered through the request path. Required
// values fail fast, optional ones degrade with a warning.
type Config struct {
	Env  string
	Port string

	PostgresHost     string `validate:"required"`
	PostgresPort     string `validate:"required"`
	PostgresUser     string `validate:"required"`
	PostgresPassword string `validate:"required"`
	PostgresDB       string `validate:"required"`

	// AllowedDomain is the cross-domain check configuration. Empty means
	// open mode: every origin is accepted.
	AllowedDomain string

	// RecaptchaSecretKey enables the abuse challenge stage. Empty disables
	// the stage entirely (fail-open by configuration).
	RecaptchaSecretKey string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	MailFrom             string
	FallbackContactEmail string

	ContentDir          string
	ScheduleUpstreamURL string
}

func ConfigFromEnv() (Config, error) {
	config := Config{
		Env:  getEnvOrDefault("ENVIRONMENT", "dev"),
		Port: getEnvOrDefault("PORT", "8080"),

		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     os.Getenv("POSTGRES_PORT"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),

		AllowedDomain:      os.Getenv("ALLOWED_DOMAIN"),
		RecaptchaSecretKey: os.Getenv("RECAPTCHA_SECRET_KEY"),

		SMTPHost:     getEnvOrDefault("SMTP_HOST", "smtp.resend.com"),
		SMTPUser:     getEnvOrDefault("SMTP_USER", "resend"),
		SMTPPassword: os.Getenv("RESEND_API_KEY"),

		MailFrom:             getEnvOrDefault("MAIL_FROM", "LiveFire Instruction <class@contacts.livefireinstruction.com>"),
		FallbackContactEmail: getEnvOrDefault("CONTACT_FALLBACK_EMAIL", "class@contacts.livefireinstruction.com"),

		ContentDir:          getEnvOrDefault("CONTENT_DIR", "content"),
		ScheduleUpstreamURL: getEnvOrDefault("SCHEDULE_UPSTREAM_URL", "https://instructorsdash.com/api/public/events/livefireinstruction"),
	}

	port, err := strconv.Atoi(getEnvOrDefault("SMTP_PORT", "465"))
	if err != nil {
		return Config{}, err
	}
	config.SMTPPort = port

	if err := V.Struct(config); err != nil {
		return Config{}, err
	}

	if config.AllowedDomain == "" {
		slog.Warn("ALLOWED_DOMAIN not set. Cross-domain check runs in open mode.")
	}
	if config.RecaptchaSecretKey == "" {
		slog.Warn("RECAPTCHA_SECRET_KEY not set. Skipping verification.")
	}
	if config.SMTPPassword == "" {
		slog.Warn("RESEND_API_KEY not set. Contact form mail delivery will fail.")
	}

	return config, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
