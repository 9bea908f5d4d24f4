// Package config loads runtime configuration from the environment, with an
// optional .env file for local development. Submission dependencies
// (database, SMTP) are validated up front so a misconfigured deployment
// fails at boot instead of silently dropping form submissions.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	envPrefix = "SQS_"

	defaultPort         = "8080"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	defaultSMTPPort     = 587
	defaultDataDir      = "data"
	defaultContentDir   = "content"
	defaultTemplatesDir = "templates"
	defaultPublicDir    = "public"
	defaultBaseURL      = "https://www.swissquality-storen.ch"
	defaultContentTTL   = 5 * time.Minute
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server   ServerConfig
	Site     SiteConfig
	Database DatabaseConfig
	Mail     MailConfig
	Paths    PathsConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DevMode      bool
}

// SiteConfig holds the public site parameters.
type SiteConfig struct {
	BaseURL string
}

// DatabaseConfig stores the managed Postgres connection string.
type DatabaseConfig struct {
	URL string
}

// MailConfig stores SMTP parameters for transactional email.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	NotifyTo string
}

// PathsConfig locates the on-disk assets the server reads at boot.
type PathsConfig struct {
	DataDir      string
	ContentDir   string
	TemplatesDir string
	PublicDir    string
	ContentTTL   time.Duration
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Load reads the full configuration including the submission dependencies.
// A missing database URL or SMTP endpoint is a validation error.
func Load() (Config, error) {
	cfg := read()

	var missing []string
	if cfg.Database.URL == "" {
		missing = append(missing, "SQS_DATABASE_URL")
	}
	if cfg.Mail.Host == "" {
		missing = append(missing, "SQS_SMTP_HOST")
	}
	if cfg.Mail.From == "" {
		missing = append(missing, "SQS_MAIL_FROM")
	}
	if cfg.Mail.NotifyTo == "" {
		missing = append(missing, "SQS_CONTACT_NOTIFY_TO")
	}
	if len(missing) > 0 {
		return Config{}, &ValidationError{fields: missing}
	}
	return cfg, nil
}

// LoadStatic reads the configuration without requiring the submission
// dependencies. Used by the static export binary, which never persists or
// sends anything.
func LoadStatic() (Config, error) {
	return read(), nil
}

func read() Config {
	// Best effort; a missing .env simply means everything comes from the process env.
	_ = godotenv.Load()

	port := lookup("PORT", "")
	if port == "" {
		// Cloud Run style fallback.
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultPort
	}

	return Config{
		Server: ServerConfig{
			Port:         port,
			ReadTimeout:  duration("READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: duration("WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  duration("IDLE_TIMEOUT", defaultIdleTimeout),
			DevMode:      lookup("DEV", "") != "",
		},
		Site: SiteConfig{
			BaseURL: strings.TrimRight(lookup("BASE_URL", defaultBaseURL), "/"),
		},
		Database: DatabaseConfig{
			URL: lookup("DATABASE_URL", ""),
		},
		Mail: MailConfig{
			Host:     lookup("SMTP_HOST", ""),
			Port:     integer("SMTP_PORT", defaultSMTPPort),
			Username: lookup("SMTP_USERNAME", ""),
			Password: lookup("SMTP_PASSWORD", ""),
			From:     lookup("MAIL_FROM", ""),
			NotifyTo: lookup("CONTACT_NOTIFY_TO", ""),
		},
		Paths: PathsConfig{
			DataDir:      lookup("DATA_DIR", defaultDataDir),
			ContentDir:   lookup("CONTENT_DIR", defaultContentDir),
			TemplatesDir: lookup("TEMPLATES_DIR", defaultTemplatesDir),
			PublicDir:    lookup("PUBLIC_DIR", defaultPublicDir),
			ContentTTL:   duration("CONTENT_TTL", defaultContentTTL),
		},
	}
}

func lookup(key, fallback string) string {
	if v, ok := os.LookupEnv(envPrefix + key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func duration(key string, fallback time.Duration) time.Duration {
	raw := lookup(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func integer(key string, fallback int) int {
	raw := lookup(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
