package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration, read from the environment (and an
// optional .env file) once at start and passed down explicitly.
type Config struct {
	ServerPort string
	BaseURL    string

	// database
	DatabaseURL string
	DBLogLevel  string

	// hosted auth provider
	AuthURL            string
	AuthAnonKey        string
	AuthServiceRoleKey string
	AuthJWTSecret      string
	AuthCookieName     string

	AuditRetentionDays int

	LogLevel    string
	LogFormat   string
	CORSOrigins []string
}

// Load reads .env (if present) and the environment.
// The returned bool reports whether a .env file was loaded.
func Load() (*Config, bool) {
	loaded := godotenv.Load() == nil

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("AUTH_COOKIE_NAME", "sb-access-token")
	v.SetDefault("AUDIT_RETENTION_DAYS", 365)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ORIGINS", "")

	cfg := &Config{
		ServerPort:         v.GetString("SERVER_PORT"),
		BaseURL:            strings.TrimRight(v.GetString("BASE_URL"), "/"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		DBLogLevel:         v.GetString("DB_LOG_LEVEL"),
		AuthURL:            strings.TrimRight(v.GetString("AUTH_URL"), "/"),
		AuthAnonKey:        v.GetString("AUTH_ANON_KEY"),
		AuthServiceRoleKey: v.GetString("AUTH_SERVICE_ROLE_KEY"),
		AuthJWTSecret:      v.GetString("AUTH_JWT_SECRET"),
		AuthCookieName:     v.GetString("AUTH_COOKIE_NAME"),
		AuditRetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		CORSOrigins:        splitList(v.GetString("CORS_ORIGINS")),
	}
	return cfg, loaded
}

// Validate checks the keys the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.AuthJWTSecret == "" && c.AuthURL == "" {
		return errors.New("either AUTH_JWT_SECRET or AUTH_URL is required")
	}
	if c.AuthURL != "" && c.AuthServiceRoleKey == "" && c.AuthAnonKey == "" {
		return fmt.Errorf("AUTH_URL is set (%s) but no AUTH_SERVICE_ROLE_KEY or AUTH_ANON_KEY", c.AuthURL)
	}
	if c.AuditRetentionDays < 0 {
		return errors.New("AUDIT_RETENTION_DAYS must not be negative")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
