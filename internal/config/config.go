// Package config loads service settings from the environment with viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Addr         string
	DatabaseURL  string
	RedisAddr    string
	JWTSecret    string
	CORSOrigins  []string
	TimezoneName string

	// OverviewCacheTTL bounds how stale a cached dashboard overview can
	// get if an invalidation is ever missed.
	OverviewCacheTTL time.Duration

	// Restock summary email settings.
	AlertFrom        string
	AlertTo          string
	SMTPServer       string
	SMTPPort         string
	SMTPUser         string
	SMTPPassword     string
	SMTPAuthDisabled bool
}

// Load reads configuration from the environment, applying defaults for
// everything except DATABASE_URL.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("REDIS_ADDR", "backoffice-redis:6379")
	v.SetDefault("JWT_SECRET", "super-secret-key") // override in prod
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("SHOP_TIMEZONE", "America/Chicago")
	v.SetDefault("OVERVIEW_CACHE_TTL", "30s")

	cfg := Config{
		Addr:             v.GetString("ADDR"),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		CORSOrigins:      v.GetStringSlice("CORS_ORIGINS"),
		TimezoneName:     v.GetString("SHOP_TIMEZONE"),
		OverviewCacheTTL: v.GetDuration("OVERVIEW_CACHE_TTL"),
		AlertFrom:        v.GetString("ALERT_FROM"),
		AlertTo:          v.GetString("ALERT_TO"),
		SMTPServer:       v.GetString("SMTP_SERVER"),
		SMTPPort:         v.GetString("SMTP_PORT"),
		SMTPUser:         v.GetString("SMTP_USER"),
		SMTPPassword:     v.GetString("SMTP_PASS"),
		SMTPAuthDisabled: v.GetBool("SMTP_AUTH_DISABLED"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("environment variable DATABASE_URL not found")
	}
	return cfg, nil
}

// Timezone resolves the shop's reference time zone. Dashboard "today"
// boundaries are evaluated in this zone no matter where a request comes
// from.
func (c Config) Timezone() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimezoneName)
	if err != nil {
		return nil, fmt.Errorf("invalid SHOP_TIMEZONE %q: %w", c.TimezoneName, err)
	}
	return loc, nil
}
