// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "GREENGREEN"

type AppConfig struct {
	Port               string
	DBPath             string
	JWTSecret          string
	SessionTTL         time.Duration
	DevLogin           bool
	DefaultRegion      string
	LogLevel           string
	LogFormat          string
	CatalogFile        string
	PriceImportDomains []string
	// AdminUsers are the user ids allowed to run price imports.
	AdminUsers []string

	// GeneratedSecret is set when no JWT secret was configured and a random
	// one was minted for this process.
	GeneratedSecret bool
}

func defaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db_path", "greengreen.db")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("session_ttl", "168h")
	v.SetDefault("dev_login", false)
	v.SetDefault("default_region", "southwest")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("catalog_file", "")
	v.SetDefault("price_import_domains", "")
	v.SetDefault("admin_users", "")
}

// Load reads .env (if present) and GREENGREEN_* variables.
func Load() (AppConfig, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds an AppConfig from an already populated viper instance.
func FromViper(v *viper.Viper) (AppConfig, error) {
	defaults(v)

	ttl, err := time.ParseDuration(v.GetString("session_ttl"))
	if err != nil {
		return AppConfig{}, fmt.Errorf("session_ttl: %w", err)
	}
	if ttl <= 0 {
		return AppConfig{}, fmt.Errorf("session_ttl must be positive, got %s", ttl)
	}

	level := strings.ToLower(v.GetString("log_level"))
	switch level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return AppConfig{}, fmt.Errorf("log_level: unknown level %q", level)
	}
	format := strings.ToLower(v.GetString("log_format"))
	if format != "json" && format != "console" {
		return AppConfig{}, fmt.Errorf("log_format: unknown format %q", format)
	}

	cfg := AppConfig{
		Port:          v.GetString("port"),
		DBPath:        v.GetString("db_path"),
		JWTSecret:     v.GetString("jwt_secret"),
		SessionTTL:    ttl,
		DevLogin:      v.GetBool("dev_login"),
		DefaultRegion: strings.ToLower(v.GetString("default_region")),
		LogLevel:      level,
		LogFormat:     format,
		CatalogFile:   v.GetString("catalog_file"),
	}
	cfg.PriceImportDomains = splitList(strings.ToLower(v.GetString("price_import_domains")))
	cfg.AdminUsers = splitList(v.GetString("admin_users"))
	if cfg.JWTSecret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return AppConfig{}, fmt.Errorf("generate jwt secret: %w", err)
		}
		cfg.JWTSecret = hex.EncodeToString(buf)
		cfg.GeneratedSecret = true
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
