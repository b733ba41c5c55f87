// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Seed     SeedConfig
}

// DatabaseConfig holds connection and pool settings.
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectRetries  int
	Debug           bool
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Migrations   bool
	Seed         bool
	Lang         string
	TimeZone     string
	StoreName    string
	AuthCacheTTL time.Duration
	BcryptCost   int
}

// SeedConfig describes the administrator created on an empty users table.
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

// DSN returns the PostgreSQL connection string in key=value format,
// or the sqlite path when the sqlite driver is selected.
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return d.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// URL returns the PostgreSQL connection string in URL format.
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

// Location resolves the configured time zone, falling back to UTC.
func (a AppConfig) Location() *time.Location {
	if a.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "SeedMart"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			SQLitePath:      getEnv("SQLITE_PATH", "seedmart.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME", 30)) * time.Minute,
			ConnectRetries:  getEnvInt("DB_CONNECT_RETRIES", 5),
			Debug:           getEnvBool("DB_DEBUG", false),
		},
		App: AppConfig{
			Migrations:   getEnvBool("MIGRATIONS", false),
			Seed:         getEnvBool("DB_SEED", true),
			Lang:         getEnv("APP_LANG", "id"),
			TimeZone:     getEnv("APP_TIMEZONE", "Asia/Jakarta"),
			StoreName:    getEnv("STORE_NAME", "SeedMart"),
			AuthCacheTTL: time.Duration(getEnvInt("AUTH_CACHE_TTL", 300)) * time.Second,
			BcryptCost:   ClampBcryptCost(getEnvInt("BCRYPT_COST", bcrypt.DefaultCost)),
		},
		Seed: SeedConfig{
			AdminUsername: getEnv("SEED_ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@seedmart.local"),
		},
	}
}

// ClampBcryptCost replaces a cost bcrypt would reject with bcrypt.DefaultCost.
func ClampBcryptCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool accepts "1", "true", "yes" as true; any other non-empty value is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	value = strings.ToLower(value)
	return value == "1" || value == "true" || value == "yes"
}
