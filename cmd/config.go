package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"courier/internal/adapters/out/payments"
	"courier/internal/jobs"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

// Config is read once at startup and passed by value afterwards.
type Config struct {
	HTTPPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	LogLevel  string
	LogFormat string

	JWTSecret string

	StaleDriverAfter    time.Duration
	StaleDriverSchedule string

	PaymentCurrency string
	MigrationsDir   string
}

// Lookup reads one configuration key. os.LookupEnv satisfies it.
type Lookup func(key string) (string, bool)

// LoadConfig builds a Config from lookup, falling back to defaults for unset keys.
func LoadConfig(lookup Lookup) (Config, error) {
	get := func(key string, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:            get("HTTP_PORT", "8080"),
		DBDriver:            strings.ToLower(get("DB_DRIVER", DBDriverPostgres)),
		DBHost:              get("DB_HOST", "localhost"),
		DBPort:              get("DB_PORT", "5432"),
		DBUser:              get("DB_USER", "postgres"),
		DBPassword:          get("DB_PASSWORD", ""),
		DBName:              get("DB_NAME", "courier"),
		DBSslMode:           get("DB_SSLMODE", "disable"),
		SQLitePath:          get("SQLITE_PATH", "courier.db"),
		LogLevel:            get("LOG_LEVEL", "info"),
		LogFormat:           get("LOG_FORMAT", "json"),
		JWTSecret:           get("JWT_SECRET", ""),
		StaleDriverSchedule: get("STALE_DRIVER_SCHEDULE", jobs.DefaultStaleDriverSchedule),
		PaymentCurrency:     strings.ToLower(get("PAYMENT_CURRENCY", payments.DefaultCurrency)),
		MigrationsDir:       get("MIGRATIONS_DIR", "migrations"),
	}

	var err error
	cfg.StaleDriverAfter, err = time.ParseDuration(get("STALE_DRIVER_AFTER", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STALE_DRIVER_AFTER: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFromEnv reads the process environment.
func LoadConfigFromEnv() (Config, error) {
	return LoadConfig(os.LookupEnv)
}

func (c Config) Validate() error {
	var problems []error
	if c.DBDriver != DBDriverPostgres && c.DBDriver != DBDriverSQLite {
		problems = append(problems, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DBDriverPostgres, DBDriverSQLite, c.DBDriver))
	}
	if c.StaleDriverAfter <= 0 {
		problems = append(problems, fmt.Errorf("STALE_DRIVER_AFTER must be positive, got %s", c.StaleDriverAfter))
	}
	if len(c.PaymentCurrency) != 3 {
		problems = append(problems, fmt.Errorf("PAYMENT_CURRENCY must be a three letter code, got %q", c.PaymentCurrency))
	}
	return errors.Join(problems...)
}

// PostgresDSN is the key/value connection string gorm's postgres driver expects.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// PostgresURL is the same connection as a URL, the form golang-migrate needs.
func (c Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}
