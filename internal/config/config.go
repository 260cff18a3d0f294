package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Seed
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Driver   string // "postgres" or "sqlite"
		Host     string
		Port     string
		Name     string
		User     string
		Password string
		SSLMode  string
		TimeZone string

		// Path is the SQLite database file, used only with the sqlite driver.
		Path string

		ConnectAttempts int
		ConnectDelay    time.Duration
		MaxOpenConns    int
		LogLevel        string // silent, error, warn, info
	}

	Seed struct {
		Enabled     bool
		LegacyReset bool // Wipe the catalog when legacy sample titles are present
	}
)

// EnvFile is loaded on startup when present. Variables already set in the
// process environment take precedence over the file.
const EnvFile = ".env"

func NewConfig() *Config {
	loadEnvFile(EnvFile)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Database defaults
	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_name", DefaultDatabaseName)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_pass", "")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("tz", "UTC")
	v.SetDefault("db_path", DefaultDatabasePath)
	v.SetDefault("db_connect_attempts", 10)
	v.SetDefault("db_connect_delay", "2s")
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("db_log_level", "warn")

	// Seeding defaults
	v.SetDefault("seed_enabled", true)
	v.SetDefault("seed_legacy_reset", true)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:          v.GetString("DB_DRIVER"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			Name:            v.GetString("DB_NAME"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASS"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			TimeZone:        v.GetString("TZ"),
			Path:            v.GetString("DB_PATH"),
			ConnectAttempts: v.GetInt("DB_CONNECT_ATTEMPTS"),
			ConnectDelay:    v.GetDuration("DB_CONNECT_DELAY"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			LogLevel:        v.GetString("DB_LOG_LEVEL"),
		},
		Seed: Seed{
			Enabled:     v.GetBool("SEED_ENABLED"),
			LegacyReset: v.GetBool("SEED_LEGACY_RESET"),
		},
	}
}

func loadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("warning: could not load %s: %v", path, err)
		return
	}
	log.Printf("loaded environment from %s", path)
}

// DSN returns the PostgreSQL connection string in key/value form. Values are
// quoted so secrets may contain spaces, quotes or backslashes. TimeZone stays
// first and unquoted: the gorm driver reads it from the raw DSN.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"TimeZone=%s host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.TimeZone,
		quoteDSNValue(d.Host),
		quoteDSNValue(d.User),
		quoteDSNValue(d.Password),
		quoteDSNValue(d.Name),
		quoteDSNValue(d.Port),
		quoteDSNValue(d.SSLMode),
	)
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSNValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// SQLiteDSN returns the SQLite file DSN with foreign key enforcement enabled.
func (d Database) SQLiteDSN() string {
	return d.Path + "?_foreign_keys=on"
}

// Redacted returns a loggable description of the target database without the password.
func (d Database) Redacted() string {
	if d.Driver == DriverSQLite {
		return "sqlite:" + d.Path
	}
	return fmt.Sprintf("postgres://%s@%s:%s/%s", d.User, d.Host, d.Port, d.Name)
}
