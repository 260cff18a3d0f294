package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "HOST", "SHUTDOWN_TIMEOUT_IN_SECONDS",
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASS", "DB_SSLMODE", "TZ", "DB_PATH",
	"DB_CONNECT_ATTEMPTS", "DB_CONNECT_DELAY", "DB_MAX_OPEN_CONNS", "DB_LOG_LEVEL",
	"SEED_ENABLED", "SEED_LEGACY_RESET",
}

// clearEnv blanks every config key; viper ignores empty variables.
func clearEnv(t *testing.T) {
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnv(t)

	cfg := NewConfig()

	assert.Equal(t, int32(8190), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "bibl_library", cfg.Database.Name)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Empty(t, cfg.Database.Password)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "UTC", cfg.Database.TimeZone)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, 10, cfg.Database.ConnectAttempts)
	assert.Equal(t, 2*time.Second, cfg.Database.ConnectDelay)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "warn", cfg.Database.LogLevel)

	assert.True(t, cfg.Seed.Enabled)
	assert.True(t, cfg.Seed.LegacyReset)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/catalog.db")
	t.Setenv("DB_PASS", "s3cret")
	t.Setenv("DB_CONNECT_DELAY", "250ms")
	t.Setenv("SEED_LEGACY_RESET", "false")
	t.Setenv("PORT", "9000")

	cfg := NewConfig()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/catalog.db", cfg.Database.Path)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.ConnectDelay)
	assert.False(t, cfg.Seed.LegacyReset)
	assert.Equal(t, int32(9000), cfg.HTTP.Port)
}

func TestNewConfig_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	clearEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("DB_HOST=db.internal\nDB_NAME=from_file\n"), 0o600))
	t.Setenv("DB_NAME", "from_env")
	// godotenv sets variables for the rest of the process; restore them afterwards.
	t.Setenv("DB_HOST", "")
	require.NoError(t, os.Unsetenv("DB_HOST"))

	cfg := NewConfig()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "from_env", cfg.Database.Name)
}

func TestDatabase_DSN(t *testing.T) {
	d := Database{
		Host:     "localhost",
		Port:     "5432",
		Name:     "bibl_library",
		User:     "postgres",
		Password: "pw",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
	assert.Equal(t,
		"TimeZone=UTC host='localhost' user='postgres' password='pw' dbname='bibl_library' port='5432' sslmode='disable'",
		d.DSN(),
	)
	assert.NotContains(t, d.Redacted(), "pw")
}

func TestDatabase_DSNParsesBack(t *testing.T) {
	for _, password := range []string{"", "s3cret pass", `it's`, `back\slash`, "a=b c='d'", "x TimeZone=Mars"} {
		d := Database{
			Host:     "db.internal",
			Port:     "6543",
			Name:     "bibl library",
			User:     "bibl",
			Password: password,
			SSLMode:  "disable",
			TimeZone: "Europe/Berlin",
		}

		parsed, err := pgconn.ParseConfig(d.DSN())
		require.NoError(t, err, password)

		assert.Equal(t, password, parsed.Password)
		assert.Equal(t, "db.internal", parsed.Host)
		assert.Equal(t, uint16(6543), parsed.Port)
		assert.Equal(t, "bibl library", parsed.Database)
		assert.Equal(t, "bibl", parsed.User)
		assert.Equal(t, "Europe/Berlin", parsed.RuntimeParams["TimeZone"])
		assert.True(t, strings.HasPrefix(d.DSN(), "TimeZone=Europe/Berlin "), password)
	}
}

func TestDatabase_SQLiteDSN(t *testing.T) {
	d := Database{Driver: DriverSQLite, Path: "./bibl.db"}
	assert.Equal(t, "./bibl.db?_foreign_keys=on", d.SQLiteDSN())
	assert.Equal(t, "sqlite:./bibl.db", d.Redacted())
}
