package config

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	// DefaultDatabaseName is the PostgreSQL database used when DB_NAME is unset.
	DefaultDatabaseName = "bibl_library"

	// DefaultDatabasePath is the SQLite file used when DB_DRIVER=sqlite.
	DefaultDatabasePath = "./bibl.db"
)
