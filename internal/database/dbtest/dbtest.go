// Package dbtest opens isolated, migrated SQLite databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bibl/internal/database"
)

// DSN returns a shared-cache in-memory SQLite DSN unique to one test.
func DSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
}

// Open returns a migrated in-memory database that is closed when the test ends.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(database.SQLiteDialector(DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(context.Background(), db))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db
}
