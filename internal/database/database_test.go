package database_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bibl/internal/config"
	"github.com/mrlokans/bibl/internal/database"
	"github.com/mrlokans/bibl/internal/database/dbtest"
	"github.com/mrlokans/bibl/internal/entities"
)

func TestNewDatabase_SQLite(t *testing.T) {
	cfg := config.Database{
		Driver:          config.DriverSQLite,
		Path:            filepath.Join(t.TempDir(), "catalog.db"),
		ConnectAttempts: 1,
		LogLevel:        "silent",
	}

	db, err := database.NewDatabase(cfg)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping(context.Background()))

	for _, table := range []string{"authors", "genres", "books", "schema_migrations"} {
		assert.True(t, db.DB.Migrator().HasTable(table), table)
	}
	assert.True(t, db.DB.Migrator().HasIndex(&entities.Book{}, "idx_books_isbn"))
	assert.True(t, db.DB.Migrator().HasIndex(&entities.Genre{}, "idx_genres_name"))
}

func TestNewDatabase_ConnectivityError(t *testing.T) {
	t.Run("unreachable sqlite path", func(t *testing.T) {
		cfg := config.Database{
			Driver:          config.DriverSQLite,
			Path:            filepath.Join(t.TempDir(), "missing", "dir", "catalog.db"),
			ConnectAttempts: 2,
			ConnectDelay:    time.Millisecond,
			LogLevel:        "silent",
		}

		_, err := database.NewDatabase(cfg)

		var connErr *database.ConnectivityError
		require.True(t, errors.As(err, &connErr), "got %v", err)
		assert.Equal(t, "connect", connErr.Op)
	})

	t.Run("unsupported driver", func(t *testing.T) {
		_, err := database.NewDatabase(config.Database{Driver: "oracle", ConnectAttempts: 1})

		var connErr *database.ConnectivityError
		require.True(t, errors.As(err, &connErr))
		assert.Contains(t, err.Error(), "oracle")
	})
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	require.NoError(t, database.Migrate(ctx, db))
	require.NoError(t, database.Migrate(ctx, db))

	var count int64
	require.NoError(t, db.Model(&database.SchemaMigration{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	version, err := database.AppliedVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, uint(database.SchemaVersion), version)
}

func TestMigrate_StorageConstraints(t *testing.T) {
	db := dbtest.Open(t)

	author := entities.Author{FirstName: "Jane", LastName: "Austen", BirthDate: time.Date(1775, 12, 16, 0, 0, 0, 0, time.UTC), Country: "United Kingdom"}
	require.NoError(t, db.Create(&author).Error)
	genre := entities.Genre{Name: "Classic"}
	require.NoError(t, db.Create(&genre).Error)

	book := func(isbn string, year, qty int, authorID uint) *entities.Book {
		return &entities.Book{Title: "T", ISBN: isbn, PublishYear: year, QuantityInStock: qty, AuthorID: authorID, GenreID: genre.ID}
	}

	require.NoError(t, db.Create(book("1", 1813, 5, author.ID)).Error)

	tests := []struct {
		name string
		row  any
	}{
		{"duplicate isbn", book("1", 1813, 5, author.ID)},
		{"year below range", book("2", 999, 5, author.ID)},
		{"year above range", book("3", 3001, 5, author.ID)},
		{"negative quantity", book("4", 1813, -1, author.ID)},
		{"dangling author", book("5", 1813, 1, author.ID+100)},
		{"duplicate genre name", &entities.Genre{Name: "Classic"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := database.TranslateError(db.Create(tt.row).Error)
			assert.ErrorIs(t, err, database.ErrConstraintViolation)
		})
	}
}
