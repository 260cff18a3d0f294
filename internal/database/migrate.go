package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/bibl/internal/entities"
)

// Version and name of the single schema step.
const (
	SchemaVersion = 1
	SchemaName    = "initial_catalog"
)

// SchemaMigration records an applied schema step.
type SchemaMigration struct {
	Version   uint      `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"size:100;not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

// Migrate creates the catalog tables, indexes and constraints and records the
// schema version. Running it against an up-to-date store changes nothing.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(
		&entities.Author{},
		&entities.Genre{},
		&entities.Book{},
		&SchemaMigration{},
	); err != nil {
		return &ConnectivityError{Op: "migrate", Err: fmt.Errorf("auto-migrate: %w", err)}
	}

	record := SchemaMigration{Version: SchemaVersion}
	err := db.Where(SchemaMigration{Version: SchemaVersion}).
		Attrs(SchemaMigration{Name: SchemaName, AppliedAt: time.Now().UTC()}).
		FirstOrCreate(&record).Error
	if err != nil {
		return &ConnectivityError{Op: "migrate", Err: fmt.Errorf("record schema version: %w", err)}
	}
	return nil
}

// AppliedVersion returns the highest recorded schema version, or 0 when none.
func AppliedVersion(ctx context.Context, db *gorm.DB) (uint, error) {
	var version uint
	err := db.WithContext(ctx).Model(&SchemaMigration{}).
		Select("COALESCE(MAX(version), 0)").
		Scan(&version).Error
	return version, err
}
