// Package genres provides database operations for catalog genres.
package genres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bibl/internal/database"
	"github.com/mrlokans/bibl/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all genres ordered by name.
func (r *Repository) List(ctx context.Context) ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&genres).Error
	return genres, database.TranslateError(err)
}

// GetByID retrieves a genre by ID.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Genre, error) {
	var genre entities.Genre
	if err := r.db.WithContext(ctx).First(&genre, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &genre, nil
}

// Create validates and stores a new genre. A duplicate name is rejected by
// the unique index and reported as ErrConstraintViolation.
func (r *Repository) Create(ctx context.Context, genre *entities.Genre) (*entities.Genre, error) {
	record := *genre
	record.ID = 0
	record.Books = nil
	record.Normalize()
	if err := database.Validate(&record); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&record).Error
	})
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return &record, nil
}

// Update replaces the name and description of an existing genre.
func (r *Repository) Update(ctx context.Context, id uint, genre *entities.Genre) (*entities.Genre, error) {
	record := *genre
	record.ID = id
	record.Books = nil
	record.Normalize()
	if err := database.Validate(&record); err != nil {
		return nil, err
	}

	var updated entities.Genre
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Genre{}).Where("id = ?", id).Updates(map[string]any{
			"name":        record.Name,
			"description": record.Description,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return database.ErrNotFound
		}
		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return &updated, nil
}

// Delete removes a genre and every book in it atomically.
// Returns the number of books removed along with the genre.
func (r *Repository) Delete(ctx context.Context, id uint) (int64, error) {
	var removedBooks int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		books := tx.Where("genre_id = ?", id).Delete(&entities.Book{})
		if books.Error != nil {
			return books.Error
		}

		result := tx.Delete(&entities.Genre{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return database.ErrNotFound
		}

		removedBooks = books.RowsAffected
		return nil
	})
	if err != nil {
		return 0, database.TranslateError(err)
	}
	return removedBooks, nil
}

// Count returns the total number of genres.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Genre{}).Count(&count).Error
	return count, database.TranslateError(err)
}
