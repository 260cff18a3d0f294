// Package authors provides database operations for catalog authors.
//
// Deleting an author removes all of the author's books in the same
// transaction and reports how many were removed.
//
//	repo := authors.NewRepository(db)
//	removed, err := repo.Delete(ctx, authorID)
package authors

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bibl/internal/database"
	"github.com/mrlokans/bibl/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all authors ordered by last name, then first name.
func (r *Repository) List(ctx context.Context) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.WithContext(ctx).
		Order("last_name ASC").Order("first_name ASC").Order("id ASC").
		Find(&authors).Error
	return authors, database.TranslateError(err)
}

// GetByID retrieves an author by ID.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.WithContext(ctx).First(&author, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &author, nil
}

// Create validates and stores a new author.
func (r *Repository) Create(ctx context.Context, author *entities.Author) (*entities.Author, error) {
	record := *author
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

// Update replaces the editable fields of an existing author.
func (r *Repository) Update(ctx context.Context, id uint, author *entities.Author) (*entities.Author, error) {
	record := *author
	record.ID = id
	record.Books = nil
	record.Normalize()
	if err := database.Validate(&record); err != nil {
		return nil, err
	}

	var updated entities.Author
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Author{}).Where("id = ?", id).Updates(map[string]any{
			"first_name": record.FirstName,
			"last_name":  record.LastName,
			"birth_date": record.BirthDate,
			"country":    record.Country,
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

// Delete removes an author and all of the author's books atomically.
// Returns the number of books removed along with the author.
func (r *Repository) Delete(ctx context.Context, id uint) (int64, error) {
	var removedBooks int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		books := tx.Where("author_id = ?", id).Delete(&entities.Book{})
		if books.Error != nil {
			return books.Error
		}

		result := tx.Delete(&entities.Author{}, id)
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

// Count returns the total number of authors.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Author{}).Count(&count).Error
	return count, database.TranslateError(err)
}
