// Package books provides database operations for catalog books.
//
// Books are always returned with their Author and Genre loaded. Writes
// check that the referenced author and genre exist before touching storage.
package books

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bibl/internal/database"
	"github.com/mrlokans/bibl/internal/database/filters"
	"github.com/mrlokans/bibl/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Author").Preload("Genre")
}

// List returns the books matching the filter, ordered by title.
func (r *Repository) List(ctx context.Context, filter filters.BookFilter) ([]entities.Book, error) {
	query, err := filters.ApplyBookFilter(r.withRelations(ctx).Model(&entities.Book{}), filter)
	if err != nil {
		return nil, err
	}

	var books []entities.Book
	if err := query.Find(&books).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return books, nil
}

// GetByID retrieves a book with its author and genre.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.withRelations(ctx).First(&book, id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &book, nil
}

// Create validates and stores a new book.
func (r *Repository) Create(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	record := *book
	record.ID = 0
	record.Author = nil
	record.Genre = nil
	record.Normalize()
	if err := database.Validate(&record); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, record.AuthorID, record.GenreID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&record).Error
	})
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return r.GetByID(ctx, record.ID)
}

// Update replaces every editable field of an existing book.
func (r *Repository) Update(ctx context.Context, id uint, book *entities.Book) (*entities.Book, error) {
	record := *book
	record.ID = id
	record.Author = nil
	record.Genre = nil
	record.Normalize()
	if err := database.Validate(&record); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&entities.Book{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return database.ErrNotFound
		}
		if err := checkReferences(tx, record.AuthorID, record.GenreID); err != nil {
			return err
		}

		result := tx.Model(&entities.Book{}).Where("id = ?", id).Updates(map[string]any{
			"title":             record.Title,
			"isbn":              record.ISBN,
			"publish_year":      record.PublishYear,
			"quantity_in_stock": record.QuantityInStock,
			"author_id":         record.AuthorID,
			"genre_id":          record.GenreID,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return database.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, database.TranslateError(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a book.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return database.TranslateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entities.Book{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return database.ErrNotFound
		}
		return nil
	}))
}

// Count returns the total number of books.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error
	return count, database.TranslateError(err)
}

// checkReferences reports a ValidationError when the author or genre is missing.
func checkReferences(tx *gorm.DB, authorID, genreID uint) error {
	var fields []database.FieldError

	var n int64
	if err := tx.Model(&entities.Author{}).Where("id = ?", authorID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		fields = append(fields, database.FieldError{Field: "author_id", Rule: "exists", Message: "author does not exist"})
	}

	n = 0
	if err := tx.Model(&entities.Genre{}).Where("id = ?", genreID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		fields = append(fields, database.FieldError{Field: "genre_id", Rule: "exists", Message: "genre does not exist"})
	}

	if len(fields) > 0 {
		return &database.ValidationError{Fields: fields}
	}
	return nil
}
