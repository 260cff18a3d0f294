// Package seed loads the reference catalog into an empty store.
//
// EnsureSeeded is safe to call on every startup:
//
//  1. If the reset condition holds, every book, author and genre is removed.
//  2. If any book exists, nothing else happens.
//  3. If authors or genres exist without books, ErrIncompleteCatalog is
//     returned and nothing is written.
//  4. Otherwise authors and genres are inserted in one transaction, then
//     books in a second one, referencing the ids assigned in the first.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bibl/internal/database"
	"github.com/mrlokans/bibl/internal/entities"
)

// ErrIncompleteCatalog reports authors or genres left in a store that has no
// books. Inserting the fixtures would collide with them.
var ErrIncompleteCatalog = errors.New("catalog has authors or genres but no books")

// DefaultLegacyTitles identify the obsolete sample catalog.
var DefaultLegacyTitles = []string{"1984", "To Kill a Mockingbird"}

// ResetCondition decides whether the existing catalog must be wiped before seeding.
type ResetCondition func(ctx context.Context, db *gorm.DB) (bool, error)

// LegacyTitles returns a ResetCondition that holds when any book has one of
// the given titles exactly.
func LegacyTitles(titles ...string) ResetCondition {
	return func(ctx context.Context, db *gorm.DB) (bool, error) {
		if len(titles) == 0 {
			return false, nil
		}
		var count int64
		err := db.WithContext(ctx).Model(&entities.Book{}).Where("title IN ?", titles).Count(&count).Error
		return count > 0, err
	}
}

// Result summarizes what EnsureSeeded did.
type Result struct {
	Reset   bool // the catalog was wiped
	Skipped bool // books already existed, nothing inserted
	Authors int
	Genres  int
	Books   int
}

func (r Result) String() string {
	if r.Skipped {
		return fmt.Sprintf("seed skipped (reset=%t)", r.Reset)
	}
	return fmt.Sprintf("seeded %d authors, %d genres, %d books (reset=%t)", r.Authors, r.Genres, r.Books, r.Reset)
}

type Option func(*Seeder)

// WithResetCondition replaces the reset check. nil disables resetting.
func WithResetCondition(cond ResetCondition) Option {
	return func(s *Seeder) {
		s.reset = cond
	}
}

// WithFixtures replaces the reference data set.
func WithFixtures(f Fixtures) Option {
	return func(s *Seeder) {
		s.fixtures = f
	}
}

type Seeder struct {
	db       *gorm.DB
	reset    ResetCondition
	fixtures Fixtures
}

// NewSeeder creates a seeder using the default fixtures and the legacy-title
// reset condition unless overridden.
func NewSeeder(db *gorm.DB, opts ...Option) *Seeder {
	s := &Seeder{
		db:       db,
		reset:    LegacyTitles(DefaultLegacyTitles...),
		fixtures: DefaultFixtures(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureSeeded brings the store to a seeded state.
func (s *Seeder) EnsureSeeded(ctx context.Context) (Result, error) {
	var result Result
	db := s.db.WithContext(ctx)

	if s.reset != nil {
		reset, err := s.reset(ctx, db)
		if err != nil {
			return result, fmt.Errorf("check reset condition: %w", err)
		}
		if reset {
			if err := wipe(db); err != nil {
				return result, fmt.Errorf("reset catalog: %w", err)
			}
			result.Reset = true
		}
	}

	var books int64
	if err := db.Model(&entities.Book{}).Count(&books).Error; err != nil {
		return result, fmt.Errorf("count books: %w", err)
	}
	if books > 0 {
		result.Skipped = true
		return result, nil
	}
	if err := checkNoParents(db); err != nil {
		return result, err
	}

	authors, genres, err := s.prepare()
	if err != nil {
		return result, err
	}

	authorIDs := make(map[string]uint, len(authors))
	genreIDs := make(map[string]uint, len(genres))
	err = db.Transaction(func(tx *gorm.DB) error {
		if len(authors) > 0 {
			if err := tx.Omit(clause.Associations).Create(&authors).Error; err != nil {
				return fmt.Errorf("insert authors: %w", err)
			}
		}
		if len(genres) > 0 {
			if err := tx.Omit(clause.Associations).Create(&genres).Error; err != nil {
				return fmt.Errorf("insert genres: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return result, database.TranslateError(err)
	}
	for i, a := range authors {
		authorIDs[s.fixtures.Authors[i].Key] = a.ID
	}
	for i, g := range genres {
		genreIDs[s.fixtures.Genres[i].Key] = g.ID
	}
	result.Authors = len(authors)
	result.Genres = len(genres)

	bookRows := lo.Map(s.fixtures.Books, func(f BookFixture, _ int) entities.Book {
		b := f.Book
		b.Normalize()
		b.AuthorID = authorIDs[f.AuthorKey]
		b.GenreID = genreIDs[f.GenreKey]
		return b
	})
	if len(bookRows) == 0 {
		return result, nil
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&bookRows).Error
	})
	if err != nil {
		return result, fmt.Errorf("insert books: %w", database.TranslateError(err))
	}
	result.Books = len(bookRows)

	return result, nil
}

func checkNoParents(db *gorm.DB) error {
	var authors, genres int64
	if err := db.Model(&entities.Author{}).Count(&authors).Error; err != nil {
		return fmt.Errorf("count authors: %w", err)
	}
	if err := db.Model(&entities.Genre{}).Count(&genres).Error; err != nil {
		return fmt.Errorf("count genres: %w", err)
	}
	if authors > 0 || genres > 0 {
		return fmt.Errorf("%w (%d authors, %d genres): remove them or restore the books before seeding",
			ErrIncompleteCatalog, authors, genres)
	}
	return nil
}

// prepare normalizes and validates every fixture before anything is written.
func (s *Seeder) prepare() ([]entities.Author, []entities.Genre, error) {
	authors := lo.Map(s.fixtures.Authors, func(f AuthorFixture, _ int) entities.Author {
		a := f.Author
		a.ID = 0
		a.Normalize()
		return a
	})
	genres := lo.Map(s.fixtures.Genres, func(f GenreFixture, _ int) entities.Genre {
		g := f.Genre
		g.ID = 0
		g.Normalize()
		return g
	})

	for i := range authors {
		if err := database.Validate(&authors[i]); err != nil {
			return nil, nil, fmt.Errorf("author fixture %q: %w", s.fixtures.Authors[i].Key, err)
		}
	}
	for i := range genres {
		if err := database.Validate(&genres[i]); err != nil {
			return nil, nil, fmt.Errorf("genre fixture %q: %w", s.fixtures.Genres[i].Key, err)
		}
	}

	authorKeys := lo.Map(s.fixtures.Authors, func(f AuthorFixture, _ int) string { return f.Key })
	genreKeys := lo.Map(s.fixtures.Genres, func(f GenreFixture, _ int) string { return f.Key })
	if dup := lo.FindDuplicates(authorKeys); len(dup) > 0 {
		return nil, nil, fmt.Errorf("duplicate author fixture keys: %v", dup)
	}
	if dup := lo.FindDuplicates(genreKeys); len(dup) > 0 {
		return nil, nil, fmt.Errorf("duplicate genre fixture keys: %v", dup)
	}

	for _, f := range s.fixtures.Books {
		if !lo.Contains(authorKeys, f.AuthorKey) {
			return nil, nil, fmt.Errorf("book fixture %q: unknown author key %q", f.Book.Title, f.AuthorKey)
		}
		if !lo.Contains(genreKeys, f.GenreKey) {
			return nil, nil, fmt.Errorf("book fixture %q: unknown genre key %q", f.Book.Title, f.GenreKey)
		}
		b := f.Book
		b.Normalize()
		// ids are assigned later; validate everything else against placeholders
		b.AuthorID, b.GenreID = 1, 1
		if err := database.Validate(&b); err != nil {
			return nil, nil, fmt.Errorf("book fixture %q: %w", f.Book.Title, err)
		}
	}

	return authors, genres, nil
}

func wipe(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&entities.Book{}).Error; err != nil {
			return err
		}
		if err := all.Delete(&entities.Author{}).Error; err != nil {
			return err
		}
		return all.Delete(&entities.Genre{}).Error
	})
}
