package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bibl/internal/database/dbtest"
	"github.com/mrlokans/bibl/internal/entities"
)

func counts(t *testing.T, db *gorm.DB) (authors, genres, books int64) {
	t.Helper()
	require.NoError(t, db.Model(&entities.Author{}).Count(&authors).Error)
	require.NoError(t, db.Model(&entities.Genre{}).Count(&genres).Error)
	require.NoError(t, db.Model(&entities.Book{}).Count(&books).Error)
	return authors, genres, books
}

func insertLegacyCatalog(t *testing.T, db *gorm.DB, title string) {
	t.Helper()
	author := entities.Author{FirstName: "Harper", LastName: "Lee", BirthDate: time.Date(1926, 4, 28, 0, 0, 0, 0, time.UTC), Country: "United States"}
	require.NoError(t, db.Create(&author).Error)
	genre := entities.Genre{Name: "Classic"}
	require.NoError(t, db.Create(&genre).Error)
	require.NoError(t, db.Create(&entities.Book{
		Title: title, ISBN: "9780061120084", PublishYear: 1960, QuantityInStock: 2,
		AuthorID: author.ID, GenreID: genre.ID,
	}).Error)
}

func TestEnsureSeeded_FreshStore(t *testing.T) {
	db := dbtest.Open(t)

	result, err := NewSeeder(db).EnsureSeeded(context.Background())

	require.NoError(t, err)
	assert.False(t, result.Reset)
	assert.False(t, result.Skipped)
	assert.Equal(t, Result{Authors: 14, Genres: 6, Books: 15}, result)

	authors, genres, books := counts(t, db)
	assert.Equal(t, int64(14), authors)
	assert.Equal(t, int64(6), genres)
	assert.Equal(t, int64(15), books)
}

func TestEnsureSeeded_ReferencesResolveToFixtureParents(t *testing.T) {
	db := dbtest.Open(t)
	_, err := NewSeeder(db).EnsureSeeded(context.Background())
	require.NoError(t, err)

	var stored []entities.Book
	require.NoError(t, db.Preload("Author").Preload("Genre").Find(&stored).Error)
	byTitle := make(map[string]entities.Book, len(stored))
	for _, b := range stored {
		byTitle[b.Title] = b
	}

	for _, f := range DefaultFixtures().Books {
		b, ok := byTitle[f.Book.Title]
		require.True(t, ok, f.Book.Title)

		var wantAuthor entities.Author
		for _, a := range DefaultFixtures().Authors {
			if a.Key == f.AuthorKey {
				wantAuthor = a.Author
			}
		}
		assert.Equal(t, wantAuthor.LastName, b.Author.LastName, f.Book.Title)
		assert.Equal(t, f.GenreKey, b.GenreName(), f.Book.Title)
		assert.Equal(t, f.Book.ISBN, b.ISBN)
	}

	assert.Equal(t, "J.R.R. Tolkien", byTitle["The Lord of the Rings"].AuthorFullName())
	assert.Equal(t, "Magical Realism", byTitle["One Hundred Years of Solitude"].GenreName())
	require.NotNil(t, byTitle["War and Peace"].Genre.Description)
	assert.Equal(t, "Historical fiction", *byTitle["War and Peace"].Genre.Description)
}

func TestEnsureSeeded_IsIdempotent(t *testing.T) {
	db := dbtest.Open(t)
	seeder := NewSeeder(db)

	_, err := seeder.EnsureSeeded(context.Background())
	require.NoError(t, err)

	result, err := seeder.EnsureSeeded(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.False(t, result.Reset)
	authors, genres, books := counts(t, db)
	assert.Equal(t, []int64{14, 6, 15}, []int64{authors, genres, books})
}

func TestEnsureSeeded_SkipsAnyExistingCatalog(t *testing.T) {
	db := dbtest.Open(t)
	insertLegacyCatalog(t, db, "Go Set a Watchman")

	result, err := NewSeeder(db).EnsureSeeded(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	authors, genres, books := counts(t, db)
	assert.Equal(t, []int64{1, 1, 1}, []int64{authors, genres, books})
}

func TestEnsureSeeded_LegacyReset(t *testing.T) {
	for _, title := range DefaultLegacyTitles {
		t.Run(title, func(t *testing.T) {
			db := dbtest.Open(t)
			insertLegacyCatalog(t, db, title)

			result, err := NewSeeder(db).EnsureSeeded(context.Background())

			require.NoError(t, err)
			assert.True(t, result.Reset)
			assert.False(t, result.Skipped)
			assert.Equal(t, 15, result.Books)

			var legacy int64
			require.NoError(t, db.Model(&entities.Book{}).Where("title = ?", title).Count(&legacy).Error)
			assert.Zero(t, legacy)
			authors, genres, books := counts(t, db)
			assert.Equal(t, []int64{14, 6, 15}, []int64{authors, genres, books})
		})
	}
}

func TestEnsureSeeded_ResetDisabled(t *testing.T) {
	db := dbtest.Open(t)
	insertLegacyCatalog(t, db, "1984")

	result, err := NewSeeder(db, WithResetCondition(nil)).EnsureSeeded(context.Background())

	require.NoError(t, err)
	assert.False(t, result.Reset)
	assert.True(t, result.Skipped)
	_, _, books := counts(t, db)
	assert.Equal(t, int64(1), books)
}

func TestEnsureSeeded_ResetConditionError(t *testing.T) {
	db := dbtest.Open(t)
	boom := errors.New("boom")

	_, err := NewSeeder(db, WithResetCondition(func(context.Context, *gorm.DB) (bool, error) {
		return false, boom
	})).EnsureSeeded(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestEnsureSeeded_ParentsWithoutBooks(t *testing.T) {
	db := dbtest.Open(t)
	insertLegacyCatalog(t, db, "Go Set a Watchman")
	require.NoError(t, db.Where("1 = 1").Delete(&entities.Book{}).Error)

	result, err := NewSeeder(db).EnsureSeeded(context.Background())

	assert.ErrorIs(t, err, ErrIncompleteCatalog)
	assert.Contains(t, err.Error(), "1 authors, 1 genres")
	assert.False(t, result.Skipped)
	authors, genres, books := counts(t, db)
	assert.Equal(t, []int64{1, 1, 0}, []int64{authors, genres, books})
}

func TestEnsureSeeded_InvalidFixturesWriteNothing(t *testing.T) {
	db := dbtest.Open(t)
	fixtures := DefaultFixtures()
	fixtures.Books = append(fixtures.Books, book("Orphan", "nobody", "Classic", 2000, "0000000000", 1))

	_, err := NewSeeder(db, WithFixtures(fixtures)).EnsureSeeded(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nobody")
	authors, genres, books := counts(t, db)
	assert.Equal(t, []int64{0, 0, 0}, []int64{authors, genres, books})
}

func TestLegacyTitles(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	holds, err := LegacyTitles("1984")(ctx, db)
	require.NoError(t, err)
	assert.False(t, holds)

	insertLegacyCatalog(t, db, "1984")

	holds, err = LegacyTitles("1984")(ctx, db)
	require.NoError(t, err)
	assert.True(t, holds)

	holds, err = LegacyTitles("1985")(ctx, db)
	require.NoError(t, err)
	assert.False(t, holds)

	holds, err = LegacyTitles()(ctx, db)
	require.NoError(t, err)
	assert.False(t, holds)
}

func TestDefaultFixtures(t *testing.T) {
	f := DefaultFixtures()
	assert.Len(t, f.Authors, 14)
	assert.Len(t, f.Genres, 6)
	assert.Len(t, f.Books, 15)
}
