package filters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bibl/internal/database"
	"github.com/mrlokans/bibl/internal/database/dbtest"
	"github.com/mrlokans/bibl/internal/database/filters"
	"github.com/mrlokans/bibl/internal/entities"
)

func TestOptions_AuthorOptions(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	born := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, a := range []entities.Author{
		{FirstName: "George", LastName: "Orwell", BirthDate: born, Country: "United Kingdom"},
		{FirstName: "Jane", LastName: "Austen", BirthDate: born, Country: "United Kingdom"},
		{FirstName: "Charlotte", LastName: "Bronte", BirthDate: born, Country: "United Kingdom"},
	} {
		require.NoError(t, db.Create(&a).Error)
	}

	options, err := filters.NewOptions(db).AuthorOptions(ctx)
	require.NoError(t, err)

	require.Len(t, options, 4)
	assert.True(t, options[0].IsAll())
	assert.Equal(t, "All", options[0].Name)

	names := []string{options[1].Name, options[2].Name, options[3].Name}
	assert.Equal(t, []string{"Austen Jane", "Bronte Charlotte", "Orwell George"}, names)
	for _, o := range options[1:] {
		assert.NotNil(t, o.ID)
	}
}

func TestOptions_GenreOptions(t *testing.T) {
	db := dbtest.Open(t)

	for _, name := range []string{"Fantasy", "Classic", "Dystopia"} {
		require.NoError(t, db.Create(&entities.Genre{Name: name}).Error)
	}

	options, err := filters.GenreOptions(context.Background(), db)
	require.NoError(t, err)

	require.Len(t, options, 4)
	assert.Nil(t, options[0].ID)
	assert.Equal(t, "Classic", options[1].Name)
	assert.Equal(t, "Dystopia", options[2].Name)
	assert.Equal(t, "Fantasy", options[3].Name)
}

func TestOptions_EmptyCatalogStillOffersAll(t *testing.T) {
	db := dbtest.Open(t)

	options, err := filters.AuthorOptions(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, []entities.FilterOption{entities.AllOption()}, options)
}

func TestOptions_StorageErrorsKeepCause(t *testing.T) {
	db := dbtest.Open(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	options := filters.NewOptions(db)

	_, err := options.AuthorOptions(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, database.ErrNotFound)
	assert.NotErrorIs(t, err, database.ErrConstraintViolation)

	_, err = options.GenreOptions(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
