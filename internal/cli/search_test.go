package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bibl/internal/config"
	"github.com/mrlokans/bibl/internal/entities"
)

func TestSearchCommand_Filter(t *testing.T) {
	cmd := NewSearchCommand(&config.Config{})
	require.NoError(t, cmd.ParseFlags([]string{"-q", "gatsby", "-author", "3", "-genre", "all"}))

	filter, err := cmd.Filter()

	require.NoError(t, err)
	assert.Equal(t, "gatsby", filter.Title)
	require.NotNil(t, filter.AuthorID)
	assert.Equal(t, uint(3), *filter.AuthorID)
	assert.Nil(t, filter.GenreID)
}

func TestSearchCommand_InvalidFilter(t *testing.T) {
	cmd := NewSearchCommand(&config.Config{})
	require.NoError(t, cmd.ParseFlags([]string{"-genre", "fantasy"}))

	_, err := cmd.Filter()

	assert.ErrorContains(t, err, "-genre")
}

func TestSeedCommand_Flags(t *testing.T) {
	cfg := &config.Config{Seed: config.Seed{Enabled: true, LegacyReset: true}}

	cmd := NewSeedCommand(cfg)
	require.NoError(t, cmd.ParseFlags(nil))
	assert.False(t, cmd.NoLegacyReset)

	cmd = NewSeedCommand(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"-no-legacy-reset"}))
	assert.True(t, cmd.NoLegacyReset)
}

func TestPrintBooks(t *testing.T) {
	var buf bytes.Buffer
	err := PrintBooks(&buf, []entities.Book{{
		ID: 1, Title: "The Hobbit", ISBN: "9780547928227", PublishYear: 1937, QuantityInStock: 8,
		Author: &entities.Author{FirstName: "J.R.R.", LastName: "Tolkien"},
		Genre:  &entities.Genre{Name: "Fantasy"},
	}})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "The Hobbit")
	assert.Contains(t, out, "J.R.R. Tolkien")
	assert.Contains(t, out, "Fantasy")
	assert.Contains(t, out, "1 book(s)")
}
