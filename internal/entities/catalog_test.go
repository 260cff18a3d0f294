package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthor_Normalize(t *testing.T) {
	a := Author{
		FirstName: "  Jane ",
		LastName:  "Austen  ",
		Country:   " United Kingdom",
		BirthDate: time.Date(1775, 12, 16, 15, 30, 0, 0, time.FixedZone("X", 3600)),
	}
	a.Normalize()

	assert.Equal(t, "Jane", a.FirstName)
	assert.Equal(t, "Austen", a.LastName)
	assert.Equal(t, "United Kingdom", a.Country)
	assert.Equal(t, time.Date(1775, 12, 16, 0, 0, 0, 0, time.UTC), a.BirthDate)
}

func TestAuthor_Names(t *testing.T) {
	a := Author{FirstName: "F. Scott", LastName: "Fitzgerald"}
	assert.Equal(t, "F. Scott Fitzgerald", a.FullName())
	assert.Equal(t, "Fitzgerald F. Scott", a.SortName())
}

func TestGenre_Normalize(t *testing.T) {
	t.Run("blank description becomes nil", func(t *testing.T) {
		blank := "   "
		g := Genre{Name: " Fantasy ", Description: &blank}
		g.Normalize()
		assert.Equal(t, "Fantasy", g.Name)
		assert.Nil(t, g.Description)
	})

	t.Run("description is trimmed", func(t *testing.T) {
		desc := " Fantasy works "
		g := Genre{Name: "Fantasy", Description: &desc}
		g.Normalize()
		if assert.NotNil(t, g.Description) {
			assert.Equal(t, "Fantasy works", *g.Description)
		}
	})
}

func TestBook_RelationNames(t *testing.T) {
	b := Book{Title: " The Hobbit ", ISBN: " 9780547928227 "}
	b.Normalize()
	assert.Equal(t, "The Hobbit", b.Title)
	assert.Equal(t, "9780547928227", b.ISBN)
	assert.Empty(t, b.AuthorFullName())
	assert.Empty(t, b.GenreName())

	b.Author = &Author{FirstName: "J.R.R.", LastName: "Tolkien"}
	b.Genre = &Genre{Name: "Fantasy"}
	assert.Equal(t, "J.R.R. Tolkien", b.AuthorFullName())
	assert.Equal(t, "Fantasy", b.GenreName())
}

func TestFilterOption(t *testing.T) {
	all := AllOption()
	assert.True(t, all.IsAll())
	assert.Equal(t, "All", all.Name)

	id := uint(3)
	assert.False(t, FilterOption{ID: &id, Name: "Orwell George"}.IsAll())
}
