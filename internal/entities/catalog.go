package entities

import (
	"strings"
	"time"
)

// Publish year bounds enforced by validation and the books CHECK constraint.
const (
	MinPublishYear = 1000
	MaxPublishYear = 3000
)

// BirthDateLayout is the wire format of Author.BirthDate.
const BirthDateLayout = "2006-01-02"

type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:100;not null;index:idx_authors_name,priority:2" json:"first_name" validate:"required,max=100"`
	LastName  string    `gorm:"size:100;not null;index:idx_authors_name,priority:1" json:"last_name" validate:"required,max=100"`
	BirthDate time.Time `gorm:"type:date;not null" json:"birth_date" validate:"required"`
	Country   string    `gorm:"size:100;not null" json:"country" validate:"required,max=100"`
	Books     []Book    `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"books,omitempty" validate:"-"`
}

func (Author) TableName() string {
	return "authors"
}

// FullName is the display name used by book listings.
func (a Author) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// SortName is the "Last First" label used by filter option lists.
func (a Author) SortName() string {
	return strings.TrimSpace(a.LastName + " " + a.FirstName)
}

// Normalize trims user-supplied text and truncates the birth date to a calendar day.
func (a *Author) Normalize() {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Country = strings.TrimSpace(a.Country)
	if !a.BirthDate.IsZero() {
		y, m, d := a.BirthDate.Date()
		a.BirthDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
}

type Genre struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null;uniqueIndex:idx_genres_name" json:"name" validate:"required,max=100"`
	Description *string `gorm:"size:500" json:"description,omitempty" validate:"omitempty,max=500"`
	Books       []Book  `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"books,omitempty" validate:"-"`
}

func (Genre) TableName() string {
	return "genres"
}

// Normalize trims the name and stores a blank description as NULL.
func (g *Genre) Normalize() {
	g.Name = strings.TrimSpace(g.Name)
	if g.Description != nil {
		desc := strings.TrimSpace(*g.Description)
		if desc == "" {
			g.Description = nil
		} else {
			g.Description = &desc
		}
	}
}

type Book struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Title           string  `gorm:"size:200;not null;index" json:"title" validate:"required,max=200"`
	ISBN            string  `gorm:"column:isbn;size:20;not null;uniqueIndex:idx_books_isbn" json:"isbn" validate:"required,max=20"`
	PublishYear     int     `gorm:"not null;check:chk_books_publish_year,publish_year >= 1000 AND publish_year <= 3000" json:"publish_year" validate:"gte=1000,lte=3000"`
	QuantityInStock int     `gorm:"not null;check:chk_books_quantity_in_stock,quantity_in_stock >= 0" json:"quantity_in_stock" validate:"gte=0"`
	AuthorID        uint    `gorm:"not null;index" json:"author_id" validate:"required"`
	Author          *Author `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"author,omitempty" validate:"-"`
	GenreID         uint    `gorm:"not null;index" json:"genre_id" validate:"required"`
	Genre           *Genre  `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"genre,omitempty" validate:"-"`
}

func (Book) TableName() string {
	return "books"
}

// Normalize trims the title and ISBN.
func (b *Book) Normalize() {
	b.Title = strings.TrimSpace(b.Title)
	b.ISBN = strings.TrimSpace(b.ISBN)
}

// AuthorFullName returns the loaded author's name, or "" when not preloaded.
func (b Book) AuthorFullName() string {
	if b.Author == nil {
		return ""
	}
	return b.Author.FullName()
}

// GenreName returns the loaded genre's name, or "" when not preloaded.
func (b Book) GenreName() string {
	if b.Genre == nil {
		return ""
	}
	return b.Genre.Name
}
