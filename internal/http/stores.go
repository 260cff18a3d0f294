package http

import (
	"context"

	"github.com/mrlokans/bibl/internal/database/filters"
	"github.com/mrlokans/bibl/internal/entities"
)

// This file consolidates the store interfaces used by HTTP controllers.
// Each is satisfied by the matching repository under internal/database.

// AuthorStore provides author CRUD. Delete reports how many books were removed.
type AuthorStore interface {
	List(ctx context.Context) ([]entities.Author, error)
	GetByID(ctx context.Context, id uint) (*entities.Author, error)
	Create(ctx context.Context, author *entities.Author) (*entities.Author, error)
	Update(ctx context.Context, id uint, author *entities.Author) (*entities.Author, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// GenreStore provides genre CRUD. Delete reports how many books were removed.
type GenreStore interface {
	List(ctx context.Context) ([]entities.Genre, error)
	GetByID(ctx context.Context, id uint) (*entities.Genre, error)
	Create(ctx context.Context, genre *entities.Genre) (*entities.Genre, error)
	Update(ctx context.Context, id uint, genre *entities.Genre) (*entities.Genre, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// BookStore provides book CRUD and filtered listing.
type BookStore interface {
	List(ctx context.Context, filter filters.BookFilter) ([]entities.Book, error)
	GetByID(ctx context.Context, id uint) (*entities.Book, error)
	Create(ctx context.Context, book *entities.Book) (*entities.Book, error)
	Update(ctx context.Context, id uint, book *entities.Book) (*entities.Book, error)
	Delete(ctx context.Context, id uint) error
}

// OptionsStore provides the author and genre filter choices.
type OptionsStore interface {
	AuthorOptions(ctx context.Context) ([]entities.FilterOption, error)
	GenreOptions(ctx context.Context) ([]entities.FilterOption, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
