// Package filters composes book search predicates and the option lists that
// drive the author and genre filters.
package filters

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/mrlokans/bibl/internal/config"
	"github.com/mrlokans/bibl/internal/database"
)

// BookFilter narrows a book listing. Zero values mean "no constraint":
// an empty (or all-whitespace) Title matches every title, nil IDs match
// every author or genre.
type BookFilter struct {
	Title    string
	AuthorID *uint
	GenreID  *uint
}

// IsEmpty reports whether the filter constrains nothing.
func (f BookFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Title) == "" && f.AuthorID == nil && f.GenreID == nil
}

// Predicate returns the AND of every present predicate for the named gorm
// dialect. The bool is false when no predicate applies.
//
// Title matching is a case-insensitive substring match: ILIKE on postgres,
// UnicodeLowerFunc on both sides of LIKE everywhere else.
func (f BookFilter) Predicate(dialect string) (sq.Sqlizer, bool) {
	var and sq.And

	if search := strings.TrimSpace(f.Title); search != "" {
		and = append(and, titleMatch(dialect, search))
	}
	if f.AuthorID != nil {
		and = append(and, sq.Eq{"books.author_id": *f.AuthorID})
	}
	if f.GenreID != nil {
		and = append(and, sq.Eq{"books.genre_id": *f.GenreID})
	}

	if len(and) == 0 {
		return nil, false
	}
	return and, true
}

func titleMatch(dialect, search string) sq.Sqlizer {
	if dialect == config.DriverPostgres {
		return sq.Expr(`books.title ILIKE ? ESCAPE '\'`, "%"+escapeLike(search)+"%")
	}
	return sq.Expr(
		database.UnicodeLowerFunc+`(books.title) LIKE ? ESCAPE '\'`,
		"%"+escapeLike(strings.ToLower(search))+"%",
	)
}

// ApplyBookFilter adds the filter's predicate to a books query and orders the
// result by title, breaking ties by id.
func ApplyBookFilter(db *gorm.DB, f BookFilter) (*gorm.DB, error) {
	if pred, ok := f.Predicate(db.Dialector.Name()); ok {
		query, args, err := pred.ToSql()
		if err != nil {
			return nil, fmt.Errorf("build book filter: %w", err)
		}
		db = db.Where(query, args...)
	}
	return db.Order("books.title ASC").Order("books.id ASC"), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
