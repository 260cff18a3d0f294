package filters

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/mrlokans/bibl/internal/database"
	"github.com/mrlokans/bibl/internal/entities"
)

// Options serves filter option lists from the catalog.
type Options struct {
	db *gorm.DB
}

// NewOptions creates a new filter options reader.
func NewOptions(db *gorm.DB) *Options {
	return &Options{db: db}
}

// AuthorOptions returns "All" followed by every author labelled
// "Last First", ordered by last name then first name.
func (o *Options) AuthorOptions(ctx context.Context) ([]entities.FilterOption, error) {
	return AuthorOptions(ctx, o.db)
}

// GenreOptions returns "All" followed by every genre ordered by name.
func (o *Options) GenreOptions(ctx context.Context) ([]entities.FilterOption, error) {
	return GenreOptions(ctx, o.db)
}

func AuthorOptions(ctx context.Context, db *gorm.DB) ([]entities.FilterOption, error) {
	var authors []entities.Author
	err := db.WithContext(ctx).
		Select("id", "first_name", "last_name").
		Order("last_name ASC").Order("first_name ASC").Order("id ASC").
		Find(&authors).Error
	if err != nil {
		return nil, database.TranslateError(err)
	}

	options := lo.Map(authors, func(a entities.Author, _ int) entities.FilterOption {
		return entities.FilterOption{ID: lo.ToPtr(a.ID), Name: a.SortName()}
	})
	return append([]entities.FilterOption{entities.AllOption()}, options...), nil
}

func GenreOptions(ctx context.Context, db *gorm.DB) ([]entities.FilterOption, error) {
	var genres []entities.Genre
	err := db.WithContext(ctx).
		Select("id", "name").
		Order("name ASC").Order("id ASC").
		Find(&genres).Error
	if err != nil {
		return nil, database.TranslateError(err)
	}

	options := lo.Map(genres, func(g entities.Genre, _ int) entities.FilterOption {
		return entities.FilterOption{ID: lo.ToPtr(g.ID), Name: g.Name}
	})
	return append([]entities.FilterOption{entities.AllOption()}, options...), nil
}

// ParseOptionID converts a submitted option value into a filter id.
// An empty value or "all" (any case) selects the "All" sentinel and returns nil.
func ParseOptionID(value string) (*uint, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, entities.AllOptionName) {
		return nil, nil
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("invalid option id %q", value)
	}
	return lo.ToPtr(uint(id)), nil
}
