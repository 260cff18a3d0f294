package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bibl/internal/database"
	"github.com/mrlokans/bibl/internal/database/authors"
	"github.com/mrlokans/bibl/internal/database/books"
	"github.com/mrlokans/bibl/internal/database/filters"
	"github.com/mrlokans/bibl/internal/database/genres"
	"github.com/mrlokans/bibl/internal/http"
	"github.com/mrlokans/bibl/internal/metrics"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.AuthorStore = (*authors.Repository)(nil)
var _ http.GenreStore = (*genres.Repository)(nil)
var _ http.BookStore = (*books.Repository)(nil)
var _ http.OptionsStore = (*filters.Options)(nil)
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Metrics
// =============================================================================

var _ metrics.Counter = (*authors.Repository)(nil)
var _ metrics.Counter = (*genres.Repository)(nil)
var _ metrics.Counter = (*books.Repository)(nil)
