package http

import "github.com/mrlokans/bibl/internal/metrics"

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	Authors AuthorStore
	Genres  GenreStore
	Books   BookStore
	Options OptionsStore

	// Health checks the store on /health. nil reports "not configured".
	Health Pinger

	// Metrics enables request instrumentation and /metrics when set.
	Metrics *metrics.Metrics

	// Application info
	Version string
}
