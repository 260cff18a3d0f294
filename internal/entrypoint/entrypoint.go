package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bibl/internal/config"
	"github.com/mrlokans/bibl/internal/database"
	"github.com/mrlokans/bibl/internal/database/authors"
	"github.com/mrlokans/bibl/internal/database/books"
	"github.com/mrlokans/bibl/internal/database/filters"
	"github.com/mrlokans/bibl/internal/database/genres"
	"github.com/mrlokans/bibl/internal/database/seed"
	http_controllers "github.com/mrlokans/bibl/internal/http"
	"github.com/mrlokans/bibl/internal/metrics"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 sends SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// Connect opens and migrates the configured store. A *database.ConnectivityError
// terminates the process.
func Connect(cfg *config.Config) *database.Database {
	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		var connErr *database.ConnectivityError
		if errors.As(err, &connErr) {
			log.Fatalf("Database unavailable (%s): %v", cfg.Database.Redacted(), connErr)
		}
		log.Fatalf("Failed to initialize database: %v", err)
	}
	return db
}

// SeedCatalog runs the idempotent seed with the configured reset behaviour.
func SeedCatalog(ctx context.Context, db *database.Database, cfg config.Seed) (seed.Result, error) {
	var opts []seed.Option
	if !cfg.LegacyReset {
		opts = append(opts, seed.WithResetCondition(nil))
	}
	return seed.NewSeeder(db.DB, opts...).EnsureSeeded(ctx)
}

// NewRouterConfig wires the repositories and metrics for the HTTP adapter.
func NewRouterConfig(db *database.Database, version string) http_controllers.RouterConfig {
	authorsRepo := authors.NewRepository(db.DB)
	genresRepo := genres.NewRepository(db.DB)
	booksRepo := books.NewRepository(db.DB)

	return http_controllers.RouterConfig{
		Authors: authorsRepo,
		Genres:  genresRepo,
		Books:   booksRepo,
		Options: filters.NewOptions(db.DB),
		Health:  db,
		Metrics: metrics.New(map[string]metrics.Counter{
			"authors": authorsRepo,
			"genres":  genresRepo,
			"books":   booksRepo,
		}),
		Version: version,
	}
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting bibl v%s", version)

	db := Connect(cfg)

	if cfg.Seed.Enabled {
		result, err := SeedCatalog(context.Background(), db, cfg.Seed)
		if err != nil {
			db.Close()
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		log.Printf("Catalog %s", result)
	} else {
		log.Printf("Seeding disabled")
	}

	router := http_controllers.NewRouter(NewRouterConfig(db, version))

	Serve(router, cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	})
}
