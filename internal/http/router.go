package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	healthController := NewHealthController(cfg.Health, cfg.Version)
	router.GET("/health", healthController.Status)

	api := router.Group("/api")

	authorsController := NewAuthorsController(cfg.Authors)
	api.GET("/authors", authorsController.List)
	api.POST("/authors", authorsController.Create)
	api.GET("/authors/:id", authorsController.Get)
	api.PUT("/authors/:id", authorsController.Update)
	api.DELETE("/authors/:id", authorsController.Delete)

	genresController := NewGenresController(cfg.Genres)
	api.GET("/genres", genresController.List)
	api.POST("/genres", genresController.Create)
	api.GET("/genres/:id", genresController.Get)
	api.PUT("/genres/:id", genresController.Update)
	api.DELETE("/genres/:id", genresController.Delete)

	booksController := NewBooksController(cfg.Books)
	api.GET("/books", booksController.List)
	api.POST("/books", booksController.Create)
	api.GET("/books/:id", booksController.Get)
	api.PUT("/books/:id", booksController.Update)
	api.DELETE("/books/:id", booksController.Delete)

	filtersController := NewFiltersController(cfg.Options)
	api.GET("/filters/authors", filtersController.Authors)
	api.GET("/filters/genres", filtersController.Genres)

	return router
}
