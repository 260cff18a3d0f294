package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FiltersController struct {
	store OptionsStore
}

func NewFiltersController(store OptionsStore) *FiltersController {
	return &FiltersController{store: store}
}

// Authors returns the author filter choices, "All" first
// GET /api/filters/authors
func (fc *FiltersController) Authors(c *gin.Context) {
	options, err := fc.store.AuthorOptions(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "author options")
		return
	}
	c.JSON(http.StatusOK, options)
}

// Genres returns the genre filter choices, "All" first
// GET /api/filters/genres
func (fc *FiltersController) Genres(c *gin.Context) {
	options, err := fc.store.GenreOptions(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "genre options")
		return
	}
	c.JSON(http.StatusOK, options)
}
