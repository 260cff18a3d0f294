package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/mrlokans/bibl/internal/entities"
)

type GenresController struct {
	store GenreStore
}

func NewGenresController(store GenreStore) *GenresController {
	return &GenresController{store: store}
}

type genreRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type genreResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func newGenreResponse(g entities.Genre) genreResponse {
	return genreResponse{ID: g.ID, Name: g.Name, Description: g.Description}
}

// List returns all genres
// GET /api/genres
func (gc *GenresController) List(c *gin.Context) {
	genres, err := gc.store.List(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list genres")
		return
	}
	c.JSON(http.StatusOK, lo.Map(genres, func(g entities.Genre, _ int) genreResponse {
		return newGenreResponse(g)
	}))
}

// Get returns a single genre
// GET /api/genres/:id
func (gc *GenresController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	genre, err := gc.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "genre", "get genre")
		return
	}
	c.JSON(http.StatusOK, newGenreResponse(*genre))
}

// Create adds a new genre
// POST /api/genres
func (gc *GenresController) Create(c *gin.Context) {
	var req genreRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := gc.store.Create(c.Request.Context(), &entities.Genre{Name: req.Name, Description: req.Description})
	if err != nil {
		respondStoreError(c, err, "genre", "create genre")
		return
	}
	respondCreated(c, newGenreResponse(*created))
}

// Update replaces a genre's name and description
// PUT /api/genres/:id
func (gc *GenresController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req genreRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := gc.store.Update(c.Request.Context(), id, &entities.Genre{Name: req.Name, Description: req.Description})
	if err != nil {
		respondStoreError(c, err, "genre", "update genre")
		return
	}
	c.JSON(http.StatusOK, newGenreResponse(*updated))
}

// Delete removes a genre together with every book in it
// DELETE /api/genres/:id
func (gc *GenresController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	removed, err := gc.store.Delete(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "genre", "delete genre")
		return
	}
	respondSuccess(c, "genre deleted", gin.H{"removed_books": removed})
}
