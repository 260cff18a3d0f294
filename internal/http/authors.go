package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/mrlokans/bibl/internal/database"
	"github.com/mrlokans/bibl/internal/entities"
)

type AuthorsController struct {
	store AuthorStore
}

func NewAuthorsController(store AuthorStore) *AuthorsController {
	return &AuthorsController{store: store}
}

type authorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	Country   string `json:"country"`
}

// toEntity parses the request. A malformed birth date is reported as a field error.
func (r authorRequest) toEntity() (*entities.Author, *database.ValidationError) {
	author := &entities.Author{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Country:   r.Country,
	}
	if raw := strings.TrimSpace(r.BirthDate); raw != "" {
		born, err := time.Parse(entities.BirthDateLayout, raw)
		if err != nil {
			return nil, database.NewValidationError("birth_date", "date", "birth_date must be a date in YYYY-MM-DD format")
		}
		author.BirthDate = born
	}
	return author, nil
}

type authorResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
	Country   string `json:"country"`
}

func newAuthorResponse(a entities.Author) authorResponse {
	return authorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		FullName:  a.FullName(),
		BirthDate: a.BirthDate.Format(entities.BirthDateLayout),
		Country:   a.Country,
	}
}

// List returns all authors
// GET /api/authors
func (ac *AuthorsController) List(c *gin.Context) {
	authors, err := ac.store.List(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.JSON(http.StatusOK, lo.Map(authors, func(a entities.Author, _ int) authorResponse {
		return newAuthorResponse(a)
	}))
}

// Get returns a single author
// GET /api/authors/:id
func (ac *AuthorsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := ac.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "author", "get author")
		return
	}
	c.JSON(http.StatusOK, newAuthorResponse(*author))
}

// Create adds a new author
// POST /api/authors
func (ac *AuthorsController) Create(c *gin.Context) {
	var req authorRequest
	if !bindJSON(c, &req) {
		return
	}
	author, verr := req.toEntity()
	if verr != nil {
		respondValidation(c, verr.Fields)
		return
	}

	created, err := ac.store.Create(c.Request.Context(), author)
	if err != nil {
		respondStoreError(c, err, "author", "create author")
		return
	}
	respondCreated(c, newAuthorResponse(*created))
}

// Update replaces an author's fields
// PUT /api/authors/:id
func (ac *AuthorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req authorRequest
	if !bindJSON(c, &req) {
		return
	}
	author, verr := req.toEntity()
	if verr != nil {
		respondValidation(c, verr.Fields)
		return
	}

	updated, err := ac.store.Update(c.Request.Context(), id, author)
	if err != nil {
		respondStoreError(c, err, "author", "update author")
		return
	}
	c.JSON(http.StatusOK, newAuthorResponse(*updated))
}

// Delete removes an author together with all of the author's books
// DELETE /api/authors/:id
func (ac *AuthorsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	removed, err := ac.store.Delete(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "author", "delete author")
		return
	}
	respondSuccess(c, "author deleted", gin.H{"removed_books": removed})
}
