package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/mrlokans/bibl/internal/database/filters"
	"github.com/mrlokans/bibl/internal/entities"
)

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

type bookRequest struct {
	Title           string `json:"title"`
	ISBN            string `json:"isbn"`
	PublishYear     int    `json:"publish_year"`
	QuantityInStock int    `json:"quantity_in_stock"`
	AuthorID        uint   `json:"author_id"`
	GenreID         uint   `json:"genre_id"`
}

func (r bookRequest) toEntity() *entities.Book {
	return &entities.Book{
		Title:           r.Title,
		ISBN:            r.ISBN,
		PublishYear:     r.PublishYear,
		QuantityInStock: r.QuantityInStock,
		AuthorID:        r.AuthorID,
		GenreID:         r.GenreID,
	}
}

type bookResponse struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	ISBN            string `json:"isbn"`
	PublishYear     int    `json:"publish_year"`
	QuantityInStock int    `json:"quantity_in_stock"`
	AuthorID        uint   `json:"author_id"`
	AuthorName      string `json:"author_name"`
	GenreID         uint   `json:"genre_id"`
	GenreName       string `json:"genre_name"`
}

func newBookResponse(b entities.Book) bookResponse {
	return bookResponse{
		ID:              b.ID,
		Title:           b.Title,
		ISBN:            b.ISBN,
		PublishYear:     b.PublishYear,
		QuantityInStock: b.QuantityInStock,
		AuthorID:        b.AuthorID,
		AuthorName:      b.AuthorFullName(),
		GenreID:         b.GenreID,
		GenreName:       b.GenreName(),
	}
}

// List returns books matching the optional title search and author/genre filters
// GET /api/books?q=&author_id=&genre_id=
func (bc *BooksController) List(c *gin.Context) {
	authorID, err := filters.ParseOptionID(c.Query("author_id"))
	if err != nil {
		respondBadRequest(c, "invalid author_id")
		return
	}
	genreID, err := filters.ParseOptionID(c.Query("genre_id"))
	if err != nil {
		respondBadRequest(c, "invalid genre_id")
		return
	}

	books, err := bc.store.List(c.Request.Context(), filters.BookFilter{
		Title:    c.Query("q"),
		AuthorID: authorID,
		GenreID:  genreID,
	})
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, lo.Map(books, func(b entities.Book, _ int) bookResponse {
		return newBookResponse(b)
	}))
}

// Get returns a single book
// GET /api/books/:id
func (bc *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "book", "get book")
		return
	}
	c.JSON(http.StatusOK, newBookResponse(*book))
}

// Create adds a new book
// POST /api/books
func (bc *BooksController) Create(c *gin.Context) {
	var req bookRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := bc.store.Create(c.Request.Context(), req.toEntity())
	if err != nil {
		respondStoreError(c, err, "book", "create book")
		return
	}
	respondCreated(c, newBookResponse(*created))
}

// Update replaces a book's fields
// PUT /api/books/:id
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req bookRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := bc.store.Update(c.Request.Context(), id, req.toEntity())
	if err != nil {
		respondStoreError(c, err, "book", "update book")
		return
	}
	c.JSON(http.StatusOK, newBookResponse(*updated))
}

// Delete removes a book
// DELETE /api/books/:id
func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "book", "delete book")
		return
	}
	respondSuccess(c, "book deleted", nil)
}
