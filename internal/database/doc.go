// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup with bounded retry
//	├── migrate.go       # Schema migration and version record
//	├── errors.go        # NotFound / ConstraintViolation / Validation / Connectivity
//	├── validate.go      # Struct-tag validation of entities
//	├── authors/         # Author CRUD, cascading delete
//	├── genres/          # Genre CRUD, cascading delete
//	├── books/           # Book CRUD, filtered listing
//	├── filters/         # Book search predicates and filter option lists
//	├── seed/            # Idempotent reference data loading
//	└── dbtest/          # In-memory SQLite for tests
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	authorsRepo := authors.NewRepository(db.DB)
//	booksRepo := books.NewRepository(db.DB)
//
//	list, err := booksRepo.List(ctx, filters.BookFilter{Title: "gatsby"})
//	removed, err := authorsRepo.Delete(ctx, authorID) // removed = cascaded books
//
// # Errors
//
// Repositories and option readers pass every storage error through
// TranslateError. Storage rejections are wrapped with ErrConstraintViolation,
// missing rows map to ErrNotFound and rejected input is a *ValidationError
// (errors.Is(err, ErrValidation)). Anything else, such as a cancelled context
// or a dropped connection, is returned unchanged so errors.Is still sees the
// cause.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Implement the required interface from internal/http/stores.go
//  5. Add compile-time interface check in internal/interfaces/checks.go
package database
