// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces (internal/http/stores.go)
//
//   - AuthorStore: author CRUD with cascading delete (database/authors)
//   - GenreStore: genre CRUD with cascading delete (database/genres)
//   - BookStore: book CRUD and filtered listing (database/books)
//   - OptionsStore: author and genre filter choices (database/filters)
//   - Pinger: store reachability for /health (database.Database)
//
// ## Metrics Interfaces
//
//   - Counter: record counts exported as bibl_catalog_records (internal/metrics)
//
// # Adding a New Entity
//
//  1. Add the model to internal/entities and to database.Migrate
//  2. Create internal/database/<entity>/ with a Repository
//  3. Define its store interface in internal/http/stores.go
//  4. Add a compile-time check to checks.go
package interfaces
