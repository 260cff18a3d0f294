package seed

import (
	"time"

	"github.com/samber/lo"

	"github.com/mrlokans/bibl/internal/entities"
)

// AuthorFixture is an author to insert, addressed by Key from BookFixture.
type AuthorFixture struct {
	Key    string
	Author entities.Author
}

// GenreFixture is a genre to insert, addressed by Key from BookFixture.
type GenreFixture struct {
	Key   string
	Genre entities.Genre
}

// BookFixture is a book whose author and genre are given by fixture key.
type BookFixture struct {
	AuthorKey string
	GenreKey  string
	Book      entities.Book
}

// Fixtures is a complete reference data set.
type Fixtures struct {
	Authors []AuthorFixture
	Genres  []GenreFixture
	Books   []BookFixture
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func author(key, first, last string, born time.Time, country string) AuthorFixture {
	return AuthorFixture{Key: key, Author: entities.Author{FirstName: first, LastName: last, BirthDate: born, Country: country}}
}

func genre(name, description string) GenreFixture {
	return GenreFixture{Key: name, Genre: entities.Genre{Name: name, Description: lo.ToPtr(description)}}
}

func book(title, authorKey, genreKey string, year int, isbn string, qty int) BookFixture {
	return BookFixture{
		AuthorKey: authorKey,
		GenreKey:  genreKey,
		Book:      entities.Book{Title: title, ISBN: isbn, PublishYear: year, QuantityInStock: qty},
	}
}

// DefaultFixtures returns the reference catalog: 14 authors, 6 genres, 15 books.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Authors: []AuthorFixture{
			author("austen", "Jane", "Austen", date(1775, time.December, 16), "United Kingdom"),
			author("melville", "Herman", "Melville", date(1819, time.August, 1), "United States"),
			author("fitzgerald", "F. Scott", "Fitzgerald", date(1896, time.September, 24), "United States"),
			author("tolstoy", "Leo", "Tolstoy", date(1828, time.September, 9), "Russia"),
			author("dostoevsky", "Fyodor", "Dostoevsky", date(1821, time.November, 11), "Russia"),
			author("salinger", "J.D.", "Salinger", date(1919, time.January, 1), "United States"),
			author("huxley", "Aldous", "Huxley", date(1894, time.July, 26), "United Kingdom"),
			author("tolkien", "J.R.R.", "Tolkien", date(1892, time.January, 3), "United Kingdom"),
			author("bradbury", "Ray", "Bradbury", date(1920, time.August, 22), "United States"),
			author("bronte", "Charlotte", "Bronte", date(1816, time.April, 21), "United Kingdom"),
			author("orwell", "George", "Orwell", date(1903, time.June, 25), "United Kingdom"),
			author("wilde", "Oscar", "Wilde", date(1854, time.October, 16), "Ireland"),
			author("marquez", "Gabriel Garcia", "Marquez", date(1927, time.March, 6), "Colombia"),
			author("coelho", "Paulo", "Coelho", date(1947, time.August, 24), "Brazil"),
		},
		Genres: []GenreFixture{
			genre("Classic", "Classic literature"),
			genre("Fantasy", "Fantasy works"),
			genre("Dystopia", "Dystopian novels"),
			genre("Science Fiction", "Science fiction works"),
			genre("Historical Novel", "Historical fiction"),
			genre("Magical Realism", "Magical realism"),
		},
		Books: []BookFixture{
			book("Pride and Prejudice", "austen", "Classic", 1813, "9780141439518", 5),
			book("Moby-Dick", "melville", "Classic", 1851, "9780142437247", 3),
			book("The Great Gatsby", "fitzgerald", "Classic", 1925, "9780743273565", 6),
			book("War and Peace", "tolstoy", "Historical Novel", 1869, "9780199232765", 4),
			book("Crime and Punishment", "dostoevsky", "Classic", 1866, "9780140449136", 7),
			book("The Catcher in the Rye", "salinger", "Classic", 1951, "9780316769488", 3),
			book("Brave New World", "huxley", "Dystopia", 1932, "9780060850524", 4),
			book("The Hobbit", "tolkien", "Fantasy", 1937, "9780547928227", 8),
			book("Fahrenheit 451", "bradbury", "Science Fiction", 1953, "9781451673319", 5),
			book("The Lord of the Rings", "tolkien", "Fantasy", 1954, "9780544003415", 2),
			book("Jane Eyre", "bronte", "Classic", 1847, "9780141441146", 5),
			book("Animal Farm", "orwell", "Dystopia", 1945, "9780451526342", 6),
			book("The Picture of Dorian Gray", "wilde", "Classic", 1890, "9780141439570", 3),
			book("One Hundred Years of Solitude", "marquez", "Magical Realism", 1967, "9780060883287", 4),
			book("The Alchemist", "coelho", "Classic", 1988, "9780061122415", 9),
		},
	}
}
