package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mrlokans/bibl/internal/config"
	"github.com/mrlokans/bibl/internal/database/books"
	"github.com/mrlokans/bibl/internal/database/filters"
	"github.com/mrlokans/bibl/internal/entities"
	"github.com/mrlokans/bibl/internal/entrypoint"
)

// SearchCommand prints the books matching a title search and optional filters.
type SearchCommand struct {
	cfg    *config.Config
	Title  string
	Author string
	Genre  string
	out    io.Writer
}

func NewSearchCommand(cfg *config.Config) *SearchCommand {
	return &SearchCommand{cfg: cfg, out: os.Stdout}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	fs.StringVar(&cmd.Title, "q", "", "Case-insensitive title substring")
	fs.StringVar(&cmd.Author, "author", "", "Author id, or 'all'")
	fs.StringVar(&cmd.Genre, "genre", "", "Genre id, or 'all'")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search [-q text] [-author id] [-genre id]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	return fs.Parse(args)
}

// Filter converts the flags into a book filter.
func (cmd *SearchCommand) Filter() (filters.BookFilter, error) {
	authorID, err := filters.ParseOptionID(cmd.Author)
	if err != nil {
		return filters.BookFilter{}, fmt.Errorf("-author: %w", err)
	}
	genreID, err := filters.ParseOptionID(cmd.Genre)
	if err != nil {
		return filters.BookFilter{}, fmt.Errorf("-genre: %w", err)
	}
	return filters.BookFilter{Title: cmd.Title, AuthorID: authorID, GenreID: genreID}, nil
}

func (cmd *SearchCommand) Run() error {
	filter, err := cmd.Filter()
	if err != nil {
		return err
	}

	db := entrypoint.Connect(cmd.cfg)
	defer db.Close()

	list, err := books.NewRepository(db.DB).List(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("search books: %w", err)
	}
	return PrintBooks(cmd.out, list)
}

// PrintBooks writes a books table.
func PrintBooks(w io.Writer, list []entities.Book) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tGENRE\tYEAR\tISBN\tSTOCK")
	for _, b := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%d\n",
			b.ID, b.Title, b.AuthorFullName(), b.GenreName(), b.PublishYear, b.ISBN, b.QuantityInStock)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d book(s)\n", len(list))
	return err
}
