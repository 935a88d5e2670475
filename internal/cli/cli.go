// Package cli implements the one-shot command interface: add, browse,
// review, and report without entering the TUI.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/studiowebux/libro/internal/library"
	"github.com/studiowebux/libro/internal/report"
	"github.com/studiowebux/libro/internal/types"
)

// promptFor reads one line from stdin for a missing field
func promptFor(name string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", name)
	reader := bufio.NewReader(os.Stdin)
	value, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// splitNames parses a comma-separated name list, trimming whitespace and
// dropping empty entries.
func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// AddOptions contains flag values for the add subcommand. Empty required
// fields are prompted for interactively.
type AddOptions struct {
	Title       string
	Authors     string // comma-separated
	Translators string // comma-separated
	Genre       string
	Pages       int // 0 means unset
	Year        int // 0 means unset
}

// Add creates a book from flags, prompting for missing required fields
func Add(mgr *library.Manager, opts AddOptions, out io.Writer) error {
	var err error
	if opts.Title == "" {
		if opts.Title, err = promptFor("Title"); err != nil {
			return err
		}
	}
	if opts.Authors == "" {
		if opts.Authors, err = promptFor("Authors (comma-separated)"); err != nil {
			return err
		}
	}
	if opts.Genre == "" {
		if opts.Genre, err = promptFor("Genre"); err != nil {
			return err
		}
	}

	book := types.NewBook{
		Title:       strings.TrimSpace(opts.Title),
		Authors:     splitNames(opts.Authors),
		Translators: splitNames(opts.Translators),
		Genre:       strings.TrimSpace(opts.Genre),
	}
	if opts.Pages > 0 {
		book.Pages = &opts.Pages
	}
	if opts.Year > 0 {
		book.PubYear = &opts.Year
	}

	id, err := mgr.AddBook(book)
	if err != nil {
		return fmt.Errorf("failed to add book: %w", err)
	}
	fmt.Fprintf(out, "Added book #%d: %s\n", id, book.Title)
	return nil
}

// BrowseOptions contains flag values for the browse subcommand
type BrowseOptions struct {
	ID     int64  // 0 means all
	Year   int    // 0 means any
	Query  string // substring filter, empty means none
	Output string // text, json, yaml
}

// Browse lists books in the requested output format
func Browse(mgr *library.Manager, opts BrowseOptions, out io.Writer) error {
	filter := types.BookFilter{}
	if opts.ID > 0 {
		filter.ID = &opts.ID
	}
	if opts.Year > 0 {
		filter.Year = &opts.Year
	}

	books, err := mgr.GetBooks(filter)
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}
	if opts.Query != "" {
		books = filterByQuery(books, opts.Query)
	}

	switch opts.Output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(books)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(books)
	case "", "text":
		writeBookTable(out, books)
		return nil
	default:
		return fmt.Errorf("unknown output format: %q", opts.Output)
	}
}

// filterByQuery keeps books whose title, author, genre, or review text
// contains the query, case-insensitively.
func filterByQuery(books []types.ExtendedBook, query string) []types.ExtendedBook {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return books
	}
	var matched []types.ExtendedBook
	for _, b := range books {
		if bookMatches(b, query) {
			matched = append(matched, b)
		}
	}
	return matched
}

func bookMatches(b types.ExtendedBook, query string) bool {
	if strings.Contains(strings.ToLower(b.Book.Title), query) {
		return true
	}
	for _, a := range b.Authors {
		if strings.Contains(strings.ToLower(a.Name), query) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(b.Book.Genre), query) {
		return true
	}
	for _, r := range b.Reviews {
		if strings.Contains(strings.ToLower(r.Text), query) {
			return true
		}
	}
	return false
}

func writeBookTable(out io.Writer, books []types.ExtendedBook) {
	if len(books) == 0 {
		fmt.Fprintln(out, "No books found")
		return
	}
	fmt.Fprintf(out, "%-4s %-30s %-20s %-10s %s\n", "ID", "TITLE", "AUTHORS", "GENRE", "REVIEWS")
	for _, b := range books {
		id := "-"
		if b.Book.ID != nil {
			id = strconv.FormatInt(*b.Book.ID, 10)
		}
		names := make([]string, 0, len(b.Authors))
		for _, a := range b.Authors {
			names = append(names, a.Name)
		}
		fmt.Fprintf(out, "%-4s %-30s %-20s %-10s %d\n",
			id, b.Book.Title, strings.Join(names, ", "), b.Book.Genre, len(b.Reviews))
	}
}

// ReviewOptions contains flag values for the review subcommand
type ReviewOptions struct {
	BookID int64
	Rating int
	Date   string // YYYY-MM-DD, empty means today
	Text   string // empty reads from stdin
}

// Review attaches a review to a book. Empty text is read from stdin so a
// longer review can be piped in.
func Review(mgr *library.Manager, opts ReviewOptions, in io.Reader, out io.Writer) error {
	if opts.BookID <= 0 {
		return fmt.Errorf("a book id is required")
	}

	text := opts.Text
	if text == "" {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read review text: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}

	review := types.NewReview{
		BookID: opts.BookID,
		Rating: opts.Rating,
		Text:   text,
	}
	if opts.Date != "" {
		date, err := time.Parse("2006-01-02", opts.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", opts.Date)
		}
		review.DateRead = &date
	}

	id, err := mgr.AddReview(review)
	if err != nil {
		return fmt.Errorf("failed to add review: %w", err)
	}
	fmt.Fprintf(out, "Added review #%d to book #%d\n", id, opts.BookID)
	return nil
}

// Report prints one of the report views: authors, years, stats, or recent
func Report(mgr *library.Manager, view string, out io.Writer) error {
	books, err := mgr.GetBooks(types.BookFilter{})
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}

	switch view {
	case "", "authors":
		fmt.Fprintln(out, report.FormatAuthorStats(books))
	case "years":
		fmt.Fprintln(out, report.FormatYearChart(books))
	case "stats":
		fmt.Fprintln(out, report.FormatReadingStats(books))
	case "recent":
		for _, b := range report.RecentBooks(books, 10) {
			names := make([]string, 0, len(b.Authors))
			for _, a := range b.Authors {
				names = append(names, a.Name)
			}
			fmt.Fprintf(out, "%-30s %s\n", b.Book.Title, strings.Join(names, ", "))
		}
	default:
		return fmt.Errorf("unknown report view: %q (authors, years, stats, recent)", view)
	}
	return nil
}
