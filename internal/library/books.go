package library

import (
	"database/sql"
	"fmt"

	"github.com/studiowebux/libro/internal/types"
)

// getOrAddWriter resolves a writer name to its row id, creating the row on
// first sight. Runs inside the caller's transaction so multi-writer inserts
// stay atomic.
func getOrAddWriter(tx *sql.Tx, name string, wt types.WriterType) (int64, error) {
	var id int64
	err := tx.QueryRow(
		"SELECT id FROM writers WHERE name = ? AND type = ?",
		name, wt.String(),
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up writer %q: %w", name, err)
	}

	res, err := tx.Exec(
		"INSERT INTO writers (name, type) VALUES (?, ?)",
		name, wt.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert writer %q: %w", name, err)
	}
	return res.LastInsertId()
}

func linkBookWriter(tx *sql.Tx, bookID, writerID int64, wt types.WriterType) error {
	_, err := tx.Exec(
		"INSERT INTO book_writers (book_id, writer_id, type) VALUES (?, ?, ?)",
		bookID, writerID, wt.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to link writer to book: %w", err)
	}
	return nil
}

// AddBook inserts a book together with its author and translator links in a
// single transaction and returns the new book id.
func (m *Manager) AddBook(book types.NewBook) (int64, error) {
	if err := validateNonEmpty(book.Title, "title"); err != nil {
		return 0, err
	}
	if len(book.Authors) == 0 {
		return 0, fmt.Errorf("at least one author is required")
	}
	if book.Pages != nil {
		if err := validatePages(*book.Pages); err != nil {
			return 0, err
		}
	}
	if book.PubYear != nil {
		if err := validateYear(*book.PubYear); err != nil {
			return 0, err
		}
	}

	tx, err := m.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO books (title, pages, pub_year, genre) VALUES (?, ?, ?, ?)",
		book.Title, book.Pages, book.PubYear, book.Genre,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert book: %w", err)
	}
	bookID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, name := range book.Authors {
		writerID, err := getOrAddWriter(tx, name, types.WriterAuthor)
		if err != nil {
			return 0, err
		}
		if err := linkBookWriter(tx, bookID, writerID, types.WriterAuthor); err != nil {
			return 0, err
		}
	}
	for _, name := range book.Translators {
		writerID, err := getOrAddWriter(tx, name, types.WriterTranslator)
		if err != nil {
			return 0, err
		}
		if err := linkBookWriter(tx, bookID, writerID, types.WriterTranslator); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit book: %w", err)
	}
	return bookID, nil
}

// UpdateBook replaces the book row's fields. Writer links are left alone.
func (m *Manager) UpdateBook(bookID int64, updates types.Book) error {
	if err := validateNonEmpty(updates.Title, "title"); err != nil {
		return err
	}
	if updates.Pages != nil {
		if err := validatePages(*updates.Pages); err != nil {
			return err
		}
	}
	if updates.PubYear != nil {
		if err := validateYear(*updates.PubYear); err != nil {
			return err
		}
	}

	res, err := m.db.Exec(
		"UPDATE books SET title = ?, pages = ?, pub_year = ?, genre = ? WHERE id = ?",
		updates.Title, updates.Pages, updates.PubYear, updates.Genre, bookID,
	)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("book %d: %w", bookID, ErrBookNotFound)
	}
	return nil
}

// DeleteBook removes a book and its writer links. It refuses to delete a
// book that still has reviews; the caller must delete those first.
func (m *Manager) DeleteBook(bookID int64) error {
	var reviewCount int
	err := m.db.QueryRow(
		"SELECT COUNT(*) FROM reviews WHERE book_id = ?", bookID,
	).Scan(&reviewCount)
	if err != nil {
		return fmt.Errorf("failed to count reviews: %w", err)
	}
	if reviewCount > 0 {
		return fmt.Errorf("book %d has %d review(s): %w", bookID, reviewCount, ErrHasReviews)
	}

	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM book_writers WHERE book_id = ?", bookID); err != nil {
		return fmt.Errorf("failed to delete writer links: %w", err)
	}

	res, err := tx.Exec("DELETE FROM books WHERE id = ?", bookID)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("book %d: %w", bookID, ErrBookNotFound)
	}

	return tx.Commit()
}

// SetBookWriters replaces a book's writer links with the given author and
// translator names, resolving or creating writer rows as needed.
func (m *Manager) SetBookWriters(bookID int64, authors, translators []string) error {
	if len(authors) == 0 {
		return fmt.Errorf("at least one author is required")
	}

	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM book_writers WHERE book_id = ?", bookID); err != nil {
		return fmt.Errorf("failed to clear writer links: %w", err)
	}

	for _, name := range authors {
		writerID, err := getOrAddWriter(tx, name, types.WriterAuthor)
		if err != nil {
			return err
		}
		if err := linkBookWriter(tx, bookID, writerID, types.WriterAuthor); err != nil {
			return err
		}
	}
	for _, name := range translators {
		writerID, err := getOrAddWriter(tx, name, types.WriterTranslator)
		if err != nil {
			return err
		}
		if err := linkBookWriter(tx, bookID, writerID, types.WriterTranslator); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetBooks returns books matching the filter, each joined with its writers
// and reviews, ordered by id.
func (m *Manager) GetBooks(filter types.BookFilter) ([]types.ExtendedBook, error) {
	query := "SELECT id, title, pages, pub_year, genre FROM books"
	var args []any
	switch {
	case filter.ID != nil:
		query += " WHERE id = ?"
		args = append(args, *filter.ID)
	case filter.Year != nil:
		query += " WHERE pub_year = ?"
		args = append(args, *filter.Year)
	}
	query += " ORDER BY id"

	rows, err := m.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}
	defer rows.Close()

	var books []types.Book
	for rows.Next() {
		var b types.Book
		var id int64
		var pages, pubYear sql.NullInt64
		if err := rows.Scan(&id, &b.Title, &pages, &pubYear, &b.Genre); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		b.ID = &id
		if pages.Valid {
			p := int(pages.Int64)
			b.Pages = &p
		}
		if pubYear.Valid {
			y := int(pubYear.Int64)
			b.PubYear = &y
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	extended := make([]types.ExtendedBook, 0, len(books))
	for _, b := range books {
		writers, err := m.GetBookWriters(*b.ID)
		if err != nil {
			return nil, err
		}
		var authors, translators []types.Writer
		for _, w := range writers {
			if w.Type == types.WriterAuthor {
				authors = append(authors, w)
			} else {
				translators = append(translators, w)
			}
		}

		reviews, err := m.GetReviews(*b.ID)
		if err != nil {
			return nil, err
		}

		extended = append(extended, types.ExtendedBook{
			Book:        b,
			Authors:     authors,
			Translators: translators,
			Reviews:     reviews,
		})
	}

	return extended, nil
}

// GetBookWriters returns all writers linked to a book, ordered by type then
// name so authors come before translators.
func (m *Manager) GetBookWriters(bookID int64) ([]types.Writer, error) {
	rows, err := m.db.Query(`
		SELECT w.id, w.name, w.type
		FROM writers w
		JOIN book_writers bw ON w.id = bw.writer_id
		WHERE bw.book_id = ?
		ORDER BY w.type, w.name`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to load writers: %w", err)
	}
	defer rows.Close()

	var writers []types.Writer
	for rows.Next() {
		var id int64
		var name, typeStr string
		if err := rows.Scan(&id, &name, &typeStr); err != nil {
			return nil, fmt.Errorf("failed to scan writer: %w", err)
		}
		wt, err := types.ParseWriterType(typeStr)
		if err != nil {
			return nil, err
		}
		writers = append(writers, types.Writer{ID: &id, Name: name, Type: wt})
	}
	return writers, rows.Err()
}
