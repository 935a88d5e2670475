package tui

import (
	"fmt"
	"strings"

	"github.com/studiowebux/libro/internal/types"
)

// addBookFromForm persists a new book, reloads, and selects it by id
func (m *Model) addBookFromForm(title string, authors, translators []string, genre string, pages, pubYear *int) {
	bookID, err := m.libraryMgr.AddBook(types.NewBook{
		Title:       title,
		Authors:     authors,
		Translators: translators,
		Pages:       pages,
		PubYear:     pubYear,
		Genre:       genre,
	})
	if err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to add book: %v", err))
		return
	}

	if err := m.reloadBooks(); err != nil {
		return
	}
	m.selectBookByID(bookID)
	m.setStatusMessage(fmt.Sprintf("Added %q", title))
	m.cancelForm()
}

// updateBookFromForm persists edits to an existing book and its writers
func (m *Model) updateBookFromForm(bookID int64, title string, authors, translators []string, genre string, pages, pubYear *int) {
	err := m.libraryMgr.UpdateBook(bookID, types.Book{
		Title:   title,
		Pages:   pages,
		PubYear: pubYear,
		Genre:   genre,
	})
	if err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to update book: %v", err))
		return
	}
	if err := m.libraryMgr.SetBookWriters(bookID, authors, translators); err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to update writers: %v", err))
		return
	}

	if err := m.reloadBooks(); err != nil {
		return
	}
	m.selectBookByID(bookID)
	m.setStatusMessage(fmt.Sprintf("Updated %q", title))
	m.cancelForm()
}

// selectBookByID points the selection at the book with the given id
func (m *Model) selectBookByID(bookID int64) {
	for i, b := range m.books {
		if b.Book.ID != nil && *b.Book.ID == bookID {
			m.bookIndex = i
			return
		}
	}
}

// deleteSelectedBook runs after the confirmation dialog. Deletion fails
// when the book still has reviews; the error is posted and nothing changes.
func (m *Model) deleteSelectedBook() {
	m.mode = ModeNormal
	book := m.selectedBook()
	if book == nil || book.Book.ID == nil {
		m.setErrorMessage("No book selected")
		m.setScreen(ScreenBookList)
		return
	}

	title := book.Book.Title
	if err := m.libraryMgr.DeleteBook(*book.Book.ID); err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to delete book: %v", err))
		m.goBack()
		return
	}

	if err := m.reloadBooks(); err == nil {
		m.setStatusMessage(fmt.Sprintf("Deleted %q", title))
	}
	m.setScreen(ScreenBookList)
}

// openNewReviewEditor always starts an empty editor, bypassing any existing
// review under the cursor.
func (m *Model) openNewReviewEditor() {
	book := m.selectedBook()
	if book == nil {
		m.setErrorMessage("No book selected")
		return
	}
	if m.screen != ScreenReview {
		m.reviewIndex = 0
		m.setScreen(ScreenReview)
	}
	m.editingReview = nil
	m.reviewEditor = NewEditor()
	m.mode = ModeEdit
}

// saveReviewEditor persists the review editor. Editing an existing review
// keeps its date and rating; a new review defaults to rating 5, read today.
func (m *Model) saveReviewEditor() {
	book := m.selectedBook()
	if book == nil || book.Book.ID == nil {
		m.setErrorMessage("No book selected")
		m.mode = ModeNormal
		return
	}

	text := m.reviewEditor.Text()
	var err error
	if m.editingReview != nil && *m.editingReview < len(book.Reviews) {
		existing := book.Reviews[*m.editingReview]
		err = m.libraryMgr.UpdateReview(*existing.ID, types.Review{
			BookID:   existing.BookID,
			DateRead: existing.DateRead,
			Rating:   existing.Rating,
			Text:     text,
		})
	} else {
		_, err = m.libraryMgr.AddReview(types.NewReview{
			BookID: *book.Book.ID,
			Rating: 5,
			Text:   text,
		})
	}
	if err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to save review: %v", err))
		return
	}

	m.editingReview = nil
	m.reviewEditor = nil
	m.mode = ModeNormal
	if err := m.reloadBooks(); err == nil {
		m.setStatusMessage("Review saved")
	}
}

// deleteSelectedReview removes the review under the cursor and clamps the
// selection into the shortened list.
func (m *Model) deleteSelectedReview() {
	book := m.selectedBook()
	if book == nil || m.reviewIndex >= len(book.Reviews) {
		m.setErrorMessage("No review selected")
		return
	}

	review := book.Reviews[m.reviewIndex]
	if review.ID == nil {
		m.setErrorMessage("Review has no id")
		return
	}
	if err := m.libraryMgr.DeleteReview(*review.ID); err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to delete review: %v", err))
		return
	}

	if err := m.reloadBooks(); err == nil {
		m.setStatusMessage("Review deleted")
	}
}

// joinWriterNames renders writer rows back into a comma-separated list
func joinWriterNames(writers []types.Writer) string {
	names := make([]string, 0, len(writers))
	for _, w := range writers {
		names = append(names, w.Name)
	}
	return strings.Join(names, ", ")
}
