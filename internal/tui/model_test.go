package tui

import (
	"testing"
	"time"

	"github.com/studiowebux/libro/internal/types"
)

func TestNewModelInitialState(t *testing.T) {
	m := CreateTestModel(t)

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "screen", m.screen, ScreenBookList)
	AssertModelField(t, "bookIndex", m.bookIndex, 0)
	if len(m.books) != 0 {
		t.Errorf("expected empty book cache, got %d", len(m.books))
	}
}

func TestAddBookFlow(t *testing.T) {
	m := CreateTestModel(t)

	Press(m, "a")
	AssertModelField(t, "screen", m.screen, ScreenAddBook)
	AssertModelField(t, "mode", m.mode, ModeForm)
	AssertModelField(t, "formIndex", m.formIndex, fieldTitle)

	TypeString(m, "Dune")
	Press(m, "tab")
	TypeString(m, "Frank Herbert")
	Press(m, "tab") // translators
	Press(m, "tab") // genre
	Press(m, "enter")
	AssertModelField(t, "mode", m.mode, ModeGenreSelect)
	Press(m, "enter") // pick 소설
	AssertModelField(t, "mode", m.mode, ModeForm)

	Press(m, "ctrl+s")

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "screen", m.screen, ScreenBookList)
	if len(m.books) != 1 {
		t.Fatalf("expected 1 book after save, got %d", len(m.books))
	}
	book := m.books[0]
	AssertModelField(t, "title", book.Book.Title, "Dune")
	AssertModelField(t, "genre", book.Book.Genre, "소설")
	if len(book.Authors) != 1 || book.Authors[0].Name != "Frank Herbert" {
		t.Errorf("unexpected authors: %+v", book.Authors)
	}
	AssertModelField(t, "bookIndex", m.bookIndex, 0)
}

func TestFormValidationOrder(t *testing.T) {
	m := CreateTestModel(t)

	Press(m, "a")
	Press(m, "ctrl+s")
	AssertModelField(t, "error", m.errorMsg, "Title is required")
	AssertModelField(t, "mode", m.mode, ModeForm)

	TypeString(m, "Dune")
	Press(m, "ctrl+s")
	AssertModelField(t, "error", m.errorMsg, "At least one author is required")

	Press(m, "tab")
	TypeString(m, "Frank Herbert")
	Press(m, "ctrl+s")
	AssertModelField(t, "error", m.errorMsg, "Genre is required")
}

func TestFormRejectsUnparseablePages(t *testing.T) {
	m := CreateTestModel(t)

	Press(m, "a")
	TypeString(m, "Dune")
	Press(m, "tab")
	TypeString(m, "Frank Herbert")
	Press(m, "tab") // translators
	Press(m, "tab") // genre
	Press(m, "enter")
	Press(m, "enter")
	Press(m, "tab") // pages
	TypeString(m, "lots")
	Press(m, "ctrl+s")

	AssertModelField(t, "error", m.errorMsg, "Pages must be a number")
	AssertModelField(t, "mode", m.mode, ModeForm)
	if len(m.books) != 0 {
		t.Errorf("invalid form must not persist, got %d books", len(m.books))
	}
}

func TestEditBookFlow(t *testing.T) {
	m := CreateTestModel(t)
	AddTestBook(t, m, types.NewBook{
		Title: "Dune", Authors: []string{"Frank Herbert"}, Genre: "소설",
	})

	Press(m, "e")
	AssertModelField(t, "screen", m.screen, ScreenEditBook)
	AssertModelField(t, "mode", m.mode, ModeForm)
	AssertModelField(t, "seeded title", m.fieldEditor.Text(), "Dune")

	TypeString(m, " Messiah")
	Press(m, "ctrl+s")

	AssertModelField(t, "mode", m.mode, ModeNormal)
	if len(m.books) != 1 {
		t.Fatalf("expected 1 book, got %d", len(m.books))
	}
	AssertModelField(t, "title", m.books[0].Book.Title, "Dune Messiah")
	if len(m.books[0].Authors) != 1 || m.books[0].Authors[0].Name != "Frank Herbert" {
		t.Errorf("authors changed unexpectedly: %+v", m.books[0].Authors)
	}
}

func TestNewReviewFlow(t *testing.T) {
	m := CreateTestModel(t)
	AddTestBook(t, m, types.NewBook{
		Title: "Dune", Authors: []string{"Frank Herbert"}, Genre: "소설",
	})

	Press(m, "v")
	AssertModelField(t, "screen", m.screen, ScreenReview)

	Press(m, "n")
	AssertModelField(t, "mode", m.mode, ModeEdit)

	TypeString(m, "great")
	Press(m, "ctrl+s")

	AssertModelField(t, "mode", m.mode, ModeNormal)
	reviews := m.books[0].Reviews
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
	AssertModelField(t, "text", reviews[0].Text, "great")
	AssertModelField(t, "rating", reviews[0].Rating, 5)
	if reviews[0].DateRead == nil {
		t.Fatal("new review should default to today")
	}
	today := time.Now().Format("2006-01-02")
	AssertModelField(t, "date", reviews[0].DateRead.Format("2006-01-02"), today)
}

func TestEditExistingReviewKeepsRatingAndDate(t *testing.T) {
	m := CreateTestModel(t)
	bookID := AddTestBook(t, m, types.NewBook{
		Title: "Dune", Authors: []string{"Frank Herbert"}, Genre: "소설",
	})
	read := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, err := m.libraryMgr.AddReview(types.NewReview{
		BookID: bookID, DateRead: &read, Rating: 3, Text: "okay",
	}); err != nil {
		t.Fatal(err)
	}
	if err := m.reloadBooks(); err != nil {
		t.Fatal(err)
	}

	Press(m, "v") // open review screen
	Press(m, "v") // edit selected review
	AssertModelField(t, "mode", m.mode, ModeEdit)
	AssertModelField(t, "seeded text", m.reviewEditor.Text(), "okay")

	Press(m, "ctrl+u")
	TypeString(m, "better on reread")
	Press(m, "ctrl+s")

	reviews := m.books[0].Reviews
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
	AssertModelField(t, "text", reviews[0].Text, "better on reread")
	AssertModelField(t, "rating", reviews[0].Rating, 3)
	AssertModelField(t, "date", reviews[0].DateRead.Format("2006-01-02"), "2024-03-01")
}

func TestTypingQInEditModeInserts(t *testing.T) {
	m := CreateTestModel(t)
	AddTestBook(t, m, types.NewBook{
		Title: "Dune", Authors: []string{"Frank Herbert"}, Genre: "소설",
	})

	Press(m, "v")
	Press(m, "n")
	TypeString(m, "quiet")

	AssertModelField(t, "quitting", m.quitting, false)
	AssertModelField(t, "editor text", m.reviewEditor.Text(), "quiet")
}

func TestForceQuitFromEditMode(t *testing.T) {
	m := CreateTestModel(t)
	AddTestBook(t, m, types.NewBook{
		Title: "Dune", Authors: []string{"Frank Herbert"}, Genre: "소설",
	})

	Press(m, "v")
	Press(m, "n")
	Press(m, "ctrl+q")

	AssertModelField(t, "quitting", m.quitting, true)
}

func TestDeleteReviewClampsSelection(t *testing.T) {
	m := CreateTestModel(t)
	bookID := AddTestBook(t, m, types.NewBook{
		Title: "Dune", Authors: []string{"Frank Herbert"}, Genre: "소설",
	})
	for _, text := range []string{"first", "second"} {
		if _, err := m.libraryMgr.AddReview(types.NewReview{
			BookID: bookID, Rating: 4, Text: text,
		}); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.reloadBooks(); err != nil {
		t.Fatal(err)
	}

	Press(m, "v")
	Press(m, "j") // select second review
	AssertModelField(t, "reviewIndex", m.reviewIndex, 1)

	Press(m, "d")
	if len(m.books[0].Reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(m.books[0].Reviews))
	}
	AssertModelField(t, "reviewIndex after shrink", m.reviewIndex, 0)

	Press(m, "d")
	if len(m.books[0].Reviews) != 0 {
		t.Fatalf("expected 0 reviews, got %d", len(m.books[0].Reviews))
	}
	AssertModelField(t, "reviewIndex after empty", m.reviewIndex, 0)
}

func TestDeleteBookClampsSelection(t *testing.T) {
	m := CreateTestModel(t)
	for _, title := range []string{"One", "Two", "Three"} {
		AddTestBook(t, m, types.NewBook{
			Title: title, Authors: []string{"Anon"}, Genre: "기타",
		})
	}

	Press(m, "j")
	Press(m, "j")
	AssertModelField(t, "bookIndex", m.bookIndex, 2)

	Press(m, "d")
	AssertModelField(t, "mode", m.mode, ModeConfirm)
	AssertModelField(t, "screen", m.screen, ScreenConfirmDelete)

	Press(m, "y")
	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "screen", m.screen, ScreenBookList)
	if len(m.books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(m.books))
	}
	AssertModelField(t, "bookIndex", m.bookIndex, 1)
}

func TestDeleteBookWithReviewsRefused(t *testing.T) {
	m := CreateTestModel(t)
	bookID := AddTestBook(t, m, types.NewBook{
		Title: "Dune", Authors: []string{"Frank Herbert"}, Genre: "소설",
	})
	if _, err := m.libraryMgr.AddReview(types.NewReview{
		BookID: bookID, Rating: 5, Text: "keep",
	}); err != nil {
		t.Fatal(err)
	}
	if err := m.reloadBooks(); err != nil {
		t.Fatal(err)
	}

	Press(m, "d")
	Press(m, "y")

	if m.errorMsg == "" {
		t.Error("expected an error banner when deleting a reviewed book")
	}
	if len(m.books) != 1 {
		t.Errorf("book should survive refused delete, got %d books", len(m.books))
	}
}

func TestCancelConfirmKeepsBook(t *testing.T) {
	m := CreateTestModel(t)
	AddTestBook(t, m, types.NewBook{
		Title: "Dune", Authors: []string{"Frank Herbert"}, Genre: "소설",
	})

	Press(m, "d")
	Press(m, "n")

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "screen", m.screen, ScreenBookList)
	if len(m.books) != 1 {
		t.Errorf("cancelled delete removed the book")
	}
}

func TestSearchFlow(t *testing.T) {
	m := CreateTestModel(t)
	AddTestBook(t, m, types.NewBook{
		Title: "Neuromancer", Authors: []string{"William Gibson"}, Genre: "소설",
	})
	AddTestBook(t, m, types.NewBook{
		Title: "Dune", Authors: []string{"Frank Herbert"}, Genre: "소설",
	})

	Press(m, "/")
	AssertModelField(t, "mode", m.mode, ModeSearch)
	AssertModelField(t, "screen", m.screen, ScreenSearch)

	TypeString(m, "dune")
	Press(m, "enter")
	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "query", m.searchQuery, "dune")

	results := m.searchResults()
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	Press(m, "enter")
	AssertModelField(t, "screen", m.screen, ScreenReview)
	AssertModelField(t, "selected title", m.books[m.bookIndex].Book.Title, "Dune")
}

func TestSearchCancelKeepsOldQuery(t *testing.T) {
	m := CreateTestModel(t)
	m.searchQuery = "herbert"

	Press(m, "/")
	TypeString(m, " extra")
	Press(m, "esc")

	AssertModelField(t, "mode", m.mode, ModeNormal)
	AssertModelField(t, "query", m.searchQuery, "herbert")
}

func TestSearchScreenEscResetsSearch(t *testing.T) {
	m := CreateTestModel(t)
	AddTestBook(t, m, types.NewBook{
		Title: "Neuromancer", Authors: []string{"William Gibson"}, Genre: "소설",
	})
	AddTestBook(t, m, types.NewBook{
		Title: "Dune", Authors: []string{"Frank Herbert"}, Genre: "소설",
	})

	Press(m, "/")
	TypeString(m, "dune")
	Press(m, "enter")
	Press(m, "j")
	Press(m, "esc")

	AssertModelField(t, "screen", m.screen, ScreenBookList)
	AssertModelField(t, "query", m.searchQuery, "")
	AssertModelField(t, "search index", m.searchIndex, 0)
}

func TestEscNeverQuits(t *testing.T) {
	m := CreateTestModel(t)

	for i := 0; i < 5; i++ {
		Press(m, "esc")
	}
	AssertModelField(t, "quitting", m.quitting, false)

	Press(m, "q")
	AssertModelField(t, "quitting", m.quitting, true)
}

func TestMessageBannerExpires(t *testing.T) {
	m := CreateTestModel(t)

	m.setStatusMessage("saved")
	m.clearExpiredMessage()
	AssertModelField(t, "fresh banner", m.statusMsg, "saved")

	m.msgExpiresAt = time.Now().Add(-time.Second)
	m.clearExpiredMessage()
	AssertModelField(t, "expired banner", m.statusMsg, "")
}

func TestReportViewSwitching(t *testing.T) {
	m := CreateTestModel(t)

	Press(m, "r")
	AssertModelField(t, "screen", m.screen, ScreenReport)
	AssertModelField(t, "reportView", m.reportView, 0)

	Press(m, "2")
	AssertModelField(t, "reportView", m.reportView, 1)
	Press(m, "3")
	AssertModelField(t, "reportView", m.reportView, 2)
	Press(m, "1")
	AssertModelField(t, "reportView", m.reportView, 0)

	Press(m, "esc")
	AssertModelField(t, "screen", m.screen, ScreenBookList)
}

func TestMatchesQueryFields(t *testing.T) {
	book := types.ExtendedBook{
		Book:    types.Book{Title: "Dune", Genre: "소설"},
		Authors: []types.Writer{{Name: "Frank Herbert", Type: types.WriterAuthor}},
		Reviews: []types.Review{{Rating: 5, Text: "A desert classic"}},
	}

	for _, query := range []string{"dune", "herbert", "소설", "desert"} {
		if !matchesQuery(book, query) {
			t.Errorf("query %q should match", query)
		}
	}
	if matchesQuery(book, "gibson") {
		t.Error("query \"gibson\" should not match")
	}
}
