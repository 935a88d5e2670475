package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldNames labels the form fields in display order
var fieldNames = [fieldCount]string{
	"Title",
	"Authors",
	"Translators",
	"Genre",
	"Pages",
	"Publication year",
}

// openAddBookForm resets the form and enters direct input at the title field
func (m *Model) openAddBookForm() {
	m.formFields = [fieldCount]string{}
	m.formIndex = fieldTitle
	m.editingBookID = nil
	m.seedFieldEditor()
	m.setScreen(ScreenAddBook)
	m.mode = ModeForm
}

// openEditBookForm seeds the form from the selected book
func (m *Model) openEditBookForm() {
	book := m.selectedBook()
	if book == nil {
		m.setErrorMessage("No book selected")
		return
	}

	m.formFields[fieldTitle] = book.Book.Title
	m.formFields[fieldAuthors] = joinWriterNames(book.Authors)
	m.formFields[fieldTranslators] = joinWriterNames(book.Translators)
	m.formFields[fieldGenre] = book.Book.Genre
	m.formFields[fieldPages] = formatOptionalInt(book.Book.Pages)
	m.formFields[fieldYear] = formatOptionalInt(book.Book.PubYear)

	m.formIndex = fieldTitle
	m.editingBookID = book.Book.ID
	m.seedFieldEditor()
	m.setScreen(ScreenEditBook)
	m.mode = ModeForm
}

// cancelForm discards the form and returns to the book list
func (m *Model) cancelForm() {
	m.formFields = [fieldCount]string{}
	m.fieldEditor = nil
	m.editingBookID = nil
	m.mode = ModeNormal
	m.setScreen(ScreenBookList)
}

// nextFormField moves the field cursor cyclically and reseeds the editor
func (m *Model) nextFormField(delta int) {
	m.formIndex = (m.formIndex + delta + fieldCount) % fieldCount
	m.seedFieldEditor()
}

// isPickerField reports whether the current field uses a selector overlay
// instead of free text.
func (m *Model) isPickerField() bool {
	return m.formIndex == fieldGenre || m.formIndex == fieldYear
}

// openPickerForField enters the selector for the genre or year field,
// highlighting the current form value when present.
func (m *Model) openPickerForField() {
	switch m.formIndex {
	case fieldGenre:
		m.genreIndex = 0
		for i, g := range Genres {
			if g == m.formFields[fieldGenre] {
				m.genreIndex = i
				break
			}
		}
		m.mode = ModeGenreSelect
	case fieldYear:
		m.yearIndex = 0
		for i, y := range Years() {
			if strconv.Itoa(y) == m.formFields[fieldYear] {
				m.yearIndex = i
				break
			}
		}
		m.mode = ModeYearSelect
	}
}

// seedFieldEditor loads the current field's committed value into the editor.
// Picker fields have no editor.
func (m *Model) seedFieldEditor() {
	if m.isPickerField() {
		m.fieldEditor = nil
		return
	}
	m.fieldEditor = NewEditorFromText(m.formFields[m.formIndex])
}

// commitFieldEditor writes the live editor text into the form before any
// field, screen, or mode switch. Uncommitted text is never silently lost.
func (m *Model) commitFieldEditor() {
	if m.fieldEditor == nil || m.isPickerField() {
		return
	}
	m.formFields[m.formIndex] = m.fieldEditor.Text()
}

// validateForm checks the form in a fixed order and returns the first
// failing rule's message. Numeric fields must parse when non-empty;
// unparseable input fails rather than silently becoming unset.
func (m *Model) validateForm() string {
	if strings.TrimSpace(m.formFields[fieldTitle]) == "" {
		return "Title is required"
	}
	if len(splitNames(m.formFields[fieldAuthors])) == 0 {
		return "At least one author is required"
	}
	if strings.TrimSpace(m.formFields[fieldGenre]) == "" {
		return "Genre is required"
	}
	if _, err := parseOptionalInt(m.formFields[fieldPages]); err != nil {
		return "Pages must be a number"
	}
	if _, err := parseOptionalInt(m.formFields[fieldYear]); err != nil {
		return "Publication year must be a number"
	}
	return ""
}

// saveBookForm validates, persists, reloads, and returns to the book list.
// On any failure it posts the error and keeps the form state intact.
func (m *Model) saveBookForm() {
	if msg := m.validateForm(); msg != "" {
		m.setErrorMessage(msg)
		m.mode = ModeForm
		return
	}

	title := strings.TrimSpace(m.formFields[fieldTitle])
	authors := splitNames(m.formFields[fieldAuthors])
	translators := splitNames(m.formFields[fieldTranslators])
	genre := strings.TrimSpace(m.formFields[fieldGenre])
	pages, _ := parseOptionalInt(m.formFields[fieldPages])
	pubYear, _ := parseOptionalInt(m.formFields[fieldYear])

	if m.editingBookID != nil {
		m.updateBookFromForm(*m.editingBookID, title, authors, translators, genre, pages, pubYear)
	} else {
		m.addBookFromForm(title, authors, translators, genre, pages, pubYear)
	}
}

// openSearchResult maps the selected search hit back to its absolute index
// and opens its review screen.
func (m *Model) openSearchResult() {
	results := m.searchResults()
	if len(results) == 0 {
		m.setErrorMessage("No matching books")
		return
	}
	if m.searchIndex >= len(results) {
		m.searchIndex = len(results) - 1
	}
	m.bookIndex = results[m.searchIndex]
	m.reviewIndex = 0
	m.setScreen(ScreenReview)
}

// commitSearch stores the trimmed query and returns to Normal mode. Results
// are recomputed on demand, never materialized.
func (m *Model) commitSearch() {
	m.searchQuery = strings.TrimSpace(m.searchEditor.Text())
	m.searchIndex = 0
	m.mode = ModeNormal
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

// parseOptionalInt parses an optional non-negative integer field. Empty
// input is valid and maps to nil.
func parseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("invalid number: %q", s)
	}
	return &n, nil
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
