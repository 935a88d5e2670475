package tui

import (
	"strings"

	"github.com/studiowebux/libro/internal/types"
)

// matchesQuery reports whether a book matches a lower-cased search query by
// substring against its title, any author name, genre, or any review text.
func matchesQuery(book types.ExtendedBook, query string) bool {
	if strings.Contains(strings.ToLower(book.Book.Title), query) {
		return true
	}
	for _, a := range book.Authors {
		if strings.Contains(strings.ToLower(a.Name), query) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(book.Book.Genre), query) {
		return true
	}
	for _, r := range book.Reviews {
		if strings.Contains(strings.ToLower(r.Text), query) {
			return true
		}
	}
	return false
}

// searchResults recomputes the filtered view on demand. It returns indices
// into the books cache so a result can be mapped back to its absolute
// position. An empty query matches everything.
func (m *Model) searchResults() []int {
	query := strings.ToLower(strings.TrimSpace(m.searchQuery))
	results := make([]int, 0, len(m.books))
	for i, book := range m.books {
		if query == "" || matchesQuery(book, query) {
			results = append(results, i)
		}
	}
	return results
}
