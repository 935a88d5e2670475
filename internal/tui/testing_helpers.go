package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/libro/internal/library"
	"github.com/studiowebux/libro/internal/types"
)

// CreateTestModel creates a Model backed by a throwaway database
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	mgr, err := library.NewManager(dbPath)
	if err != nil {
		t.Fatalf("Failed to create test library: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })

	m, err := NewModel(mgr)
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}
	return m
}

// AddTestBook inserts a book directly and refreshes the model's cache
func AddTestBook(t *testing.T, m *Model, book types.NewBook) int64 {
	t.Helper()

	id, err := m.libraryMgr.AddBook(book)
	if err != nil {
		t.Fatalf("Failed to add test book: %v", err)
	}
	if err := m.reloadBooks(); err != nil {
		t.Fatalf("Failed to reload books: %v", err)
	}
	return id
}

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"ctrl+s":    tea.KeyCtrlS,
	"ctrl+x":    tea.KeyCtrlX,
	"ctrl+q":    tea.KeyCtrlQ,
	"ctrl+u":    tea.KeyCtrlU,
	"ctrl+k":    tea.KeyCtrlK,
	"ctrl+w":    tea.KeyCtrlW,
	"ctrl+a":    tea.KeyCtrlA,
	"ctrl+e":    tea.KeyCtrlE,
	" ":         tea.KeySpace,
}

// Press sends a single key press to the model. Named keys use their
// bubbletea string form ("enter", "ctrl+s"); anything else is sent as a
// literal rune.
func Press(m *Model, key string) {
	var msg tea.KeyMsg
	if kt, ok := specialKeys[key]; ok {
		msg = tea.KeyMsg{Type: kt}
	} else {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m.Update(msg)
}

// TypeString sends each character of s as a key press
func TypeString(m *Model, s string) {
	for _, r := range s {
		Press(m, string(r))
	}
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
