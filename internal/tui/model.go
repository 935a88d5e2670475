package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/libro/internal/keybinds"
	"github.com/studiowebux/libro/internal/library"
	"github.com/studiowebux/libro/internal/types"
)

// Mode represents the current input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit
	ModeSearch
	ModeConfirm
	ModeForm
	ModeGenreSelect
	ModeYearSelect
)

// Screen represents which view is displayed
type Screen int

const (
	ScreenBookList Screen = iota
	ScreenBookDetail
	ScreenAddBook
	ScreenEditBook
	ScreenReview
	ScreenSearch
	ScreenReport
	ScreenHelp
	ScreenConfirmDelete
)

// Form field order. Title through year, cyclic with tab.
const (
	fieldTitle = iota
	fieldAuthors
	fieldTranslators
	fieldGenre
	fieldPages
	fieldYear
	fieldCount
)

// Genres is the fixed genre list shown in the genre picker
var Genres = []string{"소설", "에세이", "자기계발", "기술/IT", "기타"}

// Years returns the selectable publication years, current year down to 1900
func Years() []int {
	current := time.Now().Year()
	years := make([]int, 0, current-1899)
	for y := current; y >= 1900; y-- {
		years = append(years, y)
	}
	return years
}

// messageTTL is how long the status banner stays visible
const messageTTL = 3 * time.Second

// tickInterval drives banner expiry while the UI is idle
const tickInterval = 100 * time.Millisecond

type tickMsg time.Time

// Model represents the TUI state
type Model struct {
	// Core state
	libraryMgr *library.Manager
	keybinds   *keybinds.Registry
	mode       Mode
	screen     Screen
	prevScreen Screen

	// Book cache, reloaded wholesale after every mutation
	books []types.ExtendedBook

	// Selection cursors
	bookIndex    int // Selected book in the list
	bookOffset   int // Scroll offset for the book list
	reviewIndex  int // Selected review on the review screen
	searchIndex  int // Selected entry in search results
	genreIndex   int // Highlighted genre in the picker
	yearIndex    int // Highlighted year in the picker
	reviewOffset int // Scroll offset for review list

	// Search state
	searchQuery  string
	searchEditor *Editor

	// Review editing state
	reviewEditor *Editor
	editingReview *int // nil = new review, otherwise index into selected book's reviews

	// Form state
	formFields    [fieldCount]string
	formIndex     int
	fieldEditor   *Editor
	editingBookID *int64 // nil on AddBook, set on EditBook

	// Report state
	reportView int // 0 = authors, 1 = years, 2 = recent

	// Scrollable content for the report and help screens
	contentView viewport.Model

	// UI state
	width        int
	height       int
	statusMsg    string
	errorMsg     string
	msgExpiresAt time.Time
	quitting     bool
}

// NewModel creates the TUI model with an initial load from the library
func NewModel(mgr *library.Manager) (*Model, error) {
	books, err := mgr.GetBooks(types.BookFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}

	return &Model{
		libraryMgr:   mgr,
		keybinds:     keybinds.NewDefaultRegistry(),
		mode:         ModeNormal,
		screen:       ScreenBookList,
		books:        books,
		searchEditor: NewEditor(),
	}, nil
}

// Init starts the idle tick used to expire the message banner
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Cleanup closes the library database
func (m *Model) Cleanup() {
	if m.libraryMgr != nil {
		if err := m.libraryMgr.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing library database: %v\n", err)
		}
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKeyPress(msg); cmd != nil {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.contentView.Width = msg.Width
		m.contentView.Height = m.listHeight()
		m.updateContentView()

	case tickMsg:
		m.clearExpiredMessage()
		return m, tick()
	}

	return m, nil
}

// setStatusMessage posts a transient success banner
func (m *Model) setStatusMessage(msg string) {
	m.statusMsg = msg
	m.errorMsg = ""
	m.msgExpiresAt = time.Now().Add(messageTTL)
}

// setErrorMessage posts a transient error banner
func (m *Model) setErrorMessage(msg string) {
	m.errorMsg = msg
	m.statusMsg = ""
	m.msgExpiresAt = time.Now().Add(messageTTL)
}

// clearExpiredMessage drops the banner once its TTL has passed
func (m *Model) clearExpiredMessage() {
	if m.statusMsg == "" && m.errorMsg == "" {
		return
	}
	if time.Now().After(m.msgExpiresAt) {
		m.statusMsg = ""
		m.errorMsg = ""
	}
}

// setScreen switches screens, recording the previous one for Back
func (m *Model) setScreen(screen Screen) {
	if screen != m.screen {
		m.prevScreen = m.screen
		m.screen = screen
	}
}

// goBack returns to the previously recorded screen
func (m *Model) goBack() {
	m.screen, m.prevScreen = m.prevScreen, m.screen
}

// selectedBook returns the book under the cursor, or nil when the list is
// empty.
func (m *Model) selectedBook() *types.ExtendedBook {
	if len(m.books) == 0 || m.bookIndex >= len(m.books) {
		return nil
	}
	return &m.books[m.bookIndex]
}

// reloadBooks refreshes the cache after a mutation. On failure the previous
// cache stays in place and the error is posted as a banner.
func (m *Model) reloadBooks() error {
	books, err := m.libraryMgr.GetBooks(types.BookFilter{})
	if err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to reload books: %v", err))
		return err
	}
	m.books = books
	m.clampSelection()
	return nil
}

// clampSelection keeps the selection cursors inside their collections
func (m *Model) clampSelection() {
	m.bookIndex = clampIndex(m.bookIndex, len(m.books))
	if b := m.selectedBook(); b != nil {
		m.reviewIndex = clampIndex(m.reviewIndex, len(b.Reviews))
	} else {
		m.reviewIndex = 0
	}
	m.searchIndex = clampIndex(m.searchIndex, len(m.searchResults()))
}

// clampIndex bounds an index to [0, length). An empty collection yields 0.
func clampIndex(idx, length int) int {
	if length == 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	if idx < 0 {
		return 0
	}
	return idx
}
