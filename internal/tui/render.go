package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/libro/internal/keybinds"
	"github.com/studiowebux/libro/internal/report"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed   = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorGray  = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
	colorGold  = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffd700"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleRating = lipgloss.NewStyle().
			Foreground(colorGold)

	styleCursor = lipgloss.NewStyle().
			Reverse(true)

	styleFieldLabel = lipgloss.NewStyle().
			Bold(true)

	styleDialog = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorRed).
			Padding(1, 2)
)

// View renders the current screen
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screen {
	case ScreenBookList:
		body = m.renderBookList()
	case ScreenBookDetail:
		body = m.renderBookDetail()
	case ScreenAddBook, ScreenEditBook:
		body = m.renderForm()
	case ScreenReview:
		body = m.renderReview()
	case ScreenSearch:
		body = m.renderSearch()
	case ScreenReport, ScreenHelp:
		body = m.contentView.View()
	case ScreenConfirmDelete:
		body = m.renderConfirmDelete()
	}

	sections := []string{m.renderHeader(), body}
	if banner := m.renderBanner(); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m *Model) renderHeader() string {
	title := "Libro"
	switch m.screen {
	case ScreenBookDetail:
		title = "Libro · Book"
	case ScreenAddBook:
		title = "Libro · Add Book"
	case ScreenEditBook:
		title = "Libro · Edit Book"
	case ScreenReview:
		title = "Libro · Reviews"
	case ScreenSearch:
		title = "Libro · Search"
	case ScreenReport:
		title = "Libro · Reports"
	case ScreenHelp:
		title = "Libro · Help"
	}
	return styleTitle.Render(title)
}

func (m *Model) renderBanner() string {
	if m.errorMsg != "" {
		return styleError.Render(m.errorMsg)
	}
	if m.statusMsg != "" {
		return styleSuccess.Render(m.statusMsg)
	}
	return ""
}

func (m *Model) renderFooter() string {
	var hints string
	switch m.mode {
	case ModeNormal:
		switch m.screen {
		case ScreenBookList:
			hints = "j/k move · enter open · a add · e edit · d delete · v reviews · / search · r reports · ? help · q quit"
		case ScreenReview:
			hints = "j/k move · v edit · n new · d delete · c copy · esc back"
		case ScreenReport:
			hints = "1 authors · 2 years · 3 recent · esc back"
		default:
			hints = "esc back · q quit"
		}
	case ModeEdit:
		hints = "ctrl+s save · ctrl+x cancel · ctrl+q force quit"
	case ModeSearch:
		hints = "enter search · esc cancel"
	case ModeConfirm:
		hints = "y confirm · n cancel"
	case ModeForm:
		hints = "tab next field · enter edit/pick · ctrl+s save · esc cancel"
	case ModeGenreSelect, ModeYearSelect:
		hints = "j/k move · enter choose · esc back"
	}
	return styleSubtle.Render(hints)
}

// listHeight is how many rows the book list shows at once
func (m *Model) listHeight() int {
	h := m.height - 4 // header, banner, footer
	if h < 5 {
		h = 10
	}
	return h
}

func (m *Model) renderBookList() string {
	if len(m.books) == 0 {
		return styleSubtle.Render("No books yet. Press 'a' to add one.")
	}

	height := m.listHeight()
	if m.bookIndex < m.bookOffset {
		m.bookOffset = m.bookIndex
	} else if m.bookIndex >= m.bookOffset+height {
		m.bookOffset = m.bookIndex - height + 1
	}

	var b strings.Builder
	end := m.bookOffset + height
	if end > len(m.books) {
		end = len(m.books)
	}
	for i := m.bookOffset; i < end; i++ {
		book := m.books[i]
		line := fmt.Sprintf("%-30s %-20s %s",
			truncate(book.Book.Title, 30),
			truncate(joinWriterNames(book.Authors), 20),
			book.Book.Genre)
		if len(book.Reviews) > 0 {
			line += styleRating.Render(fmt.Sprintf("  ★%d", book.Reviews[0].Rating))
		}
		if i == m.bookIndex {
			line = styleSelected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(styleSubtle.Render(fmt.Sprintf("\n%d book(s)", len(m.books))))
	return b.String()
}

func (m *Model) renderBookDetail() string {
	book := m.selectedBook()
	if book == nil {
		return styleSubtle.Render("No book selected")
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(book.Book.Title) + "\n\n")
	b.WriteString(styleFieldLabel.Render("Authors: ") + joinWriterNames(book.Authors) + "\n")
	if len(book.Translators) > 0 {
		b.WriteString(styleFieldLabel.Render("Translators: ") + joinWriterNames(book.Translators) + "\n")
	}
	b.WriteString(styleFieldLabel.Render("Genre: ") + book.Book.Genre + "\n")
	if book.Book.Pages != nil {
		b.WriteString(styleFieldLabel.Render("Pages: ") + fmt.Sprintf("%d", *book.Book.Pages) + "\n")
	}
	if book.Book.PubYear != nil {
		b.WriteString(styleFieldLabel.Render("Published: ") + fmt.Sprintf("%d", *book.Book.PubYear) + "\n")
	}
	b.WriteString(styleFieldLabel.Render("Reviews: ") + fmt.Sprintf("%d", len(book.Reviews)) + "\n")
	b.WriteString(styleSubtle.Render("\nenter reviews · e edit · d delete · esc back"))
	return b.String()
}

func (m *Model) renderForm() string {
	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		label := fmt.Sprintf("%-17s", fieldNames[i]+":")
		value := m.formFields[i]
		if i == m.formIndex {
			if m.fieldEditor != nil {
				value = renderEditorLine(m.fieldEditor)
			}
			b.WriteString(styleSelected.Render("> "+label) + " " + value + "\n")
		} else {
			b.WriteString("  " + styleFieldLabel.Render(label) + " " + value + "\n")
		}
	}
	b.WriteString(styleSubtle.Render("\nAuthors and translators are comma-separated."))

	switch m.mode {
	case ModeGenreSelect:
		b.WriteString("\n\n" + m.renderGenrePicker())
	case ModeYearSelect:
		b.WriteString("\n\n" + m.renderYearPicker())
	}
	return b.String()
}

func (m *Model) renderGenrePicker() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Genre") + "\n")
	for i, g := range Genres {
		if i == m.genreIndex {
			b.WriteString(styleSelected.Render("> "+g) + "\n")
		} else {
			b.WriteString("  " + g + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderYearPicker() string {
	years := Years()
	const window = 10
	start := m.yearIndex - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(years) {
		end = len(years)
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("Publication year") + "\n")
	for i := start; i < end; i++ {
		label := fmt.Sprintf("%d", years[i])
		if i == m.yearIndex {
			b.WriteString(styleSelected.Render("> "+label) + "\n")
		} else {
			b.WriteString("  " + label + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderReview() string {
	book := m.selectedBook()
	if book == nil {
		return styleSubtle.Render("No book selected")
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(book.Book.Title) +
		styleSubtle.Render(" · "+joinWriterNames(book.Authors)) + "\n\n")

	if m.mode == ModeEdit && m.reviewEditor != nil {
		b.WriteString(m.renderEditorBlock(m.reviewEditor))
		return b.String()
	}

	if len(book.Reviews) == 0 {
		b.WriteString(styleSubtle.Render("No reviews. Press 'n' to write one."))
		return b.String()
	}

	for i, review := range book.Reviews {
		header := styleRating.Render(strings.Repeat("★", review.Rating))
		if review.DateRead != nil {
			header += styleSubtle.Render("  " + review.DateRead.Format("2006-01-02"))
		}
		if i == m.reviewIndex {
			b.WriteString(styleSelected.Render("> ") + header + "\n")
		} else {
			b.WriteString("  " + header + "\n")
		}
		for _, line := range strings.Split(review.Text, "\n") {
			b.WriteString("    " + line + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderEditorBlock renders a multi-line editor with its cursor
func (m *Model) renderEditorBlock(e *Editor) string {
	height := m.listHeight()
	e.SetHeight(height)

	var b strings.Builder
	lines := e.Lines()
	cursorLine, cursorCol := e.Cursor()
	start := e.ScrollOffset()
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	for i := start; i < end; i++ {
		if i == cursorLine {
			b.WriteString(renderLineWithCursor(lines[i], cursorCol) + "\n")
		} else {
			b.WriteString(lines[i] + "\n")
		}
	}
	return b.String()
}

// renderEditorLine renders a single-line editor with its cursor
func renderEditorLine(e *Editor) string {
	_, col := e.Cursor()
	return renderLineWithCursor(e.Lines()[0], col)
}

func renderLineWithCursor(line string, col int) string {
	runes := []rune(line)
	if col >= len(runes) {
		return line + styleCursor.Render(" ")
	}
	return string(runes[:col]) +
		styleCursor.Render(string(runes[col])) +
		string(runes[col+1:])
}

func (m *Model) renderSearch() string {
	var b strings.Builder
	query := m.searchQuery
	if m.mode == ModeSearch {
		query = renderEditorLine(m.searchEditor)
	}
	b.WriteString(styleFieldLabel.Render("Search: ") + query + "\n\n")

	results := m.searchResults()
	if len(results) == 0 {
		b.WriteString(styleSubtle.Render("No matching books"))
		return b.String()
	}
	for i, abs := range results {
		book := m.books[abs]
		line := fmt.Sprintf("%-30s %s",
			truncate(book.Book.Title, 30),
			joinWriterNames(book.Authors))
		if i == m.searchIndex && m.mode == ModeNormal {
			b.WriteString(styleSelected.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

// updateContentView fills the scrollable viewport for the report and help
// screens and resets it to the top.
func (m *Model) updateContentView() {
	if m.contentView.Height == 0 {
		m.contentView.Height = m.listHeight()
	}
	switch m.screen {
	case ScreenReport:
		m.contentView.SetContent(m.reportContent())
	case ScreenHelp:
		m.contentView.SetContent(m.helpContent())
	default:
		return
	}
	m.contentView.GotoTop()
}

func (m *Model) reportContent() string {
	switch m.reportView {
	case 1:
		return report.FormatYearChart(m.books)
	case 2:
		return m.renderRecentBooks()
	default:
		return report.FormatAuthorStats(m.books) + "\n" + report.FormatReadingStats(m.books)
	}
}

func (m *Model) renderRecentBooks() string {
	recent := report.RecentBooks(m.books, 10)
	if len(recent) == 0 {
		return styleSubtle.Render("No books yet")
	}
	var b strings.Builder
	b.WriteString(styleTitle.Render("Recently added") + "\n")
	for _, book := range recent {
		b.WriteString(fmt.Sprintf("  %-30s %s\n",
			truncate(book.Book.Title, 30),
			joinWriterNames(book.Authors)))
	}
	return b.String()
}

func (m *Model) helpContent() string {
	var b strings.Builder
	sections := []struct {
		title string
		ctx   keybinds.Context
	}{
		{"Normal", keybinds.ContextNormal},
		{"Editing", keybinds.ContextEdit},
		{"Form", keybinds.ContextForm},
		{"Search", keybinds.ContextSearch},
	}
	for _, s := range sections {
		b.WriteString(styleTitle.Render(s.title) + "\n")
		for _, binding := range m.keybinds.Bindings(s.ctx) {
			b.WriteString(fmt.Sprintf("  %-12s %s\n", binding.Key, binding.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderConfirmDelete() string {
	book := m.selectedBook()
	if book == nil {
		return styleSubtle.Render("No book selected")
	}
	msg := fmt.Sprintf("Delete %q?\n\nBooks with reviews cannot be deleted.\n\ny: delete    n: cancel", book.Book.Title)
	return styleDialog.Render(msg)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
