package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/libro/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeEdit:
		return m.handleEditKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeForm:
		return m.handleFormKeys(msg)
	case ModeGenreSelect:
		return m.handleGenreSelectKeys(msg)
	case ModeYearSelect:
		return m.handleYearSelectKeys(msg)
	}
	return nil
}

// handleNormalKeys handles navigation and book management in Normal mode
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextNormal, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuit:
		m.quitting = true
		m.Cleanup()
		return tea.Quit

	case keybinds.ActionBack:
		m.handleBack()

	case keybinds.ActionMoveDown:
		m.moveSelection(1)

	case keybinds.ActionMoveUp:
		m.moveSelection(-1)

	case keybinds.ActionSelect:
		m.handleNormalSelect()

	case keybinds.ActionAddBook:
		m.openAddBookForm()

	case keybinds.ActionEditBook:
		m.openEditBookForm()

	case keybinds.ActionDelete:
		m.handleDelete()

	case keybinds.ActionOpenReview:
		m.handleOpenReview()

	case keybinds.ActionNewReview:
		m.openNewReviewEditor()

	case keybinds.ActionCopyReview:
		m.copySelectedReview()

	case keybinds.ActionSearch:
		m.searchEditor = NewEditorFromText(m.searchQuery)
		m.setScreen(ScreenSearch)
		m.mode = ModeSearch

	case keybinds.ActionReport:
		m.reportView = 0
		m.setScreen(ScreenReport)
		m.updateContentView()

	case keybinds.ActionReportAuthors:
		m.setReportView(0)

	case keybinds.ActionReportYears:
		m.setReportView(1)

	case keybinds.ActionReportRecent:
		m.setReportView(2)

	case keybinds.ActionToggle:
		m.setReportView((m.reportView + 1) % 3)

	case keybinds.ActionHelp:
		m.setScreen(ScreenHelp)
		m.updateContentView()
	}

	return nil
}

// handleBack implements Esc per screen. It never exits the application.
func (m *Model) handleBack() {
	switch m.screen {
	case ScreenBookList:
		// Already at the root
	case ScreenSearch:
		m.searchQuery = ""
		m.searchIndex = 0
		m.setScreen(ScreenBookList)
	case ScreenReview, ScreenBookDetail, ScreenReport, ScreenHelp:
		m.goBack()
	default:
		m.setScreen(ScreenBookList)
	}
}

// moveSelection moves the cursor of whichever list the current screen shows
func (m *Model) moveSelection(delta int) {
	switch m.screen {
	case ScreenBookList, ScreenBookDetail:
		m.bookIndex = clampIndex(m.bookIndex+delta, len(m.books))
		m.reviewIndex = 0
	case ScreenReview:
		if b := m.selectedBook(); b != nil {
			m.reviewIndex = clampIndex(m.reviewIndex+delta, len(b.Reviews))
		}
	case ScreenSearch:
		m.searchIndex = clampIndex(m.searchIndex+delta, len(m.searchResults()))
	case ScreenReport, ScreenHelp:
		if delta > 0 {
			m.contentView.LineDown(delta)
		} else {
			m.contentView.LineUp(-delta)
		}
	}
}

// setReportView switches the report sub-view while on the report screen
func (m *Model) setReportView(view int) {
	if m.screen != ScreenReport {
		return
	}
	m.reportView = view
	m.updateContentView()
}

// handleNormalSelect handles Enter in Normal mode
func (m *Model) handleNormalSelect() {
	switch m.screen {
	case ScreenBookList:
		if m.selectedBook() != nil {
			m.setScreen(ScreenBookDetail)
		}
	case ScreenBookDetail:
		m.reviewIndex = 0
		m.setScreen(ScreenReview)
	case ScreenSearch:
		m.openSearchResult()
	}
}

// handleDelete is context sensitive: on the review screen it deletes the
// selected review immediately, elsewhere it asks for confirmation before
// deleting the selected book.
func (m *Model) handleDelete() {
	if m.screen == ScreenReview {
		m.deleteSelectedReview()
		return
	}
	if m.selectedBook() == nil {
		m.setErrorMessage("No book selected")
		return
	}
	m.setScreen(ScreenConfirmDelete)
	m.mode = ModeConfirm
}

// handleOpenReview opens the review screen, or starts editing the selected
// review when already there.
func (m *Model) handleOpenReview() {
	book := m.selectedBook()
	if book == nil {
		m.setErrorMessage("No book selected")
		return
	}
	if m.screen != ScreenReview {
		m.reviewIndex = 0
		m.setScreen(ScreenReview)
		return
	}
	// Already viewing: edit the selected review, or start a new one when
	// the book has none.
	if m.reviewIndex < len(book.Reviews) {
		idx := m.reviewIndex
		m.editingReview = &idx
		m.reviewEditor = NewEditorFromText(book.Reviews[idx].Text)
	} else {
		m.editingReview = nil
		m.reviewEditor = NewEditor()
	}
	m.mode = ModeEdit
}

// handleEditKeys handles free-text editing of reviews and form fields
func (m *Model) handleEditKeys(msg tea.KeyMsg) tea.Cmd {
	editor := m.activeEditor()
	if editor == nil {
		m.mode = ModeNormal
		return nil
	}

	action, ok := m.keybinds.Match(keybinds.ContextEdit, msg.String())
	if !ok {
		// Unbound keys insert literal text so typing "q" writes a q
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				editor.InsertChar(r)
			}
		} else if msg.String() == " " {
			editor.InsertChar(' ')
		}
		return nil
	}

	switch action {
	case keybinds.ActionForceQuit:
		m.quitting = true
		m.Cleanup()
		return tea.Quit

	case keybinds.ActionSaveEdit:
		if m.screen == ScreenReview {
			m.saveReviewEditor()
		} else {
			m.commitFieldEditor()
			m.saveBookForm()
		}

	case keybinds.ActionCancelEdit:
		if m.screen == ScreenReview {
			m.editingReview = nil
			m.reviewEditor = nil
			m.mode = ModeNormal
		} else {
			m.seedFieldEditor()
			m.mode = ModeForm
		}

	case keybinds.ActionNewLine:
		if m.screen == ScreenReview {
			editor.InsertNewline()
		} else {
			// Form fields are single line: Enter commits and advances
			m.commitFieldEditor()
			m.nextFormField(1)
			m.mode = ModeForm
		}

	case keybinds.ActionInsertChar:
		editor.InsertChar('\t')

	case keybinds.ActionBackspace:
		editor.Backspace()
	case keybinds.ActionDeleteChar:
		editor.DeleteChar()
	case keybinds.ActionCursorLeft:
		editor.MoveCursorLeft()
	case keybinds.ActionCursorRight:
		editor.MoveCursorRight()
	case keybinds.ActionCursorUp:
		editor.MoveCursorUp()
	case keybinds.ActionCursorDown:
		editor.MoveCursorDown()
	case keybinds.ActionLineStart:
		editor.MoveToLineStart()
	case keybinds.ActionLineEnd:
		editor.MoveToLineEnd()
	case keybinds.ActionClearLine:
		editor.ClearCurrentLine()
	case keybinds.ActionDeleteToEnd:
		editor.DeleteToLineEnd()
	case keybinds.ActionDeleteWord:
		editor.DeleteWordBackward()
	}

	return nil
}

// activeEditor returns whichever editor the Edit mode is driving
func (m *Model) activeEditor() *Editor {
	if m.screen == ScreenReview {
		return m.reviewEditor
	}
	return m.fieldEditor
}

// handleSearchKeys handles query input in Search mode
func (m *Model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextSearch, msg.String())
	if !ok {
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.searchEditor.InsertChar(r)
			}
		} else if msg.String() == " " {
			m.searchEditor.InsertChar(' ')
		}
		return nil
	}

	switch action {
	case keybinds.ActionSelect:
		m.commitSearch()

	case keybinds.ActionBack:
		// Cancel without touching the committed query
		m.mode = ModeNormal
		m.setScreen(ScreenBookList)

	case keybinds.ActionBackspace:
		m.searchEditor.Backspace()
	case keybinds.ActionClearLine:
		m.searchEditor.ClearCurrentLine()
	case keybinds.ActionCursorLeft:
		m.searchEditor.MoveCursorLeft()
	case keybinds.ActionCursorRight:
		m.searchEditor.MoveCursorRight()
	}

	return nil
}

// handleConfirmKeys handles the book delete confirmation dialog
func (m *Model) handleConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionConfirm:
		m.deleteSelectedBook()
	case keybinds.ActionCancel:
		m.mode = ModeNormal
		m.goBack()
	}

	return nil
}

// handleFormKeys handles the book form in direct-input mode
func (m *Model) handleFormKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextForm, msg.String())
	if !ok {
		// Typing on a picker field opens the picker; on a text field it
		// inserts directly without an explicit edit step.
		if msg.Type == tea.KeyRunes || msg.String() == " " {
			if m.isPickerField() {
				m.openPickerForField()
				return nil
			}
			if msg.Type == tea.KeyRunes {
				for _, r := range msg.Runes {
					m.fieldEditor.InsertChar(r)
				}
			} else {
				m.fieldEditor.InsertChar(' ')
			}
		}
		return nil
	}

	switch action {
	case keybinds.ActionBack:
		m.cancelForm()

	case keybinds.ActionNextField:
		m.commitFieldEditor()
		m.nextFormField(1)

	case keybinds.ActionPrevField:
		m.commitFieldEditor()
		m.nextFormField(-1)

	case keybinds.ActionSelect:
		m.commitFieldEditor()
		if m.isPickerField() {
			m.openPickerForField()
		} else {
			m.mode = ModeEdit
		}

	case keybinds.ActionSaveEdit:
		m.commitFieldEditor()
		m.saveBookForm()

	case keybinds.ActionBackspace:
		m.withFieldEditor(func(e *Editor) { e.Backspace() })
	case keybinds.ActionDeleteChar:
		m.withFieldEditor(func(e *Editor) { e.DeleteChar() })
	case keybinds.ActionCursorLeft:
		m.withFieldEditor(func(e *Editor) { e.MoveCursorLeft() })
	case keybinds.ActionCursorRight:
		m.withFieldEditor(func(e *Editor) { e.MoveCursorRight() })
	case keybinds.ActionLineStart:
		m.withFieldEditor(func(e *Editor) { e.MoveToLineStart() })
	case keybinds.ActionLineEnd:
		m.withFieldEditor(func(e *Editor) { e.MoveToLineEnd() })
	case keybinds.ActionClearLine:
		m.withFieldEditor(func(e *Editor) { e.ClearCurrentLine() })
	case keybinds.ActionDeleteToEnd:
		m.withFieldEditor(func(e *Editor) { e.DeleteToLineEnd() })
	case keybinds.ActionDeleteWord:
		m.withFieldEditor(func(e *Editor) { e.DeleteWordBackward() })
	}

	return nil
}

// withFieldEditor applies an edit to the current field, or opens the picker
// when the field has no free-text editor.
func (m *Model) withFieldEditor(fn func(*Editor)) {
	if m.isPickerField() {
		m.openPickerForField()
		return
	}
	fn(m.fieldEditor)
}

// handleGenreSelectKeys handles the genre picker overlay
func (m *Model) handleGenreSelectKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextGenreSelect, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionMoveDown:
		m.genreIndex = clampIndex(m.genreIndex+1, len(Genres))
	case keybinds.ActionMoveUp:
		m.genreIndex = clampIndex(m.genreIndex-1, len(Genres))
	case keybinds.ActionSelect:
		m.formFields[fieldGenre] = Genres[m.genreIndex]
		m.mode = ModeForm
	case keybinds.ActionBack:
		m.mode = ModeForm
	}

	return nil
}

// handleYearSelectKeys handles the publication year picker overlay
func (m *Model) handleYearSelectKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextYearSelect, msg.String())
	if !ok {
		return nil
	}

	years := Years()
	switch action {
	case keybinds.ActionMoveDown:
		m.yearIndex = clampIndex(m.yearIndex+1, len(years))
	case keybinds.ActionMoveUp:
		m.yearIndex = clampIndex(m.yearIndex-1, len(years))
	case keybinds.ActionSelect:
		m.formFields[fieldYear] = fmt.Sprintf("%d", years[m.yearIndex])
		m.mode = ModeForm
	case keybinds.ActionBack:
		m.mode = ModeForm
	}

	return nil
}

// copySelectedReview copies the selected review's text to the clipboard
func (m *Model) copySelectedReview() {
	if m.screen != ScreenReview {
		return
	}
	book := m.selectedBook()
	if book == nil || m.reviewIndex >= len(book.Reviews) {
		m.setErrorMessage("No review to copy")
		return
	}
	if err := clipboard.WriteAll(book.Reviews[m.reviewIndex].Text); err != nil {
		m.setErrorMessage(fmt.Sprintf("Failed to copy review: %v", err))
		return
	}
	m.setStatusMessage("Review copied to clipboard")
}
