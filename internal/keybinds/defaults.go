package keybinds

// NewDefaultRegistry creates a registry with the default keybindings for
// every mode. Destructive actions (quit, delete, add, edit) are registered
// only in the Normal context; the single exception is the Edit-mode
// force-quit chord for abandoning a long review.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerNormalBindings(r)
	registerEditBindings(r)
	registerSearchBindings(r)
	registerConfirmBindings(r)
	registerFormBindings(r)
	registerGenreSelectBindings(r)
	registerYearSelectBindings(r)

	return r
}

func registerNormalBindings(r *Registry) {
	r.Register(ContextNormal, "q", ActionQuit, "Quit")
	r.Register(ContextNormal, "esc", ActionBack, "Back")
	r.Register(ContextNormal, "?", ActionHelp, "Help")

	r.Register(ContextNormal, "j", ActionMoveDown, "Move down")
	r.Register(ContextNormal, "down", ActionMoveDown, "Move down")
	r.Register(ContextNormal, "k", ActionMoveUp, "Move up")
	r.Register(ContextNormal, "up", ActionMoveUp, "Move up")
	r.Register(ContextNormal, "h", ActionMoveLeft, "Move left")
	r.Register(ContextNormal, "left", ActionMoveLeft, "Move left")
	r.Register(ContextNormal, "l", ActionMoveRight, "Move right")
	r.Register(ContextNormal, "right", ActionMoveRight, "Move right")
	r.Register(ContextNormal, "enter", ActionSelect, "Select")
	r.Register(ContextNormal, " ", ActionToggle, "Toggle")

	r.Register(ContextNormal, "a", ActionAddBook, "Add book")
	r.Register(ContextNormal, "e", ActionEditBook, "Edit")
	r.Register(ContextNormal, "d", ActionDelete, "Delete")
	r.Register(ContextNormal, "v", ActionOpenReview, "View review")
	r.Register(ContextNormal, "n", ActionNewReview, "New review")
	r.Register(ContextNormal, "c", ActionCopyReview, "Copy review")
	r.Register(ContextNormal, "/", ActionSearch, "Search")
	r.Register(ContextNormal, "r", ActionReport, "Reports")

	r.Register(ContextNormal, "tab", ActionNextField, "Next field")
	r.Register(ContextNormal, "shift+tab", ActionPrevField, "Previous field")

	r.Register(ContextNormal, "1", ActionReportAuthors, "Author stats")
	r.Register(ContextNormal, "2", ActionReportYears, "Reading by year")
	r.Register(ContextNormal, "3", ActionReportRecent, "Recent books")
}

func registerEditBindings(r *Registry) {
	r.Register(ContextEdit, "ctrl+s", ActionSaveEdit, "Save")
	r.Register(ContextEdit, "ctrl+x", ActionCancelEdit, "Cancel")
	r.Register(ContextEdit, "ctrl+q", ActionForceQuit, "Force quit")

	r.Register(ContextEdit, "enter", ActionNewLine, "New line")
	r.Register(ContextEdit, "backspace", ActionBackspace, "Delete backward")
	r.Register(ContextEdit, "delete", ActionDeleteChar, "Delete forward")
	r.Register(ContextEdit, "tab", ActionInsertChar, "Insert tab")

	r.Register(ContextEdit, "left", ActionCursorLeft, "Cursor left")
	r.Register(ContextEdit, "right", ActionCursorRight, "Cursor right")
	r.Register(ContextEdit, "up", ActionCursorUp, "Cursor up")
	r.Register(ContextEdit, "down", ActionCursorDown, "Cursor down")
	r.Register(ContextEdit, "ctrl+h", ActionCursorLeft, "Cursor left")
	r.Register(ContextEdit, "ctrl+l", ActionCursorRight, "Cursor right")
	r.Register(ContextEdit, "ctrl+j", ActionCursorDown, "Cursor down")

	r.Register(ContextEdit, "home", ActionLineStart, "Line start")
	r.Register(ContextEdit, "end", ActionLineEnd, "Line end")
	r.Register(ContextEdit, "ctrl+a", ActionLineStart, "Line start")
	r.Register(ContextEdit, "ctrl+e", ActionLineEnd, "Line end")
	r.Register(ContextEdit, "ctrl+u", ActionClearLine, "Clear line")
	r.Register(ContextEdit, "ctrl+k", ActionDeleteToEnd, "Delete to end of line")
	r.Register(ContextEdit, "ctrl+w", ActionDeleteWord, "Delete word backward")
}

func registerSearchBindings(r *Registry) {
	r.Register(ContextSearch, "enter", ActionSelect, "Run search")
	r.Register(ContextSearch, "esc", ActionBack, "Cancel")
	r.Register(ContextSearch, "backspace", ActionBackspace, "Delete backward")
	r.Register(ContextSearch, "ctrl+u", ActionClearLine, "Clear query")
	r.Register(ContextSearch, "left", ActionCursorLeft, "Cursor left")
	r.Register(ContextSearch, "right", ActionCursorRight, "Cursor right")
}

func registerConfirmBindings(r *Registry) {
	r.Register(ContextConfirm, "y", ActionConfirm, "Confirm")
	r.Register(ContextConfirm, "Y", ActionConfirm, "Confirm")
	r.Register(ContextConfirm, "enter", ActionConfirm, "Confirm")
	r.Register(ContextConfirm, "n", ActionCancel, "Cancel")
	r.Register(ContextConfirm, "N", ActionCancel, "Cancel")
	r.Register(ContextConfirm, "esc", ActionCancel, "Cancel")
}

func registerFormBindings(r *Registry) {
	r.Register(ContextForm, "esc", ActionBack, "Cancel form")
	r.Register(ContextForm, "tab", ActionNextField, "Next field")
	r.Register(ContextForm, "down", ActionNextField, "Next field")
	r.Register(ContextForm, "shift+tab", ActionPrevField, "Previous field")
	r.Register(ContextForm, "up", ActionPrevField, "Previous field")
	r.Register(ContextForm, "enter", ActionSelect, "Next field / open picker")
	r.Register(ContextForm, "ctrl+s", ActionSaveEdit, "Save book")

	r.Register(ContextForm, "backspace", ActionBackspace, "Delete backward")
	r.Register(ContextForm, "delete", ActionDeleteChar, "Delete forward")
	r.Register(ContextForm, "left", ActionCursorLeft, "Cursor left")
	r.Register(ContextForm, "right", ActionCursorRight, "Cursor right")
	r.Register(ContextForm, "home", ActionLineStart, "Line start")
	r.Register(ContextForm, "end", ActionLineEnd, "Line end")
	r.Register(ContextForm, "ctrl+a", ActionLineStart, "Line start")
	r.Register(ContextForm, "ctrl+e", ActionLineEnd, "Line end")
	r.Register(ContextForm, "ctrl+u", ActionClearLine, "Clear field")
	r.Register(ContextForm, "ctrl+k", ActionDeleteToEnd, "Delete to end")
	r.Register(ContextForm, "ctrl+w", ActionDeleteWord, "Delete word backward")
}

func registerGenreSelectBindings(r *Registry) {
	r.Register(ContextGenreSelect, "esc", ActionBack, "Cancel")
	r.Register(ContextGenreSelect, "enter", ActionSelect, "Choose genre")
	r.Register(ContextGenreSelect, "j", ActionMoveDown, "Move down")
	r.Register(ContextGenreSelect, "down", ActionMoveDown, "Move down")
	r.Register(ContextGenreSelect, "k", ActionMoveUp, "Move up")
	r.Register(ContextGenreSelect, "up", ActionMoveUp, "Move up")
}

func registerYearSelectBindings(r *Registry) {
	r.Register(ContextYearSelect, "esc", ActionBack, "Cancel")
	r.Register(ContextYearSelect, "enter", ActionSelect, "Choose year")
	r.Register(ContextYearSelect, "j", ActionMoveDown, "Move down")
	r.Register(ContextYearSelect, "down", ActionMoveDown, "Move down")
	r.Register(ContextYearSelect, "k", ActionMoveUp, "Move up")
	r.Register(ContextYearSelect, "up", ActionMoveUp, "Move up")
}
