package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the input mode in which keybindings are active. There
// is one context per TUI mode; keys not bound in the active context are
// ignored, which is what keeps destructive bindings out of text-entry modes.
type Context string

const (
	ContextNormal      Context = "normal"       // Normal navigation mode
	ContextEdit        Context = "edit"         // Free-text editing (reviews, in-place form edit)
	ContextSearch      Context = "search"       // Search query input
	ContextConfirm     Context = "confirm"      // Confirmation dialogs
	ContextForm        Context = "form"         // Book form direct input
	ContextGenreSelect Context = "genre_select" // Genre picker
	ContextYearSelect  Context = "year_select"  // Publication year picker
)

// Contexts lists every context, for table-driven checks.
var Contexts = []Context{
	ContextNormal,
	ContextEdit,
	ContextSearch,
	ContextConfirm,
	ContextForm,
	ContextGenreSelect,
	ContextYearSelect,
}

const (
	// Navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionSelect    Action = "select"
	ActionBack      Action = "back"
	ActionQuit      Action = "quit"

	// Book management (Normal mode only)
	ActionAddBook    Action = "add_book"
	ActionEditBook   Action = "edit_book"
	ActionDelete     Action = "delete"
	ActionOpenReview Action = "open_review"
	ActionNewReview  Action = "new_review"
	ActionSearch     Action = "search"
	ActionReport     Action = "report"
	ActionHelp       Action = "help"
	ActionCopyReview Action = "copy_review"
	ActionToggle     Action = "toggle"

	// Form navigation
	ActionNextField Action = "next_field"
	ActionPrevField Action = "prev_field"

	// Report sub-views
	ActionReportAuthors Action = "report_authors"
	ActionReportYears   Action = "report_years"
	ActionReportRecent  Action = "report_recent"

	// Edit mode control chords
	ActionSaveEdit   Action = "save_edit"
	ActionCancelEdit Action = "cancel_edit"
	ActionForceQuit  Action = "force_quit"

	// Text editing
	ActionInsertChar  Action = "insert_char"
	ActionDeleteChar  Action = "delete_char"
	ActionBackspace   Action = "backspace"
	ActionNewLine     Action = "new_line"
	ActionCursorLeft  Action = "cursor_left"
	ActionCursorRight Action = "cursor_right"
	ActionCursorUp    Action = "cursor_up"
	ActionCursorDown  Action = "cursor_down"
	ActionLineStart   Action = "line_start"
	ActionLineEnd     Action = "line_end"
	ActionClearLine   Action = "clear_line"
	ActionDeleteToEnd Action = "delete_to_end"
	ActionDeleteWord  Action = "delete_word"

	// Confirmation
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"

	// Unbound keys resolve to this
	ActionIgnore Action = "ignore"
)

// Destructive reports whether an action can mutate stored data or end the
// process. Used by tests to assert such actions stay confined to the Normal
// mode tables (plus the Edit force-quit chord).
func (a Action) Destructive() bool {
	switch a {
	case ActionQuit, ActionForceQuit, ActionDelete, ActionAddBook, ActionEditBook:
		return true
	}
	return false
}
