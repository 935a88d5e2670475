package keybinds

import "testing"

func TestDefaultNormalBindings(t *testing.T) {
	r := NewDefaultRegistry()

	cases := map[string]Action{
		"q":     ActionQuit,
		"a":     ActionAddBook,
		"e":     ActionEditBook,
		"d":     ActionDelete,
		"v":     ActionOpenReview,
		"n":     ActionNewReview,
		"/":     ActionSearch,
		"r":     ActionReport,
		"?":     ActionHelp,
		"j":     ActionMoveDown,
		"k":     ActionMoveUp,
		"enter": ActionSelect,
	}
	for key, want := range cases {
		got, ok := r.Match(ContextNormal, key)
		if !ok || got != want {
			t.Errorf("normal %q = %s (matched=%v), want %s", key, got, ok, want)
		}
	}
}

func TestDefaultEditBindings(t *testing.T) {
	r := NewDefaultRegistry()

	cases := map[string]Action{
		"ctrl+s":    ActionSaveEdit,
		"ctrl+x":    ActionCancelEdit,
		"ctrl+q":    ActionForceQuit,
		"enter":     ActionNewLine,
		"backspace": ActionBackspace,
		"ctrl+w":    ActionDeleteWord,
		"ctrl+k":    ActionDeleteToEnd,
		"ctrl+u":    ActionClearLine,
	}
	for key, want := range cases {
		got, ok := r.Match(ContextEdit, key)
		if !ok || got != want {
			t.Errorf("edit %q = %s (matched=%v), want %s", key, got, ok, want)
		}
	}
}

func TestDefaultConfirmBindings(t *testing.T) {
	r := NewDefaultRegistry()

	for _, key := range []string{"y", "Y", "enter"} {
		if got, _ := r.Match(ContextConfirm, key); got != ActionConfirm {
			t.Errorf("confirm %q = %s, want %s", key, got, ActionConfirm)
		}
	}
	for _, key := range []string{"n", "N", "esc"} {
		if got, _ := r.Match(ContextConfirm, key); got != ActionCancel {
			t.Errorf("confirm %q = %s, want %s", key, got, ActionCancel)
		}
	}
}

// Destructive actions must only be reachable from Normal mode bindings,
// with the single exception of the Edit-mode force-quit chord. A stray
// "d" typed into a search box must never delete a book.
func TestDestructiveActionsConfinedToNormal(t *testing.T) {
	r := NewDefaultRegistry()

	for _, ctx := range Contexts {
		if ctx == ContextNormal {
			continue
		}
		for _, b := range r.Bindings(ctx) {
			if !b.Action.Destructive() {
				continue
			}
			if ctx == ContextEdit && b.Key == "ctrl+q" && b.Action == ActionForceQuit {
				continue
			}
			t.Errorf("destructive action %s reachable via %q in context %s", b.Action, b.Key, ctx)
		}
	}
}

func TestTextModesIgnoreBareLetters(t *testing.T) {
	r := NewDefaultRegistry()

	// Bare letters must stay unbound in text-entry contexts so the
	// resolver can treat them as literal input.
	for _, ctx := range []Context{ContextEdit, ContextSearch, ContextForm} {
		for _, key := range []string{"q", "a", "d", "e", "v", "r"} {
			if _, ok := r.Match(ctx, key); ok {
				t.Errorf("context %s binds letter %q, should pass through as text", ctx, key)
			}
		}
	}
}

func TestPickersOnlyNavigate(t *testing.T) {
	r := NewDefaultRegistry()

	allowed := map[Action]bool{
		ActionBack:     true,
		ActionSelect:   true,
		ActionMoveUp:   true,
		ActionMoveDown: true,
	}
	for _, ctx := range []Context{ContextGenreSelect, ContextYearSelect} {
		for _, b := range r.Bindings(ctx) {
			if !allowed[b.Action] {
				t.Errorf("context %s binds unexpected action %s", ctx, b.Action)
			}
		}
	}
}
