package keybinds

import "testing"

func TestRegisterAndMatch(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextNormal, "x", ActionDelete, "test")

	action, ok := r.Match(ContextNormal, "x")
	if !ok {
		t.Fatal("expected binding to match")
	}
	if action != ActionDelete {
		t.Errorf("expected %s, got %s", ActionDelete, action)
	}
}

func TestMatchUnboundKey(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextNormal, "x", ActionDelete, "test")

	action, ok := r.Match(ContextNormal, "z")
	if ok {
		t.Error("expected no match for unbound key")
	}
	if action != ActionIgnore {
		t.Errorf("unbound key should resolve to %s, got %s", ActionIgnore, action)
	}
}

func TestMatchWrongContext(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextNormal, "d", ActionDelete, "test")

	if _, ok := r.Match(ContextEdit, "d"); ok {
		t.Error("binding should not leak into another context")
	}
}

func TestRegisterReplacesExisting(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextNormal, "x", ActionDelete, "first")
	r.Register(ContextNormal, "x", ActionHelp, "second")

	action, _ := r.Match(ContextNormal, "x")
	if action != ActionHelp {
		t.Errorf("expected later registration to win, got %s", action)
	}
}

func TestBindingsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextNormal, "c", ActionCopyReview, "copy")
	r.Register(ContextNormal, "a", ActionAddBook, "add")
	r.Register(ContextNormal, "b", ActionBack, "back")

	bindings := r.Bindings(ContextNormal)
	if len(bindings) != 3 {
		t.Fatalf("expected 3 bindings, got %d", len(bindings))
	}
	for i, want := range []string{"a", "b", "c"} {
		if bindings[i].Key != want {
			t.Errorf("bindings[%d].Key = %s, want %s", i, bindings[i].Key, want)
		}
	}
}

func TestKeysFor(t *testing.T) {
	r := NewDefaultRegistry()

	keys := r.KeysFor(ContextNormal, ActionMoveDown)
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys for move_down, got %v", keys)
	}
	if keys[0] != "down" || keys[1] != "j" {
		t.Errorf("unexpected keys for move_down: %v", keys)
	}
}
