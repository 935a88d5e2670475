package keybinds

import "sort"

// Binding maps a key to an action with a human-readable description
type Binding struct {
	Key         string
	Action      Action
	Description string
}

// Registry holds the keybinding tables, one per context. Lookups are pure:
// the same (context, key) pair always resolves to the same action.
type Registry struct {
	bindings map[Context]map[string]Binding
}

// NewRegistry creates an empty keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Binding),
	}
}

// Register adds a keybinding to a context, replacing any existing binding
// for the same key.
func (r *Registry) Register(ctx Context, key string, action Action, description string) {
	if r.bindings[ctx] == nil {
		r.bindings[ctx] = make(map[string]Binding)
	}
	r.bindings[ctx][key] = Binding{
		Key:         key,
		Action:      action,
		Description: description,
	}
}

// Match resolves a key press in a context. The second return is false when
// the key is not bound; callers decide whether that means "ignore" or
// "insert literal text".
func (r *Registry) Match(ctx Context, key string) (Action, bool) {
	if table, ok := r.bindings[ctx]; ok {
		if b, ok := table[key]; ok {
			return b.Action, true
		}
	}
	return ActionIgnore, false
}

// Bindings returns every binding registered for a context, sorted by key.
// Used by the help screen.
func (r *Registry) Bindings(ctx Context) []Binding {
	table := r.bindings[ctx]
	out := make([]Binding, 0, len(table))
	for _, b := range table {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// KeysFor returns the keys bound to an action in a context, sorted. Handy
// for footer hints that show "d delete" style legends.
func (r *Registry) KeysFor(ctx Context, action Action) []string {
	var keys []string
	for key, b := range r.bindings[ctx] {
		if b.Action == action {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
