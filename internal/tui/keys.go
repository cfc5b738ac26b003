package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal = "global"
	scopeEntry  = "entry"
	scopeShell  = "shell"
	scopeDrawer = "drawer"
	scopeMenu   = "menu"
	scopeSearch = "search"
)

const (
	actionQuit         Action = "quit"
	actionSignIn       Action = "sign_in"
	actionToggleDrawer Action = "toggle_drawer"
	actionNavigate     Action = "navigate"
	actionSelect       Action = "select"
	actionQuickFilter  Action = "quick_filter"
	actionOpenMenu     Action = "open_menu"
	actionClose        Action = "close"
	actionSearch       Action = "search"
	actionSubmit       Action = "submit"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	// Global fallback lookup.
	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeEntry, actionSignIn, []string{"enter"}, "sign in")
	reg(scopeEntry, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeShell, actionToggleDrawer, []string{"m", "ctrl+n"}, "menu")
	reg(scopeShell, actionNavigate, []string{"j/k", "j", "k", "up", "down"}, "filter")
	reg(scopeShell, actionSelect, []string{"enter", "space"}, "apply")
	reg(scopeShell, actionQuickFilter, []string{"1-4", "1", "2", "3", "4"}, "sort")
	reg(scopeShell, actionOpenMenu, []string{".", "ctrl+o"}, "more")
	reg(scopeShell, actionSearch, []string{"/"}, "search")
	reg(scopeShell, actionQuit, []string{"q", "ctrl+c"}, "quit")

	// Open drawer on a narrow viewport: esc acts as the backdrop.
	reg(scopeDrawer, actionNavigate, []string{"j/k", "j", "k", "up", "down"}, "filter")
	reg(scopeDrawer, actionSelect, []string{"enter", "space"}, "apply")
	reg(scopeDrawer, actionQuickFilter, []string{"1-4", "1", "2", "3", "4"}, "sort")
	reg(scopeDrawer, actionClose, []string{"esc", "m", "ctrl+n"}, "close")
	reg(scopeDrawer, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeMenu, actionNavigate, []string{"j/k", "j", "k", "up", "down"}, "navigate")
	reg(scopeMenu, actionSelect, []string{"enter"}, "choose")
	reg(scopeMenu, actionClose, []string{"esc", "."}, "close")

	reg(scopeSearch, actionSubmit, []string{"enter"}, "search")
	reg(scopeSearch, actionClose, []string{"esc"}, "cancel")
	reg(scopeSearch, actionQuit, []string{"ctrl+c"}, "quit")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves keyName in scope, falling back to the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}

// navDelta maps a navigate key to a cursor step.
func navDelta(keyName string) int {
	switch normalizeKeyName(keyName) {
	case "k", "up":
		return -1
	case "j", "down":
		return 1
	}
	return 0
}
