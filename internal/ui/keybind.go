package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty = all modes
}

func (b binding) appliesTo(mode AppMode) bool {
	if len(b.modes) == 0 {
		return true
	}
	for _, m := range b.modes {
		if m == mode {
			return true
		}
	}
	return false
}

// KeybindRegistry maps keys to commands. Keys use tea.KeyMsg.String()
// notation ("j", "esc", "ctrl+c"); several keys may share one command.
type KeybindRegistry struct {
	bindings map[string]binding
	order    []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers a key for all modes without a help entry.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDescForMode(k, cmd, "", nil)
}

// BindWithDesc registers a key for all modes with a description for the
// help footer.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(k, cmd, desc, nil)
}

// BindWithDescForMode registers a key that only applies in the given modes.
// If modes is empty, the binding applies to all modes.
func (r *KeybindRegistry) BindWithDescForMode(k string, cmd tea.Cmd, desc string, modes []AppMode) {
	if _, ok := r.bindings[k]; !ok {
		r.order = append(r.order, k)
	}
	r.bindings[k] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Lookup returns the command bound to k in mode, or nil.
func (r *KeybindRegistry) Lookup(k string, mode AppMode) tea.Cmd {
	b, ok := r.bindings[k]
	if !ok || !b.appliesTo(mode) {
		return nil
	}
	return b.cmd
}

// Hints returns the described bindings of mode as key.Bindings. Keys sharing
// a description are merged into one entry ("j/down"), in registration order.
func (r *KeybindRegistry) Hints(mode AppMode) []key.Binding {
	var descs []string
	keys := make(map[string][]string)
	for _, k := range r.order {
		b := r.bindings[k]
		if b.cmd == nil || b.desc == "" || !b.appliesTo(mode) {
			continue
		}
		if _, ok := keys[b.desc]; !ok {
			descs = append(descs, b.desc)
		}
		keys[b.desc] = append(keys[b.desc], k)
	}

	out := make([]key.Binding, 0, len(descs))
	for _, d := range descs {
		ks := keys[d]
		out = append(out, key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(strings.Join(ks, "/"), d),
		))
	}
	return out
}

// KeyHandler dispatches key events to the registry for the current mode.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was bound and should not be passed to the page.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	if c := h.Registry.Lookup(msg.String(), mode); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap implements help.KeyMap over the bindings of one mode.
type KeyMap struct {
	registry *KeybindRegistry
	mode     AppMode
}

// NewKeyMap creates a KeyMap for the given registry and mode.
func NewKeyMap(registry *KeybindRegistry, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, mode: mode}
}

// ShortHelp returns the bindings of the mode in registration order.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return km.registry.Hints(km.mode)
}

// FullHelp groups the bindings into columns of at most three, sorted by key.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	sort.SliceStable(short, func(i, j int) bool { return short[i].Help().Key < short[j].Help().Key })
	var cols [][]key.Binding
	for len(short) > 3 {
		cols = append(cols, short[:3])
		short = short[3:]
	}
	return append(cols, short)
}
