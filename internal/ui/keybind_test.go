package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.BindWithDescForMode("j", tea.Quit, "down", []AppMode{ModeHome})

	if reg.Lookup("q", ModeLogin) == nil {
		t.Error("expected q to be bound in every mode")
	}
	if reg.Lookup("j", ModeLogin) != nil {
		t.Error("expected j to be unbound on the login page")
	}
	if reg.Lookup("j", ModeHome) == nil {
		t.Error("expected j to be bound on the home page")
	}
	if reg.Lookup("unknown", ModeHome) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_HintsMergeKeys(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("j", tea.Quit, "down")
	reg.Bind("x", tea.Quit)
	reg.BindWithDesc("down", tea.Quit, "down")
	reg.BindWithDescForMode("L", tea.Quit, "log out", []AppMode{ModeHome})

	hints := reg.Hints(ModeLogin)
	if len(hints) != 1 {
		t.Fatalf("expected 1 hint on the login page, got %d", len(hints))
	}
	if got := hints[0].Help().Key; got != "j/down" {
		t.Errorf("hint key = %q, want %q", got, "j/down")
	}
	if got := hints[0].Keys(); len(got) != 2 {
		t.Errorf("hint keys = %v", got)
	}
	if got := len(reg.Hints(ModeHome)); got != 2 {
		t.Errorf("expected 2 hints on the home page, got %d", got)
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("esc", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("esc"), ModeHome)
	if !consumed || cmd == nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("j", tea.Quit, "down", []AppMode{ModeHome})
	h := NewKeyHandler(reg)

	if consumed, _ := h.Handle(keyMsg("j"), ModeLogin); consumed {
		t.Error("j outside its mode should not be consumed")
	}
	if consumed, _ := h.Handle(keyMsg("enter"), ModeHome); consumed {
		t.Error("unbound enter should not be consumed")
	}
}

func TestKeyMap_FullHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	for _, k := range []string{"d", "c", "b", "a"} {
		reg.BindWithDesc(k, tea.Quit, "do "+k)
	}
	cols := NewKeyMap(reg, ModeHome).FullHelp()
	if len(cols) != 2 || len(cols[0]) != 3 || len(cols[1]) != 1 {
		t.Fatalf("unexpected columns %v", cols)
	}
	if cols[0][0].Help().Key != "a" {
		t.Errorf("expected columns sorted by key, got %q first", cols[0][0].Help().Key)
	}
	if NewKeyMap(NewKeybindRegistry(), ModeHome).FullHelp() != nil {
		t.Error("empty registry should have no help")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("1", tea.Quit, "pages")
	reg.BindWithDesc("2", tea.Quit, "pages")
	reg.BindWithDescForMode("g", tea.Quit, "top", []AppMode{ModeHome})
	reg.BindWithDesc("esc", tea.Quit, "quit")

	out := RenderKeybindHelp(reg, ModeLogin, "@alice.test", 60)
	if w := lipgloss.Width(out); w != 60 {
		t.Errorf("footer width = %d, want 60", w)
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"1/2 pages", "esc quit", "@alice.test"} {
		if !strings.Contains(plain, want) {
			t.Errorf("footer %q missing %q", plain, want)
		}
	}
	if strings.Contains(plain, "top") {
		t.Errorf("footer %q shows a home binding on the login page", plain)
	}
	if !strings.HasSuffix(plain, "@alice.test") {
		t.Errorf("status should be right-aligned: %q", plain)
	}
	if RenderKeybindHelp(reg, ModeLogin, "", 0) != "" {
		t.Error("zero width should render nothing")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
