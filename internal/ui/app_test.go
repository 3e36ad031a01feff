package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"skyfeed/internal/bsky"
)

func newTestApp(t *testing.T) (*AppModel, tea.Model) {
	t.Helper()
	client := bsky.NewClient("http://127.0.0.1:1", bsky.NewFileStore(t.TempDir()))
	a := NewAppModel(context.Background(), client, nil)
	return a, a.AsTeaModel()
}

// run feeds msg to m and then every message its command produces, one level
// deep, the way the Bubble Tea loop would.
func run(m tea.Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	if cmd == nil {
		return nil
	}
	next := cmd()
	if _, ok := next.(tea.QuitMsg); ok {
		return cmd
	}
	if next != nil {
		_, cmd = m.Update(next)
	}
	return cmd
}

func TestAppModel_StartsOnLogin(t *testing.T) {
	a, _ := newTestApp(t)
	if a.Mode != ModeLogin {
		t.Errorf("mode = %v, want Login", a.Mode)
	}
	if _, ok := a.Pages[ModeHome]; ok {
		t.Error("home page must not exist before login")
	}
}

func TestAppModel_SwitchNeedsPage(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(SwitchModeMsg{Mode: ModeHome})
	if a.Mode != ModeLogin {
		t.Errorf("switched to %v without a session", a.Mode)
	}
}

func TestAppModel_LoginSwitchesToHome(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(LoggedInMsg{})
	if a.Mode != ModeHome {
		t.Fatalf("mode = %v, want Home", a.Mode)
	}
	if _, ok := a.Pages[ModeNotifications]; !ok {
		t.Error("notifications page should exist after login")
	}

	run(m, keyMsg("3"))
	if a.Mode != ModeNotifications {
		t.Errorf("mode = %v after 3, want Notifications", a.Mode)
	}
	run(m, keyMsg("1"))
	if a.Mode != ModeLogin {
		t.Errorf("mode = %v after 1, want Login", a.Mode)
	}
}

func TestAppModel_FeedBindings(t *testing.T) {
	a, m := newTestApp(t)
	if cmd := a.KeyHandler.Registry.Lookup("L", ModeLogin); cmd != nil {
		t.Error("log out must not be bound on the login page")
	}

	m.Update(LoggedInMsg{})
	_, cmd := m.Update(keyMsg("j"))
	if cmd == nil {
		t.Fatal("j should be bound on the home page")
	}
	if msg, ok := cmd().(ScrollMsg); !ok || msg.Delta != 1 {
		t.Errorf("j produced %#v", cmd())
	}
	_, cmd = m.Update(keyMsg("g"))
	if msg, ok := cmd().(ScrollMsg); !ok || !msg.Top {
		t.Errorf("g produced %#v", cmd())
	}
}

func TestAppModel_FocusedInputTakesKeys(t *testing.T) {
	a, m := newTestApp(t)
	m.Init()
	login := a.Pages[ModeLogin].(*LoginPage)

	m.Update(keyMsg("2"))
	if got := login.identifier.Value(); got != "2" {
		t.Errorf("identifier = %q, want the typed key", got)
	}

	_, cmd := m.Update(keyMsg("esc"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("esc inside the form should drop focus, not quit")
		}
	}
	if login.CapturesInput() {
		t.Error("esc should drop focus")
	}

	_, cmd = m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc without focus should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc without focus should quit")
	}
}

func TestAppModel_CtrlCAlwaysQuits(t *testing.T) {
	_, m := newTestApp(t)
	m.Init()
	_, cmd := m.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit even while typing")
	}
}

func TestAppModel_LoggedOut(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(LoggedInMsg{})
	old := a.Pages[ModeLogin]

	m.Update(LoggedOutMsg{})
	if a.Mode != ModeLogin {
		t.Errorf("mode = %v, want Login", a.Mode)
	}
	if _, ok := a.Pages[ModeHome]; ok {
		t.Error("home page should be dropped on logout")
	}
	if a.Pages[ModeLogin] == old {
		t.Error("logout should start a fresh login form")
	}
}

func TestAppModel_View(t *testing.T) {
	_, m := newTestApp(t)
	if m.View() != "" {
		t.Error("view before the first WindowSizeMsg should be empty")
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) != 24 {
		t.Fatalf("got %d lines, want 24", len(lines))
	}
	out := strings.Join(lines, "\n")
	for _, want := range []string{"1. Login", "2. Home", "esc/ctrl+c quit", "handle or email"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\r") {
		t.Error("view should use plain newlines")
	}
}
