package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"skyfeed/internal/bsky"
	"skyfeed/internal/compose"
	"skyfeed/internal/logger"
	"skyfeed/internal/pending"
	"skyfeed/internal/ui/widgets"
)

const (
	focusIdentifier = "identifier"
	focusPassword   = "password"
)

var errMissingCredentials = errors.New("enter your handle or email and your password")

var (
	loginErrorStyle = compose.NewStyle().Foreground(ansi.Red)
	loginHintStyle  = compose.NewStyle().Dim(true)
)

// Authenticator is the part of the bsky client the login page needs.
type Authenticator interface {
	Login(ctx context.Context, identifier, password string) error
	ResumeSession(ctx context.Context) error
}

// LoginPage asks for a handle and password. On its first frame it tries to
// resume the stored session instead.
type LoginPage struct {
	ctx  context.Context
	auth Authenticator
	log  *slog.Logger

	identifier textinput.Model
	password   textinput.Model
	focus      *FocusManager
	focusCmd   tea.Cmd

	attempt  *pending.Result[struct{}]
	resumed  bool
	resuming bool
	err      error
	frame    time.Time
}

// NewLoginPage creates the login form.
func NewLoginPage(ctx context.Context, auth Authenticator) *LoginPage {
	p := &LoginPage{ctx: ctx, auth: auth, log: logger.ComponentLogger("login")}

	p.identifier = textinput.New()
	p.identifier.Prompt = ""
	p.identifier.Placeholder = "handle or email"

	p.password = textinput.New()
	p.password.Prompt = ""
	p.password.Placeholder = "password"
	p.password.EchoMode = textinput.EchoPassword
	p.password.EchoCharacter = '·'

	p.focus = &FocusManager{
		Order:    []string{focusIdentifier, focusPassword},
		OnChange: p.applyFocus,
	}
	return p
}

func (p *LoginPage) input(id string) *textinput.Model {
	switch id {
	case focusIdentifier:
		return &p.identifier
	case focusPassword:
		return &p.password
	}
	return nil
}

func (p *LoginPage) applyFocus(from, to string) {
	if in := p.input(from); in != nil {
		in.Blur()
	}
	if in := p.input(to); in != nil {
		p.focusCmd = in.Focus()
	}
}

func (p *LoginPage) takeFocusCmd() tea.Cmd {
	cmd := p.focusCmd
	p.focusCmd = nil
	return cmd
}

// Init focuses the identifier input.
func (p *LoginPage) Init() tea.Cmd {
	p.focus.SetFocus(focusIdentifier)
	return p.takeFocusCmd()
}

// CapturesInput reports whether one of the inputs has focus.
func (p *LoginPage) CapturesInput() bool { return p.focus.Focused() }

// Err is the error shown under the form, if any.
func (p *LoginPage) Err() error { return p.err }

// Loading reports whether a login or resume attempt is in flight.
func (p *LoginPage) Loading() bool { return p.attempt.IsLoading() }

func (p *LoginPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		p.frame = msg.Time
		return p, p.poll()
	case tea.KeyMsg:
		if p.attempt.IsLoading() {
			return p, nil
		}
		switch msg.String() {
		case "tab", "down":
			p.focus.Next()
			return p, p.takeFocusCmd()
		case "shift+tab", "up":
			p.focus.Prev()
			return p, p.takeFocusCmd()
		case "esc":
			p.focus.Blur()
			return p, nil
		case "enter":
			return p, p.submit()
		}
	}

	var cmd tea.Cmd
	switch p.focus.Current {
	case focusIdentifier:
		p.identifier, cmd = p.identifier.Update(msg)
	case focusPassword:
		p.password, cmd = p.password.Update(msg)
	}
	return p, cmd
}

func (p *LoginPage) start(fn func(context.Context) error) {
	p.attempt = pending.Start(p.ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
}

func (p *LoginPage) submit() tea.Cmd {
	if !p.attempt.IsEmpty() {
		return nil
	}
	identifier := strings.TrimSpace(p.identifier.Value())
	password := p.password.Value()
	if identifier == "" || password == "" {
		p.err = errMissingCredentials
		if identifier == "" {
			p.focus.SetFocus(focusIdentifier)
		} else {
			p.focus.SetFocus(focusPassword)
		}
		return p.takeFocusCmd()
	}

	p.err = nil
	p.focus.Blur()
	p.start(func(ctx context.Context) error {
		return p.auth.Login(ctx, identifier, password)
	})
	return nil
}

// poll starts the session resume on the first frame and collects the outcome
// of the running attempt.
func (p *LoginPage) poll() tea.Cmd {
	if !p.resumed {
		p.resumed = true
		p.resuming = true
		p.start(p.auth.ResumeSession)
		return nil
	}
	_, err, ok := p.attempt.Take()
	if !ok {
		return nil
	}
	resuming := p.resuming
	p.resuming = false

	if err != nil {
		if resuming && errors.Is(err, bsky.ErrNoSession) {
			p.log.Debug("no stored session")
		} else {
			p.log.Warn("login failed", "err", err)
			p.err = err
		}
		if p.identifier.Value() == "" {
			p.focus.SetFocus(focusIdentifier)
		} else {
			p.focus.SetFocus(focusPassword)
		}
		return p.takeFocusCmd()
	}

	p.err = nil
	p.password.Reset()
	p.focus.Blur()
	return func() tea.Msg { return LoggedInMsg{} }
}

func (p *LoginPage) Render(area compose.Rect, buf *compose.Buffer) {
	cols := Split(area, Horizontal, 0, Fill(1), Fill(2), Fill(1))
	rows := Split(cols[1], Vertical, 1, Percentage(30), Length(3), Length(3), Length(3), Fill(1))

	renderInput(rows[1], buf, &p.identifier)
	renderInput(rows[2], buf, &p.password)

	status := rows[3]
	var text compose.Text
	switch {
	case p.attempt.IsLoading():
		widgets.SpinnerAt(p.frame).Render(status, buf)
		return
	case p.err != nil:
		text = compose.StyledText(p.err.Error(), loginErrorStyle)
	case !p.focus.Focused():
		text = compose.StyledText("tab: edit  esc: quit", loginHintStyle)
	default:
		text = compose.StyledText("enter: log in  tab: next field  esc: leave form", loginHintStyle)
	}
	s := compose.NewStore()
	text.Align(compose.AlignCenter).Store(status, s)
	s.Render(status, buf)
}

// renderInput draws a text input in a rounded box filling area.
func renderInput(area compose.Rect, buf *compose.Buffer, in *textinput.Model) {
	if area.Width < 5 || area.Height < 3 {
		return
	}
	// Border and padding take four columns, the cursor one more.
	in.Width = area.Width - 5
	style := Styles.Input
	if in.Focused() {
		style = Styles.InputFocused
	}
	compose.ANSI(style.Width(area.Width - 2).Render(in.View())).Render(area, buf)
}
