package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"skyfeed/internal/bsky"
	"skyfeed/internal/compose"
	"skyfeed/internal/config"
	"skyfeed/internal/logger"
	"skyfeed/internal/ui/widgets"
)

// tabs lists the tab bar entries in AppMode order; the last one has no page.
var tabs = []string{"1. Login", "2. Home", "3. Notifications", "4. Settings"}

// AppModel is the root model. It owns one page per mode, switches between
// them, and draws the tab bar and help footer around the current one.
type AppModel struct {
	Mode       AppMode
	Pages      map[AppMode]Page
	KeyHandler *KeyHandler
	Client     *bsky.Client
	Config     *config.Config

	ctx           context.Context
	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model showing the login page.
func NewAppModel(ctx context.Context, client *bsky.Client, cfg *config.Config) *AppModel {
	a := &AppModel{
		Mode:   ModeLogin,
		Pages:  make(map[AppMode]Page),
		Client: client,
		Config: cfg,
		ctx:    ctx,
	}
	a.Pages[ModeLogin] = NewLoginPage(ctx, client)
	a.KeyHandler = NewKeyHandler(a.keybinds())
	return a
}

func (a *AppModel) keybinds() *KeybindRegistry {
	feeds := []AppMode{ModeHome, ModeNotifications}
	scroll := func(msg ScrollMsg) tea.Cmd { return func() tea.Msg { return msg } }
	switchTo := func(m AppMode) tea.Cmd { return func() tea.Msg { return SwitchModeMsg{Mode: m} } }

	reg := NewKeybindRegistry()
	reg.BindWithDesc("1", switchTo(ModeLogin), "pages")
	reg.BindWithDesc("2", switchTo(ModeHome), "pages")
	reg.BindWithDesc("3", switchTo(ModeNotifications), "pages")
	reg.BindWithDescForMode("j", scroll(ScrollMsg{Delta: 1}), "down", feeds)
	reg.BindWithDescForMode("down", scroll(ScrollMsg{Delta: 1}), "down", feeds)
	reg.BindWithDescForMode("k", scroll(ScrollMsg{Delta: -1}), "up", feeds)
	reg.BindWithDescForMode("up", scroll(ScrollMsg{Delta: -1}), "up", feeds)
	reg.BindWithDescForMode("g", scroll(ScrollMsg{Top: true}), "top", feeds)
	reg.BindWithDescForMode("L", a.logout, "log out", feeds)
	reg.BindWithDesc("esc", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

func (a *AppModel) frameInterval() time.Duration {
	if a.Config == nil || a.Config.FrameInterval.Duration <= 0 {
		return config.DefaultFrameInterval
	}
	return a.Config.FrameInterval.Duration
}

func (a *AppModel) tick() tea.Cmd {
	return tea.Tick(a.frameInterval(), func(t time.Time) tea.Msg { return FrameMsg{Time: t} })
}

func (a *AppModel) logout() tea.Msg {
	if a.Client == nil {
		return LoggedOutMsg{}
	}
	return LoggedOutMsg{Err: a.Client.Logout(a.ctx)}
}

func (a *AppModel) limits() (timeline, notifications int) {
	if a.Config == nil {
		return bsky.DefaultTimelineLimit, bsky.DefaultNotificationLimit
	}
	return a.Config.TimelineLimit, a.Config.NotificationLimit
}

// startFeeds replaces the feed pages with fresh ones for the new session.
func (a *AppModel) startFeeds() {
	a.closeFeeds()
	timeline, notifications := a.limits()
	a.Pages[ModeHome] = NewHomePage(a.ctx, a.Client.TimelinePager(timeline))
	a.Pages[ModeNotifications] = NewNotificationsPage(a.ctx, a.Client.NotificationPager(notifications))
}

func (a *AppModel) closeFeeds() {
	for _, m := range []AppMode{ModeHome, ModeNotifications} {
		if p, ok := a.Pages[m].(interface{ Close() }); ok {
			p.Close()
		}
		delete(a.Pages, m)
	}
}

func (a *AppModel) current() Page { return a.Pages[a.Mode] }

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	var cmd tea.Cmd
	if p := a.current(); p != nil {
		cmd = p.Init()
	}
	return tea.Batch(a.tick(), cmd)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case FrameMsg:
		return a, tea.Batch(a.updatePage(msg), a.tick())
	case LoggedInMsg:
		a.startFeeds()
		a.Mode = ModeHome
		return a, a.current().Init()
	case LoggedOutMsg:
		if msg.Err != nil {
			logger.Warn("logout: %v", msg.Err)
		}
		a.closeFeeds()
		login := NewLoginPage(a.ctx, a.Client)
		a.Pages[ModeLogin] = login
		a.Mode = ModeLogin
		return a, login.Init()
	case SwitchModeMsg:
		if _, ok := a.Pages[msg.Mode]; ok {
			a.Mode = msg.Mode
		}
		return a, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		p := a.current()
		if (p == nil || !p.CapturesInput()) && a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
				return a, keyCmd
			}
		}
	}
	return a, a.updatePage(msg)
}

func (a *AppModel) updatePage(msg tea.Msg) tea.Cmd {
	p := a.current()
	if p == nil {
		return nil
	}
	p, cmd := p.Update(msg)
	a.Pages[a.Mode] = p
	return cmd
}

// screenLayout splits the screen into the tab column, the page and the
// footer row.
func screenLayout(screen compose.Rect) (tabBar, main, footer compose.Rect) {
	rows := Split(Margin(screen, 1), Vertical, 0, Fill(1), Length(1))
	cols := Split(rows[0], Horizontal, 1, Fill(1), Fill(4))
	return cols[0], cols[1], rows[1]
}

func (a *AppModel) tabBar() widgets.TabBar {
	bar := make(widgets.TabBar, len(tabs))
	for i, label := range tabs {
		_, ok := a.Pages[AppMode(i)]
		bar[i] = widgets.Tab{Label: label, Active: ok, Selected: AppMode(i) == a.Mode}
	}
	return bar
}

func (a *AppModel) status() string {
	if a.Client == nil {
		return ""
	}
	if s := a.Client.Session(); s != nil && s.Handle != "" {
		return "@" + s.Handle
	}
	return ""
}

func (a *AppModel) panels(screen compose.Rect) []Panel {
	_, _, footer := screenLayout(screen)
	help := RenderKeybindHelp(a.KeyHandler.Registry, a.Mode, a.status(), footer.Width)
	var page compose.Renderer
	if p := a.current(); p != nil {
		page = p
	}
	return []Panel{
		{
			ID:       "tabs",
			Renderer: a.tabBar(),
			Bounds:   func(s compose.Rect) compose.Rect { r, _, _ := screenLayout(s); return r },
		},
		{
			ID:       "main",
			Renderer: page,
			Bounds:   func(s compose.Rect) compose.Rect { _, r, _ := screenLayout(s); return r },
		},
		{
			ID:       "help",
			Renderer: compose.ANSI(help),
			Bounds:   func(s compose.Rect) compose.Rect { _, _, r := screenLayout(s); return r },
		},
	}
}

// Render draws the whole screen into buf.
func (a *AppModel) Render(screen compose.Rect, buf *compose.Buffer) {
	for _, p := range a.panels(screen) {
		p.Render(screen, buf)
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	screen := compose.NewRect(0, 0, a.width, a.height)
	buf := compose.NewBuffer(screen)
	a.Render(screen, buf)
	return strings.ReplaceAll(buf.Render(), "\r\n", "\n")
}
