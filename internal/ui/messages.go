package ui

import "time"

// FrameMsg is delivered once per frame. Pages poll their pending work on it.
type FrameMsg struct {
	Time time.Time
}

// LoggedInMsg is sent by the login page once a session is established.
type LoggedInMsg struct{}

// LoggedOutMsg is sent after the session was dropped.
type LoggedOutMsg struct {
	Err error // remote logout failure; the local session is gone either way
}

// SwitchModeMsg asks the app to show another page (keys 1-3).
type SwitchModeMsg struct {
	Mode AppMode
}

// ScrollMsg scrolls the current feed page.
type ScrollMsg struct {
	Delta int
	Top   bool
}
