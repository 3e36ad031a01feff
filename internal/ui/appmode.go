package ui

// AppMode is the page the app currently shows. Modes follow the order of the
// tab bar.
type AppMode int

const (
	ModeLogin AppMode = iota
	ModeHome
	ModeNotifications
)

func (m AppMode) String() string {
	switch m {
	case ModeLogin:
		return "Login"
	case ModeHome:
		return "Home"
	case ModeNotifications:
		return "Notifications"
	default:
		return "Unknown"
	}
}
