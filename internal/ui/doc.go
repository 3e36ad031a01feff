// Package ui is the Bubble Tea front end of the feed client.
//
// Core abstractions:
//   - Page: A screen (login, home timeline, notifications) with its own update loop, drawn into a compose buffer
//   - Panel: A bounded region of the screen and what is drawn into it
//   - Split: Divides a rect by length, percentage and fill constraints
//   - FocusManager: Tracks and rotates focus across form inputs
//   - KeybindRegistry: Per-mode key bindings, also rendered as the help footer
//
// Pages poll their background work once per FrameMsg and never block the
// event loop.
package ui
