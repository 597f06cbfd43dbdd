// Package tui provides a Bubble Tea terminal UI that follows a purge as it runs.
package tui

import "github.com/imamik/ospurge/internal/purge"

// EventMsg forwards a purge event to the model.
type EventMsg struct {
	Event purge.Event
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// DoneMsg signals that the purge returned.
type DoneMsg struct {
	Result *purge.Result
	Err    error
}
