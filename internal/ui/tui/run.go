package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/imamik/ospurge/internal/purge"
)

// ErrInterrupted is returned when the view is closed before the purge ends.
var ErrInterrupted = errors.New("purge interrupted")

// IsInteractive reports whether stdout is a terminal.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// programOptions are passed to every program started by RunPurgeTUI.
var programOptions []tea.ProgramOption

// RunPurgeTUI runs purgeFn under a Bubble Tea progress view. purgeFn must
// pass the given observer to the purge so its events reach the view and
// must stop once cancel is called. When the user quits early the purge is
// cancelled and RunPurgeTUI waits for it to return before reporting
// ErrInterrupted.
func RunPurgeTUI(project string, cancel context.CancelFunc, purgeFn func(purge.Observer) (*purge.Result, error)) (*purge.Result, error) {
	p := tea.NewProgram(NewPurgeModel(project), programOptions...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		observer := purge.ObserverFunc(func(e purge.Event) {
			p.Send(EventMsg{Event: e})
		})
		res, err := purgeFn(observer)
		p.Send(DoneMsg{Result: res, Err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		cancel()
		<-done
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if !fm.Done {
		cancel()
		<-done
		return nil, ErrInterrupted
	}
	return fm.Result, fm.Err
}
