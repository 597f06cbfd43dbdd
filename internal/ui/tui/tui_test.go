package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ospurge/internal/purge"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{3600 * time.Second, "1h0m"},
		{3661 * time.Second, "1h1m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d), "formatDuration(%v)", tt.d)
	}
}

func TestNewPurgeModel(t *testing.T) {
	t.Parallel()
	m := NewPurgeModel("demo")
	require.Len(t, m.Kinds, len(purge.Order))
	for i, k := range purge.Order {
		assert.Equal(t, k, m.Kinds[i].Kind)
	}
	assert.InDelta(t, 0.0, calculateProgress(m), 0.001)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelFollowsEvents(t *testing.T) {
	t.Parallel()
	m := NewPurgeModel("demo")

	m = update(t, m, EventMsg{Event: purge.Event{Type: purge.EventKindStarted, Kind: purge.KindServer, Count: 2}})
	assert.True(t, m.Kinds[0].Active)
	assert.Equal(t, 2, m.Kinds[0].Found)

	server := purge.Handle{Kind: purge.KindServer, ID: "s1", Name: "web"}
	m = update(t, m, EventMsg{Event: purge.Event{Type: purge.EventResourceDeleted, Kind: purge.KindServer, Resource: &server}})
	assert.Equal(t, 1, m.Kinds[0].Deleted)
	assert.Equal(t, "server web (s1)", m.LastResource)

	m = update(t, m, EventMsg{Event: purge.Event{Type: purge.EventKindCompleted, Kind: purge.KindServer}})
	assert.True(t, m.Kinds[0].Done)
	assert.False(t, m.Kinds[0].Active)
	assert.InDelta(t, 1.0/float64(len(purge.Order)), calculateProgress(m), 0.001)

	m = update(t, m, EventMsg{Event: purge.Event{Type: purge.EventConflictTolerated, Kind: purge.KindPort}})
	assert.Equal(t, 1, m.Kinds[4].Tolerated)

	m = update(t, m, EventMsg{Event: purge.Event{Type: purge.EventProjectDeleted}})
	assert.True(t, m.ProjectDeleted)
}

func TestModelDone(t *testing.T) {
	t.Parallel()

	res := &purge.Result{Changed: true}
	next, cmd := NewPurgeModel("demo").Update(DoneMsg{Result: res})
	m := next.(Model)
	assert.True(t, m.Done)
	assert.Same(t, res, m.Result)
	assert.NotNil(t, cmd)
	assert.InDelta(t, 1.0, calculateProgress(m), 0.001)

	failure := errors.New("failed to delete volumes: boom")
	m = update(t, NewPurgeModel("demo"), DoneMsg{Err: failure})
	assert.True(t, m.Done)
	assert.Equal(t, failure, m.Err)
}

func TestView(t *testing.T) {
	t.Parallel()
	m := NewPurgeModel("demo")
	m = update(t, m, EventMsg{Event: purge.Event{Type: purge.EventKindStarted, Kind: purge.KindServer, Count: 3}})

	out := m.View()
	assert.Contains(t, out, "ospurge: demo")
	assert.Contains(t, out, "Purging")
	assert.Contains(t, out, "0/3 deleted")
	for _, k := range purge.Order {
		assert.Contains(t, out, string(k))
	}

	m = update(t, m, DoneMsg{Err: errors.New("boom")})
	assert.True(t, strings.Contains(m.View(), "Error: boom"))
}

func TestKindIcon(t *testing.T) {
	t.Parallel()

	icon, _ := kindIcon(KindRow{}, 0)
	assert.Equal(t, pending, icon)
	icon, _ = kindIcon(KindRow{Done: true, Found: 2, Deleted: 2}, 0)
	assert.Equal(t, checkMark, icon)
	icon, _ = kindIcon(KindRow{Done: true, Found: 2, Deleted: 1, Tolerated: 1}, 0)
	assert.Equal(t, warnMark, icon)
	icon, _ = kindIcon(KindRow{Done: true, Found: 2, Deleted: 1}, 0)
	assert.Equal(t, crossMark, icon)
	icon, _ = kindIcon(KindRow{Active: true}, 1)
	assert.Equal(t, spinnerFrames[1], icon)
}

func TestRunPurgeTUI_InterruptWaitsForPurge(t *testing.T) {
	orig := programOptions
	t.Cleanup(func() { programOptions = orig })
	programOptions = []tea.ProgramOption{
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var finished atomic.Bool
	res, err := RunPurgeTUI("demo", cancel, func(purge.Observer) (*purge.Result, error) {
		<-ctx.Done()
		finished.Store(true)
		return nil, ctx.Err()
	})

	require.ErrorIs(t, err, ErrInterrupted)
	assert.Nil(t, res)
	assert.True(t, finished.Load(), "purge must have returned before the view reports the interruption")
}
