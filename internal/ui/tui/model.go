package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/ospurge/internal/purge"
)

// KindRow is the display state of one resource kind.
type KindRow struct {
	Kind      purge.Kind
	Found     int
	Deleted   int
	Tolerated int
	Active    bool
	Done      bool
}

// Model is the Bubble Tea model for the purge progress view.
type Model struct {
	Project string
	Kinds   []KindRow

	ProjectDeleted bool
	LastResource   string

	StartTime    time.Time
	SpinnerFrame int

	// UI state
	Width  int
	Err    error
	Done   bool
	Result *purge.Result
}

// NewPurgeModel creates a model listing every kind in purge order.
func NewPurgeModel(project string) Model {
	rows := make([]KindRow, 0, len(purge.Order))
	for _, k := range purge.Order {
		rows = append(rows, KindRow{Kind: k})
	}
	return Model{
		Project:   project,
		Kinds:     rows,
		StartTime: time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case EventMsg:
		m.applyEvent(msg.Event)

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case DoneMsg:
		m.Done = true
		m.Result = msg.Result
		if msg.Err != nil {
			m.Err = msg.Err
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) applyEvent(e purge.Event) {
	row := m.row(e.Kind)
	switch e.Type {
	case purge.EventKindStarted:
		for i := range m.Kinds {
			if m.Kinds[i].Active {
				m.Kinds[i].Active = false
				m.Kinds[i].Done = true
			}
		}
		if row != nil {
			row.Found = e.Count
			row.Active = true
		}
	case purge.EventResourceDeleted:
		if row != nil {
			row.Deleted++
		}
		if e.Resource != nil {
			m.LastResource = e.Resource.String()
		}
	case purge.EventConflictTolerated:
		if row != nil {
			row.Tolerated++
		}
	case purge.EventKindCompleted:
		if row != nil {
			row.Active = false
			row.Done = true
		}
	case purge.EventProjectDeleted:
		m.ProjectDeleted = true
	case purge.EventPurgeFailed:
		m.Err = e.Err
	}
}

func (m *Model) row(kind purge.Kind) *KindRow {
	for i := range m.Kinds {
		if m.Kinds[i].Kind == kind {
			return &m.Kinds[i]
		}
	}
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
