package purge

import "time"

// EventType is the type of purge event.
type EventType string

const (
	// EventPurgeStarted is emitted once the project has been resolved.
	EventPurgeStarted EventType = "purge.started"
	// EventPurgeCompleted is emitted after a successful purge.
	EventPurgeCompleted EventType = "purge.completed"
	// EventPurgeFailed is emitted when the purge aborts.
	EventPurgeFailed EventType = "purge.failed"

	// EventKindStarted is emitted after a kind has been enumerated.
	EventKindStarted EventType = "kind.started"
	// EventKindCompleted is emitted when every handle of a kind was processed.
	EventKindCompleted EventType = "kind.completed"

	// EventResourceDeleted is emitted for each deleted resource.
	EventResourceDeleted EventType = "resource.deleted"
	// EventConflictTolerated is emitted when a port conflict is ignored.
	EventConflictTolerated EventType = "resource.conflict_tolerated"

	// EventProjectDeleted is emitted after the project itself is deleted.
	EventProjectDeleted EventType = "project.deleted"
)

// Event is a structured purge event.
type Event struct {
	Type      EventType
	Project   string
	Kind      Kind
	Resource  *Handle
	Count     int
	Err       error
	Timestamp time.Time
}

// Observer receives purge events. Implementations must not block.
type Observer interface {
	Event(event Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Event implements Observer.
func (f ObserverFunc) Event(event Event) { f(event) }

// Observers fans an event out to several observers.
type Observers []Observer

// Event implements Observer.
func (o Observers) Event(event Event) {
	for _, obs := range o {
		if obs != nil {
			obs.Event(event)
		}
	}
}

type nopObserver struct{}

func (nopObserver) Event(Event) {}
