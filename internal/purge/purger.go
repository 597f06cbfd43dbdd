package purge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
)

// Options selects the purge target and behavior.
type Options struct {
	// Project is the name or ID of the project to purge.
	Project string
	// KeepProject purges the resources but leaves the project in place.
	KeepProject bool
	// Check resolves the project and reports what would happen without
	// deleting anything.
	Check bool
}

// Purger runs the full purge sequence against one Cloud.
type Purger struct {
	cloud    Cloud
	log      logr.Logger
	observer Observer
	now      func() time.Time
}

// Option configures a Purger.
type Option func(*Purger)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(p *Purger) {
		p.log = log
	}
}

// WithObserver sets the event observer.
func WithObserver(observer Observer) Option {
	return func(p *Purger) {
		if observer != nil {
			p.observer = observer
		}
	}
}

// New creates a Purger that issues every call through cloud.
func New(cloud Cloud, opts ...Option) *Purger {
	p := &Purger{
		cloud:    cloud,
		log:      logr.Discard(),
		observer: nopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run purges the project named in opts.
//
// The returned Result is never nil. On failure it carries Failed and the
// error text, and the error is returned as well. Resources deleted before a
// failure stay deleted.
func (p *Purger) Run(ctx context.Context, opts Options) (*Result, error) {
	start := p.now()
	res := &Result{Project: opts.Project, CheckMode: opts.Check}

	fail := func(err error) (*Result, error) {
		res.Failed = true
		res.Changed = false
		res.Msg = err.Error()
		res.Duration = p.now().Sub(start)
		p.observer.Event(Event{Type: EventPurgeFailed, Project: opts.Project, Err: err, Timestamp: p.now()})
		return res, err
	}

	if opts.Project == "" {
		return fail(errors.New("project name is required"))
	}

	p.log.V(1).Info("Looking up project", "project", opts.Project)
	project, err := p.cloud.FindProject(ctx, opts.Project)
	if err != nil && !errors.Is(err, ErrProjectNotFound) {
		return fail(fmt.Errorf("failed to look up project %s: %w", opts.Project, err))
	}
	if project == nil {
		return fail(fmt.Errorf("%w: %s", ErrProjectNotFound, opts.Project))
	}
	res.ProjectID = project.ID
	p.log.V(1).Info("Found project", "project", opts.Project, "projectID", project.ID)

	if opts.Check {
		res.Changed = true
		res.Msg = MsgCheckMode
		res.Duration = p.now().Sub(start)
		return res, nil
	}

	log := p.log.WithValues("project", opts.Project, "projectID", project.ID)
	enumerator := NewEnumerator(p.cloud, log)
	deleter := NewDeleter(p.cloud, log, p.observer)

	p.observer.Event(Event{Type: EventPurgeStarted, Project: opts.Project, Timestamp: p.now()})
	res.Deleted = make(map[Kind]int, len(Order))
	for _, kind := range Order {
		log.V(1).Info("Processing resource type", "kind", kind)
		handles, err := enumerator.Enumerate(ctx, kind, project.ID)
		if err != nil {
			return fail(err)
		}

		p.observer.Event(Event{Type: EventKindStarted, Project: opts.Project, Kind: kind, Count: len(handles), Timestamp: p.now()})
		if len(handles) > 0 {
			log.Info("Deleting resources", "kind", kind, "count", len(handles))
			out, err := deleter.DeleteAll(ctx, kind, handles)
			res.record(kind, out)
			if err != nil {
				return fail(err)
			}
		} else {
			res.record(kind, Outcome{})
		}
		p.observer.Event(Event{Type: EventKindCompleted, Project: opts.Project, Kind: kind, Count: res.Deleted[kind], Timestamp: p.now()})
	}

	if !opts.KeepProject {
		log.Info("Deleting project")
		if err := p.cloud.DeleteProject(ctx, project.ID); err != nil {
			return fail(fmt.Errorf("failed to delete project %s: %w", opts.Project, err))
		}
		res.ProjectDeleted = true
		p.observer.Event(Event{Type: EventProjectDeleted, Project: opts.Project, Timestamp: p.now()})
	}

	res.Changed = true
	res.Msg = fmt.Sprintf("Project %s purged successfully", opts.Project)
	res.Duration = p.now().Sub(start)
	p.observer.Event(Event{Type: EventPurgeCompleted, Project: opts.Project, Count: res.Total(), Timestamp: p.now()})
	log.Info("Purge complete", "deleted", res.Total(), "toleratedConflicts", len(res.Tolerated))
	return res, nil
}
