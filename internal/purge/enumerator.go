package purge

import (
	"context"

	"github.com/go-logr/logr"
)

// Enumerator lists the resources of one kind owned by a project.
type Enumerator struct {
	cloud Cloud
	log   logr.Logger
}

// NewEnumerator creates an Enumerator backed by cloud.
func NewEnumerator(cloud Cloud, log logr.Logger) *Enumerator {
	return &Enumerator{cloud: cloud, log: log}
}

// Enumerate returns the handles of kind owned by projectID.
//
// Servers, volumes and snapshots use the detailed listing. Images are
// filtered on owner, every other kind on project_id. Handles reporting a
// different owning project are dropped. Any API error is returned as a
// *KindError.
func (e *Enumerator) Enumerate(ctx context.Context, kind Kind, projectID string) ([]Handle, error) {
	ops, err := kind.ops()
	if err != nil {
		return nil, err
	}

	e.log.V(1).Info("Gathering resources", "kind", kind, "projectID", projectID)
	listed, err := ops.list(e.cloud, ctx, kind.Filter(projectID))
	if err != nil {
		e.log.V(1).Info("Failed to gather resources", "kind", kind, "error", err.Error())
		return nil, &KindError{Kind: kind, Op: OpList, Err: err}
	}

	handles := make([]Handle, 0, len(listed))
	for _, h := range listed {
		if h.Kind == "" {
			h.Kind = kind
		}
		if !h.ownedBy(projectID) {
			e.log.Info("Skipping resource not owned by the project", "kind", kind, "id", h.ID, "owner", h.ProjectID)
			continue
		}
		handles = append(handles, h)
	}
	return handles, nil
}
