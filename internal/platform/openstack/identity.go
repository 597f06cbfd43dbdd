package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/tokens"

	"github.com/imamik/ospurge/internal/purge"
)

// FindProject resolves a project by ID, then by name. It returns nil when
// nothing matches and an error when the name is ambiguous.
func (c *Client) FindProject(ctx context.Context, nameOrID string) (*purge.Project, error) {
	p, err := projects.Get(ctx, c.svc.Identity, nameOrID).Extract()
	switch {
	case err == nil:
		return toProject(p), nil
	case !IsNotFound(err):
		return nil, classify(err)
	}

	c.log.V(1).Info("No project with that ID, searching by name", "project", nameOrID)
	page, err := projects.List(c.svc.Identity, projects.ListOpts{Name: nameOrID}).AllPages(ctx)
	if err != nil {
		return nil, classify(err)
	}
	found, err := projects.ExtractProjects(page)
	if err != nil {
		return nil, err
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return toProject(&found[0]), nil
	default:
		return nil, fmt.Errorf("%d projects named %s, use the project ID", len(found), nameOrID)
	}
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return deleted(projects.Delete(ctx, c.svc.Identity, projectID).ExtractErr())
}

// ScopeProject returns the project the authentication token is scoped to,
// or nil for an unscoped or domain-scoped token. A successful lookup is
// cached; failures are retried on the next call.
func (c *Client) ScopeProject(ctx context.Context) (*purge.Project, error) {
	c.scopeMu.Lock()
	defer c.scopeMu.Unlock()
	if c.scopeLoaded {
		return c.scope, nil
	}

	token := c.svc.Identity.ProviderClient.Token()
	p, err := tokens.Get(ctx, c.svc.Identity, token).ExtractProject()
	if err != nil {
		return nil, fmt.Errorf("failed to read token scope: %w", classify(err))
	}
	if p != nil && p.ID != "" {
		c.scope = &purge.Project{ID: p.ID, Name: p.Name, DomainID: p.Domain.ID}
	}
	c.scopeLoaded = true
	return c.scope, nil
}

func toProject(p *projects.Project) *purge.Project {
	return &purge.Project{ID: p.ID, Name: p.Name, DomainID: p.DomainID}
}
