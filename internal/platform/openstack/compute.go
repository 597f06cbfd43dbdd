package openstack

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/keypairs"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"

	"github.com/imamik/ospurge/internal/purge"
)

// ListServers lists the servers of the filter's project across all tenants.
func (c *Client) ListServers(ctx context.Context, f purge.Filter) ([]purge.Handle, error) {
	if err := f.Expect(purge.FieldProjectID); err != nil {
		return nil, err
	}
	pager := servers.List(c.svc.Compute, servers.ListOpts{AllTenants: true, TenantID: f.Value})
	return collect(ctx, pager, servers.ExtractServers, func(s servers.Server) purge.Handle {
		return purge.Handle{Kind: purge.KindServer, ID: s.ID, Name: s.Name, ProjectID: s.TenantID}
	})
}

// DeleteServer deletes a server.
func (c *Client) DeleteServer(ctx context.Context, h purge.Handle) error {
	return deleted(servers.Delete(ctx, c.svc.Compute, h.ID).ExtractErr())
}

// ListKeypairs lists the keypairs of the authenticated user.
//
// Keypairs belong to users, not projects. They are attributed to the
// project the token is scoped to and returned only when that is the
// filter's project.
func (c *Client) ListKeypairs(ctx context.Context, f purge.Filter) ([]purge.Handle, error) {
	if err := f.Expect(purge.FieldProjectID); err != nil {
		return nil, err
	}
	scope, err := c.ScopeProject(ctx)
	if err != nil {
		return nil, err
	}
	if scope == nil || scope.ID != f.Value {
		c.log.V(1).Info("Skipping keypairs of a user scoped to another project", "projectID", f.Value)
		return nil, nil
	}

	pager := keypairs.List(c.svc.Compute, keypairs.ListOpts{})
	return collect(ctx, pager, keypairs.ExtractKeyPairs, func(k keypairs.KeyPair) purge.Handle {
		return purge.Handle{Kind: purge.KindKeypair, ID: k.Name, Name: k.Name, ProjectID: scope.ID}
	})
}

// DeleteKeypair deletes a keypair of the authenticated user.
func (c *Client) DeleteKeypair(ctx context.Context, h purge.Handle) error {
	return deleted(keypairs.Delete(ctx, c.svc.Compute, h.ID, keypairs.DeleteOpts{}).ExtractErr())
}
