package openstack

import (
	"context"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/orchestration/v1/stacks"
	"github.com/gophercloud/gophercloud/v2/pagination"

	"github.com/imamik/ospurge/internal/purge"
)

// stackListOpts filters the stack listing by owning project. Heat's filter
// key is "tenant"; global_tenant lets an admin see other projects' stacks.
type stackListOpts struct {
	Tenant     string `q:"tenant"`
	AllTenants bool   `q:"global_tenant"`
}

// ToStackListQuery implements stacks.ListOptsBuilder.
func (o stackListOpts) ToStackListQuery() (string, error) {
	q, err := gophercloud.BuildQueryString(o)
	if err != nil {
		return "", err
	}
	return q.String(), nil
}

// listedStack is a stack list entry including its owning project, which
// stacks.ListedStack does not carry.
type listedStack struct {
	ID      string `json:"id"`
	Name    string `json:"stack_name"`
	Project string `json:"project"`
}

func extractStacks(page pagination.Page) ([]listedStack, error) {
	var s struct {
		Stacks []listedStack `json:"stacks"`
	}
	err := gophercloud.Result{Body: page.GetBody()}.ExtractInto(&s)
	return s.Stacks, err
}

// ListStacks lists the Heat stacks of the filter's project. Stacks of other
// projects are only visible when the token is scoped elsewhere, in which
// case the global listing is requested and filtered by tenant.
func (c *Client) ListStacks(ctx context.Context, f purge.Filter) ([]purge.Handle, error) {
	if err := f.Expect(purge.FieldProjectID); err != nil {
		return nil, err
	}
	scope, err := c.ScopeProject(ctx)
	if err != nil {
		return nil, err
	}

	opts := stackListOpts{Tenant: f.Value, AllTenants: scope == nil || scope.ID != f.Value}
	pager := stacks.List(c.svc.Orchestration, opts)
	return collect(ctx, pager, extractStacks, func(s listedStack) purge.Handle {
		return purge.Handle{Kind: purge.KindStack, ID: s.ID, Name: s.Name, ProjectID: s.Project}
	})
}

// DeleteStack deletes a stack. Heat addresses stacks by name and ID.
func (c *Client) DeleteStack(ctx context.Context, h purge.Handle) error {
	return deleted(stacks.Delete(ctx, c.svc.Orchestration, h.Name, h.ID).ExtractErr())
}
