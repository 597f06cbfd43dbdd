package openstack

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/snapshots"
	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/volumes"

	"github.com/imamik/ospurge/internal/purge"
)

// ListVolumes lists the volumes of the filter's project.
func (c *Client) ListVolumes(ctx context.Context, f purge.Filter) ([]purge.Handle, error) {
	if err := f.Expect(purge.FieldProjectID); err != nil {
		return nil, err
	}
	pager := volumes.List(c.svc.BlockStorage, volumes.ListOpts{AllTenants: true, TenantID: f.Value})
	return collect(ctx, pager, volumes.ExtractVolumes, func(v volumes.Volume) purge.Handle {
		return purge.Handle{Kind: purge.KindVolume, ID: v.ID, Name: v.Name, ProjectID: v.TenantID}
	})
}

// DeleteVolume deletes a volume. Snapshots are not cascaded; they are
// purged as their own kind.
func (c *Client) DeleteVolume(ctx context.Context, h purge.Handle) error {
	return deleted(volumes.Delete(ctx, c.svc.BlockStorage, h.ID, volumes.DeleteOpts{}).ExtractErr())
}

// ListSnapshots lists the volume snapshots of the filter's project.
func (c *Client) ListSnapshots(ctx context.Context, f purge.Filter) ([]purge.Handle, error) {
	if err := f.Expect(purge.FieldProjectID); err != nil {
		return nil, err
	}
	pager := snapshots.List(c.svc.BlockStorage, snapshots.ListOpts{AllTenants: true, TenantID: f.Value})
	return collect(ctx, pager, snapshots.ExtractSnapshots, func(s snapshots.Snapshot) purge.Handle {
		return purge.Handle{Kind: purge.KindSnapshot, ID: s.ID, Name: s.Name, ProjectID: s.ProjectID}
	})
}

// DeleteSnapshot deletes a volume snapshot.
func (c *Client) DeleteSnapshot(ctx context.Context, h purge.Handle) error {
	return deleted(snapshots.Delete(ctx, c.svc.BlockStorage, h.ID).ExtractErr())
}
