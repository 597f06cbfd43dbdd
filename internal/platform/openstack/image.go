package openstack

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"

	"github.com/imamik/ospurge/internal/purge"
)

// ListImages lists the images owned by the filter's project.
func (c *Client) ListImages(ctx context.Context, f purge.Filter) ([]purge.Handle, error) {
	if err := f.Expect(purge.FieldOwner); err != nil {
		return nil, err
	}
	pager := images.List(c.svc.Image, images.ListOpts{Owner: f.Value})
	return collect(ctx, pager, images.ExtractImages, func(i images.Image) purge.Handle {
		return purge.Handle{Kind: purge.KindImage, ID: i.ID, Name: i.Name, ProjectID: i.Owner}
	})
}

// DeleteImage deletes an image.
func (c *Client) DeleteImage(ctx context.Context, h purge.Handle) error {
	return deleted(images.Delete(ctx, c.svc.Image, h.ID).ExtractErr())
}
