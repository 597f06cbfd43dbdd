package openstack

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"
	"github.com/gophercloud/gophercloud/v2/openstack/config"
	"github.com/gophercloud/gophercloud/v2/openstack/config/clouds"
	"github.com/gophercloud/gophercloud/v2/pagination"

	"github.com/imamik/ospurge/internal/purge"
)

// Services holds one service client per OpenStack API the purge touches.
type Services struct {
	Compute       *gophercloud.ServiceClient
	BlockStorage  *gophercloud.ServiceClient
	Image         *gophercloud.ServiceClient
	Network       *gophercloud.ServiceClient
	Orchestration *gophercloud.ServiceClient
	Identity      *gophercloud.ServiceClient
}

// Client implements purge.Cloud using gophercloud.
type Client struct {
	svc Services
	log logr.Logger

	scopeMu     sync.Mutex
	scopeLoaded bool
	scope       *purge.Project
}

var _ purge.Cloud = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for per-request debug output.
func WithLogger(log logr.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a Client from already authenticated service clients.
func NewClient(svc Services, opts ...ClientOption) *Client {
	c := &Client{svc: svc, log: logr.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect authenticates against the clouds.yaml entry named cloud and
// creates the service clients for every API the purge uses.
func Connect(ctx context.Context, cloud string, opts ...ClientOption) (*Client, error) {
	if cloud == "" {
		return nil, fmt.Errorf("cloud name is required")
	}

	authOpts, endpointOpts, tlsConfig, err := clouds.Parse(clouds.WithCloudName(cloud))
	if err != nil {
		return nil, fmt.Errorf("failed to load cloud %s from clouds.yaml: %w", cloud, err)
	}

	provider, err := config.NewProviderClient(ctx, authOpts, config.WithTLSConfig(tlsConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate to cloud %s: %w", cloud, err)
	}

	var svc Services
	constructors := []struct {
		name   string
		target **gophercloud.ServiceClient
		newFn  func(*gophercloud.ProviderClient, gophercloud.EndpointOpts) (*gophercloud.ServiceClient, error)
	}{
		{"compute", &svc.Compute, openstack.NewComputeV2},
		{"block storage", &svc.BlockStorage, openstack.NewBlockStorageV3},
		{"image", &svc.Image, openstack.NewImageV2},
		{"network", &svc.Network, openstack.NewNetworkV2},
		{"orchestration", &svc.Orchestration, openstack.NewOrchestrationV1},
		{"identity", &svc.Identity, openstack.NewIdentityV3},
	}
	for _, ctor := range constructors {
		client, err := ctor.newFn(provider, endpointOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", ctor.name, err)
		}
		*ctor.target = client
	}

	return NewClient(svc, opts...), nil
}

// collect drains a pager and converts every item to a handle.
func collect[T any](
	ctx context.Context,
	pager pagination.Pager,
	extract func(pagination.Page) ([]T, error),
	toHandle func(T) purge.Handle,
) ([]purge.Handle, error) {
	page, err := pager.AllPages(ctx)
	if err != nil {
		return nil, classify(err)
	}
	items, err := extract(page)
	if err != nil {
		return nil, err
	}

	handles := make([]purge.Handle, 0, len(items))
	for _, item := range items {
		handles = append(handles, toHandle(item))
	}
	return handles, nil
}
