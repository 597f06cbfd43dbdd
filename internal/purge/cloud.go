package purge

import "context"

// IdentityAPI resolves and deletes projects.
type IdentityAPI interface {
	// FindProject looks a project up by name or ID.
	// It returns a nil project and no error when nothing matches. An error
	// wrapping ErrProjectNotFound is treated the same way.
	FindProject(ctx context.Context, nameOrID string) (*Project, error)
	DeleteProject(ctx context.Context, projectID string) error
}

// ComputeAPI lists and deletes servers and keypairs.
type ComputeAPI interface {
	ListServers(ctx context.Context, f Filter) ([]Handle, error)
	DeleteServer(ctx context.Context, h Handle) error
	ListKeypairs(ctx context.Context, f Filter) ([]Handle, error)
	DeleteKeypair(ctx context.Context, h Handle) error
}

// BlockStorageAPI lists and deletes volumes and snapshots.
type BlockStorageAPI interface {
	ListVolumes(ctx context.Context, f Filter) ([]Handle, error)
	DeleteVolume(ctx context.Context, h Handle) error
	ListSnapshots(ctx context.Context, f Filter) ([]Handle, error)
	DeleteSnapshot(ctx context.Context, h Handle) error
}

// ImageAPI lists and deletes images.
type ImageAPI interface {
	ListImages(ctx context.Context, f Filter) ([]Handle, error)
	DeleteImage(ctx context.Context, h Handle) error
}

// NetworkAPI lists and deletes networking resources and manages the
// relationships that block port and router deletion.
type NetworkAPI interface {
	ListPorts(ctx context.Context, f Filter) ([]Handle, error)
	DeletePort(ctx context.Context, h Handle) error
	ListNetworks(ctx context.Context, f Filter) ([]Handle, error)
	DeleteNetwork(ctx context.Context, h Handle) error
	ListSubnets(ctx context.Context, f Filter) ([]Handle, error)
	DeleteSubnet(ctx context.Context, h Handle) error
	ListRouters(ctx context.Context, f Filter) ([]Handle, error)
	DeleteRouter(ctx context.Context, h Handle) error
	ListSecurityGroups(ctx context.Context, f Filter) ([]Handle, error)
	DeleteSecurityGroup(ctx context.Context, h Handle) error
	ListFloatingIPs(ctx context.Context, f Filter) ([]Handle, error)
	DeleteFloatingIP(ctx context.Context, h Handle) error

	// ListRouterPorts returns every port whose device_id is the router.
	ListRouterPorts(ctx context.Context, routerID string) ([]Handle, error)
	// RemoveRouterInterface detaches a port from a router.
	RemoveRouterInterface(ctx context.Context, routerID, portID string) error
	// ClearRouterGateway removes the router's external gateway.
	ClearRouterGateway(ctx context.Context, routerID string) error
	// FindFloatingIP returns the floating IP with the given address, or nil.
	FindFloatingIP(ctx context.Context, address string) (*Handle, error)
	// DisassociateFloatingIP clears the floating IP's port binding.
	DisassociateFloatingIP(ctx context.Context, floatingIPID string) error
}

// OrchestrationAPI lists and deletes stacks.
type OrchestrationAPI interface {
	ListStacks(ctx context.Context, f Filter) ([]Handle, error)
	DeleteStack(ctx context.Context, h Handle) error
}

// Cloud is the connection used for a whole purge. Every operation of a run
// goes through the same Cloud.
type Cloud interface {
	IdentityAPI
	ComputeAPI
	BlockStorageAPI
	ImageAPI
	NetworkAPI
	OrchestrationAPI
}
