package purge

import "context"

// MockCloud is a Cloud whose behavior is set per operation. Unset operations
// succeed and list nothing.
type MockCloud struct {
	FindProjectFunc            func(ctx context.Context, nameOrID string) (*Project, error)
	DeleteProjectFunc          func(ctx context.Context, projectID string) error
	ListServersFunc            func(ctx context.Context, f Filter) ([]Handle, error)
	DeleteServerFunc           func(ctx context.Context, h Handle) error
	ListKeypairsFunc           func(ctx context.Context, f Filter) ([]Handle, error)
	DeleteKeypairFunc          func(ctx context.Context, h Handle) error
	ListVolumesFunc            func(ctx context.Context, f Filter) ([]Handle, error)
	DeleteVolumeFunc           func(ctx context.Context, h Handle) error
	ListSnapshotsFunc          func(ctx context.Context, f Filter) ([]Handle, error)
	DeleteSnapshotFunc         func(ctx context.Context, h Handle) error
	ListImagesFunc             func(ctx context.Context, f Filter) ([]Handle, error)
	DeleteImageFunc            func(ctx context.Context, h Handle) error
	ListPortsFunc              func(ctx context.Context, f Filter) ([]Handle, error)
	DeletePortFunc             func(ctx context.Context, h Handle) error
	ListNetworksFunc           func(ctx context.Context, f Filter) ([]Handle, error)
	DeleteNetworkFunc          func(ctx context.Context, h Handle) error
	ListSubnetsFunc            func(ctx context.Context, f Filter) ([]Handle, error)
	DeleteSubnetFunc           func(ctx context.Context, h Handle) error
	ListRoutersFunc            func(ctx context.Context, f Filter) ([]Handle, error)
	DeleteRouterFunc           func(ctx context.Context, h Handle) error
	ListSecurityGroupsFunc     func(ctx context.Context, f Filter) ([]Handle, error)
	DeleteSecurityGroupFunc    func(ctx context.Context, h Handle) error
	ListFloatingIPsFunc        func(ctx context.Context, f Filter) ([]Handle, error)
	DeleteFloatingIPFunc       func(ctx context.Context, h Handle) error
	ListStacksFunc             func(ctx context.Context, f Filter) ([]Handle, error)
	DeleteStackFunc            func(ctx context.Context, h Handle) error
	ListRouterPortsFunc        func(ctx context.Context, routerID string) ([]Handle, error)
	RemoveRouterInterfaceFunc  func(ctx context.Context, routerID, portID string) error
	ClearRouterGatewayFunc     func(ctx context.Context, routerID string) error
	FindFloatingIPFunc         func(ctx context.Context, address string) (*Handle, error)
	DisassociateFloatingIPFunc func(ctx context.Context, floatingIPID string) error
}

var _ Cloud = (*MockCloud)(nil)

// FindProject implements Cloud.
func (m *MockCloud) FindProject(ctx context.Context, nameOrID string) (*Project, error) {
	if m.FindProjectFunc != nil {
		return m.FindProjectFunc(ctx, nameOrID)
	}
	return &Project{ID: nameOrID, Name: nameOrID}, nil
}

// DeleteProject implements Cloud.
func (m *MockCloud) DeleteProject(ctx context.Context, projectID string) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, projectID)
	}
	return nil
}

// ListServers implements Cloud.
func (m *MockCloud) ListServers(ctx context.Context, f Filter) ([]Handle, error) {
	if m.ListServersFunc != nil {
		return m.ListServersFunc(ctx, f)
	}
	return nil, nil
}

// DeleteServer implements Cloud.
func (m *MockCloud) DeleteServer(ctx context.Context, h Handle) error {
	if m.DeleteServerFunc != nil {
		return m.DeleteServerFunc(ctx, h)
	}
	return nil
}

// ListKeypairs implements Cloud.
func (m *MockCloud) ListKeypairs(ctx context.Context, f Filter) ([]Handle, error) {
	if m.ListKeypairsFunc != nil {
		return m.ListKeypairsFunc(ctx, f)
	}
	return nil, nil
}

// DeleteKeypair implements Cloud.
func (m *MockCloud) DeleteKeypair(ctx context.Context, h Handle) error {
	if m.DeleteKeypairFunc != nil {
		return m.DeleteKeypairFunc(ctx, h)
	}
	return nil
}

// ListVolumes implements Cloud.
func (m *MockCloud) ListVolumes(ctx context.Context, f Filter) ([]Handle, error) {
	if m.ListVolumesFunc != nil {
		return m.ListVolumesFunc(ctx, f)
	}
	return nil, nil
}

// DeleteVolume implements Cloud.
func (m *MockCloud) DeleteVolume(ctx context.Context, h Handle) error {
	if m.DeleteVolumeFunc != nil {
		return m.DeleteVolumeFunc(ctx, h)
	}
	return nil
}

// ListSnapshots implements Cloud.
func (m *MockCloud) ListSnapshots(ctx context.Context, f Filter) ([]Handle, error) {
	if m.ListSnapshotsFunc != nil {
		return m.ListSnapshotsFunc(ctx, f)
	}
	return nil, nil
}

// DeleteSnapshot implements Cloud.
func (m *MockCloud) DeleteSnapshot(ctx context.Context, h Handle) error {
	if m.DeleteSnapshotFunc != nil {
		return m.DeleteSnapshotFunc(ctx, h)
	}
	return nil
}

// ListImages implements Cloud.
func (m *MockCloud) ListImages(ctx context.Context, f Filter) ([]Handle, error) {
	if m.ListImagesFunc != nil {
		return m.ListImagesFunc(ctx, f)
	}
	return nil, nil
}

// DeleteImage implements Cloud.
func (m *MockCloud) DeleteImage(ctx context.Context, h Handle) error {
	if m.DeleteImageFunc != nil {
		return m.DeleteImageFunc(ctx, h)
	}
	return nil
}

// ListPorts implements Cloud.
func (m *MockCloud) ListPorts(ctx context.Context, f Filter) ([]Handle, error) {
	if m.ListPortsFunc != nil {
		return m.ListPortsFunc(ctx, f)
	}
	return nil, nil
}

// DeletePort implements Cloud.
func (m *MockCloud) DeletePort(ctx context.Context, h Handle) error {
	if m.DeletePortFunc != nil {
		return m.DeletePortFunc(ctx, h)
	}
	return nil
}

// ListNetworks implements Cloud.
func (m *MockCloud) ListNetworks(ctx context.Context, f Filter) ([]Handle, error) {
	if m.ListNetworksFunc != nil {
		return m.ListNetworksFunc(ctx, f)
	}
	return nil, nil
}

// DeleteNetwork implements Cloud.
func (m *MockCloud) DeleteNetwork(ctx context.Context, h Handle) error {
	if m.DeleteNetworkFunc != nil {
		return m.DeleteNetworkFunc(ctx, h)
	}
	return nil
}

// ListSubnets implements Cloud.
func (m *MockCloud) ListSubnets(ctx context.Context, f Filter) ([]Handle, error) {
	if m.ListSubnetsFunc != nil {
		return m.ListSubnetsFunc(ctx, f)
	}
	return nil, nil
}

// DeleteSubnet implements Cloud.
func (m *MockCloud) DeleteSubnet(ctx context.Context, h Handle) error {
	if m.DeleteSubnetFunc != nil {
		return m.DeleteSubnetFunc(ctx, h)
	}
	return nil
}

// ListRouters implements Cloud.
func (m *MockCloud) ListRouters(ctx context.Context, f Filter) ([]Handle, error) {
	if m.ListRoutersFunc != nil {
		return m.ListRoutersFunc(ctx, f)
	}
	return nil, nil
}

// DeleteRouter implements Cloud.
func (m *MockCloud) DeleteRouter(ctx context.Context, h Handle) error {
	if m.DeleteRouterFunc != nil {
		return m.DeleteRouterFunc(ctx, h)
	}
	return nil
}

// ListSecurityGroups implements Cloud.
func (m *MockCloud) ListSecurityGroups(ctx context.Context, f Filter) ([]Handle, error) {
	if m.ListSecurityGroupsFunc != nil {
		return m.ListSecurityGroupsFunc(ctx, f)
	}
	return nil, nil
}

// DeleteSecurityGroup implements Cloud.
func (m *MockCloud) DeleteSecurityGroup(ctx context.Context, h Handle) error {
	if m.DeleteSecurityGroupFunc != nil {
		return m.DeleteSecurityGroupFunc(ctx, h)
	}
	return nil
}

// ListFloatingIPs implements Cloud.
func (m *MockCloud) ListFloatingIPs(ctx context.Context, f Filter) ([]Handle, error) {
	if m.ListFloatingIPsFunc != nil {
		return m.ListFloatingIPsFunc(ctx, f)
	}
	return nil, nil
}

// DeleteFloatingIP implements Cloud.
func (m *MockCloud) DeleteFloatingIP(ctx context.Context, h Handle) error {
	if m.DeleteFloatingIPFunc != nil {
		return m.DeleteFloatingIPFunc(ctx, h)
	}
	return nil
}

// ListStacks implements Cloud.
func (m *MockCloud) ListStacks(ctx context.Context, f Filter) ([]Handle, error) {
	if m.ListStacksFunc != nil {
		return m.ListStacksFunc(ctx, f)
	}
	return nil, nil
}

// DeleteStack implements Cloud.
func (m *MockCloud) DeleteStack(ctx context.Context, h Handle) error {
	if m.DeleteStackFunc != nil {
		return m.DeleteStackFunc(ctx, h)
	}
	return nil
}

// ListRouterPorts implements Cloud.
func (m *MockCloud) ListRouterPorts(ctx context.Context, routerID string) ([]Handle, error) {
	if m.ListRouterPortsFunc != nil {
		return m.ListRouterPortsFunc(ctx, routerID)
	}
	return nil, nil
}

// RemoveRouterInterface implements Cloud.
func (m *MockCloud) RemoveRouterInterface(ctx context.Context, routerID, portID string) error {
	if m.RemoveRouterInterfaceFunc != nil {
		return m.RemoveRouterInterfaceFunc(ctx, routerID, portID)
	}
	return nil
}

// ClearRouterGateway implements Cloud.
func (m *MockCloud) ClearRouterGateway(ctx context.Context, routerID string) error {
	if m.ClearRouterGatewayFunc != nil {
		return m.ClearRouterGatewayFunc(ctx, routerID)
	}
	return nil
}

// FindFloatingIP implements Cloud.
func (m *MockCloud) FindFloatingIP(ctx context.Context, address string) (*Handle, error) {
	if m.FindFloatingIPFunc != nil {
		return m.FindFloatingIPFunc(ctx, address)
	}
	return nil, nil
}

// DisassociateFloatingIP implements Cloud.
func (m *MockCloud) DisassociateFloatingIP(ctx context.Context, floatingIPID string) error {
	if m.DisassociateFloatingIPFunc != nil {
		return m.DisassociateFloatingIPFunc(ctx, floatingIPID)
	}
	return nil
}
