package testing

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/imamik/ospurge/internal/purge"
)

// FixtureProjectID is the ID given to the fixture project.
const FixtureProjectID = "0123456789abcdef0123456789abcdef"

// CloudFixture is an in-memory project backing a purge.MockCloud.
// Deleting a resource removes it, so a second purge finds nothing.
type CloudFixture struct {
	mu          sync.Mutex
	project     purge.Project
	missing     bool
	resources   map[purge.Kind][]purge.Handle
	routerPorts map[string][]purge.Handle
	floatingIPs map[string]purge.Handle
	failures    map[string]error
	calls       []string
}

// NewCloudFixture creates a fixture holding an empty project named name.
func NewCloudFixture(name string) *CloudFixture {
	return &CloudFixture{
		project:     purge.Project{ID: FixtureProjectID, Name: name},
		resources:   make(map[purge.Kind][]purge.Handle),
		routerPorts: make(map[string][]purge.Handle),
		floatingIPs: make(map[string]purge.Handle),
		failures:    make(map[string]error),
	}
}

// WithoutProject makes project lookups find nothing.
func (f *CloudFixture) WithoutProject() *CloudFixture {
	f.missing = true
	return f
}

// With adds resources of kind owned by the fixture project unless the
// handle already names an owner.
func (f *CloudFixture) With(kind purge.Kind, handles ...purge.Handle) *CloudFixture {
	for _, h := range handles {
		h.Kind = kind
		if h.ProjectID == "" {
			h.ProjectID = f.project.ID
		}
		f.resources[kind] = append(f.resources[kind], h)
	}
	return f
}

// WithRouterPorts registers the ports whose device_id is routerID.
func (f *CloudFixture) WithRouterPorts(routerID string, ports ...purge.Handle) *CloudFixture {
	for _, p := range ports {
		p.Kind = purge.KindPort
		f.routerPorts[routerID] = append(f.routerPorts[routerID], p)
	}
	return f
}

// WithFloatingIP registers a floating IP reachable by address.
func (f *CloudFixture) WithFloatingIP(address, id string) *CloudFixture {
	f.floatingIPs[address] = purge.Handle{Kind: purge.KindFloatingIP, ID: id, Name: address, ProjectID: f.project.ID}
	return f
}

// FailOn makes the call recorded as call return err, for example
// FailOn("DeletePort p1", err).
func (f *CloudFixture) FailOn(call string, err error) *CloudFixture {
	f.failures[call] = err
	return f
}

// Calls returns the calls recorded so far.
func (f *CloudFixture) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// CallsWithPrefix returns the recorded calls starting with prefix.
func (f *CloudFixture) CallsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range f.Calls() {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Remaining returns the resources of kind not yet deleted.
func (f *CloudFixture) Remaining(kind purge.Kind) []purge.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]purge.Handle(nil), f.resources[kind]...)
}

func (f *CloudFixture) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.failures[call]
}

func (f *CloudFixture) list(kind purge.Kind, name string) func(context.Context, purge.Filter) ([]purge.Handle, error) {
	return func(_ context.Context, flt purge.Filter) ([]purge.Handle, error) {
		if err := f.record(fmt.Sprintf("%s %s=%s", name, flt.Field, flt.Value)); err != nil {
			return nil, err
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		return append([]purge.Handle(nil), f.resources[kind]...), nil
	}
}

func (f *CloudFixture) remove(kind purge.Kind, name string) func(context.Context, purge.Handle) error {
	return func(_ context.Context, h purge.Handle) error {
		if err := f.record(name + " " + h.ID); err != nil {
			return err
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		kept := f.resources[kind][:0]
		for _, r := range f.resources[kind] {
			if r.ID != h.ID {
				kept = append(kept, r)
			}
		}
		f.resources[kind] = kept
		return nil
	}
}

// Mock returns a MockCloud backed by the fixture.
func (f *CloudFixture) Mock() *purge.MockCloud {
	return &purge.MockCloud{
		FindProjectFunc: func(_ context.Context, nameOrID string) (*purge.Project, error) {
			if err := f.record("FindProject " + nameOrID); err != nil {
				return nil, err
			}
			if f.missing || (nameOrID != f.project.Name && nameOrID != f.project.ID) {
				return nil, nil
			}
			p := f.project
			return &p, nil
		},
		DeleteProjectFunc: func(_ context.Context, projectID string) error {
			return f.record("DeleteProject " + projectID)
		},

		ListServersFunc:         f.list(purge.KindServer, "ListServers"),
		DeleteServerFunc:        f.remove(purge.KindServer, "DeleteServer"),
		ListVolumesFunc:         f.list(purge.KindVolume, "ListVolumes"),
		DeleteVolumeFunc:        f.remove(purge.KindVolume, "DeleteVolume"),
		ListSnapshotsFunc:       f.list(purge.KindSnapshot, "ListSnapshots"),
		DeleteSnapshotFunc:      f.remove(purge.KindSnapshot, "DeleteSnapshot"),
		ListImagesFunc:          f.list(purge.KindImage, "ListImages"),
		DeleteImageFunc:         f.remove(purge.KindImage, "DeleteImage"),
		ListPortsFunc:           f.list(purge.KindPort, "ListPorts"),
		DeletePortFunc:          f.remove(purge.KindPort, "DeletePort"),
		ListNetworksFunc:        f.list(purge.KindNetwork, "ListNetworks"),
		DeleteNetworkFunc:       f.remove(purge.KindNetwork, "DeleteNetwork"),
		ListSubnetsFunc:         f.list(purge.KindSubnet, "ListSubnets"),
		DeleteSubnetFunc:        f.remove(purge.KindSubnet, "DeleteSubnet"),
		ListRoutersFunc:         f.list(purge.KindRouter, "ListRouters"),
		DeleteRouterFunc:        f.remove(purge.KindRouter, "DeleteRouter"),
		ListSecurityGroupsFunc:  f.list(purge.KindSecurityGroup, "ListSecurityGroups"),
		DeleteSecurityGroupFunc: f.remove(purge.KindSecurityGroup, "DeleteSecurityGroup"),
		ListFloatingIPsFunc:     f.list(purge.KindFloatingIP, "ListFloatingIPs"),
		DeleteFloatingIPFunc:    f.remove(purge.KindFloatingIP, "DeleteFloatingIP"),
		ListKeypairsFunc:        f.list(purge.KindKeypair, "ListKeypairs"),
		DeleteKeypairFunc:       f.remove(purge.KindKeypair, "DeleteKeypair"),
		ListStacksFunc:          f.list(purge.KindStack, "ListStacks"),
		DeleteStackFunc:         f.remove(purge.KindStack, "DeleteStack"),

		ListRouterPortsFunc: func(_ context.Context, routerID string) ([]purge.Handle, error) {
			if err := f.record("ListRouterPorts " + routerID); err != nil {
				return nil, err
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			return append([]purge.Handle(nil), f.routerPorts[routerID]...), nil
		},
		RemoveRouterInterfaceFunc: func(_ context.Context, routerID, portID string) error {
			return f.record(fmt.Sprintf("RemoveRouterInterface %s %s", routerID, portID))
		},
		ClearRouterGatewayFunc: func(_ context.Context, routerID string) error {
			return f.record("ClearRouterGateway " + routerID)
		},
		FindFloatingIPFunc: func(_ context.Context, address string) (*purge.Handle, error) {
			if err := f.record("FindFloatingIP " + address); err != nil {
				return nil, err
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			fip, ok := f.floatingIPs[address]
			if !ok {
				return nil, nil
			}
			return &fip, nil
		},
		DisassociateFloatingIPFunc: func(_ context.Context, floatingIPID string) error {
			return f.record("DisassociateFloatingIP " + floatingIPID)
		},
	}
}
