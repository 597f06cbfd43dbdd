package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/routers"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/subnets"

	"github.com/imamik/ospurge/internal/purge"
	"github.com/imamik/ospurge/internal/util/ptr"
)

// portHandle converts a port and classifies its owner.
func portHandle(p ports.Port) purge.Handle {
	addrs := make([]string, 0, len(p.FixedIPs))
	for _, ip := range p.FixedIPs {
		addrs = append(addrs, ip.IPAddress)
	}
	return purge.Handle{
		Kind:      purge.KindPort,
		ID:        p.ID,
		Name:      p.Name,
		ProjectID: p.ProjectID,
		Owner:     purge.ClassifyPort(p.DeviceOwner, p.DeviceID, addrs),
	}
}

// ListPorts lists the ports of the filter's project.
func (c *Client) ListPorts(ctx context.Context, f purge.Filter) ([]purge.Handle, error) {
	if err := f.Expect(purge.FieldProjectID); err != nil {
		return nil, err
	}
	return collect(ctx, ports.List(c.svc.Network, ports.ListOpts{ProjectID: f.Value}), ports.ExtractPorts, portHandle)
}

// DeletePort deletes a port.
func (c *Client) DeletePort(ctx context.Context, h purge.Handle) error {
	return deleted(ports.Delete(ctx, c.svc.Network, h.ID).ExtractErr())
}

// ListNetworks lists the networks of the filter's project.
func (c *Client) ListNetworks(ctx context.Context, f purge.Filter) ([]purge.Handle, error) {
	if err := f.Expect(purge.FieldProjectID); err != nil {
		return nil, err
	}
	pager := networks.List(c.svc.Network, networks.ListOpts{ProjectID: f.Value})
	return collect(ctx, pager, networks.ExtractNetworks, func(n networks.Network) purge.Handle {
		return purge.Handle{Kind: purge.KindNetwork, ID: n.ID, Name: n.Name, ProjectID: n.ProjectID}
	})
}

// DeleteNetwork deletes a network.
func (c *Client) DeleteNetwork(ctx context.Context, h purge.Handle) error {
	return deleted(networks.Delete(ctx, c.svc.Network, h.ID).ExtractErr())
}

// ListSubnets lists the subnets of the filter's project.
func (c *Client) ListSubnets(ctx context.Context, f purge.Filter) ([]purge.Handle, error) {
	if err := f.Expect(purge.FieldProjectID); err != nil {
		return nil, err
	}
	pager := subnets.List(c.svc.Network, subnets.ListOpts{ProjectID: f.Value})
	return collect(ctx, pager, subnets.ExtractSubnets, func(s subnets.Subnet) purge.Handle {
		return purge.Handle{Kind: purge.KindSubnet, ID: s.ID, Name: s.Name, ProjectID: s.ProjectID}
	})
}

// DeleteSubnet deletes a subnet.
func (c *Client) DeleteSubnet(ctx context.Context, h purge.Handle) error {
	return deleted(subnets.Delete(ctx, c.svc.Network, h.ID).ExtractErr())
}

// ListRouters lists the routers of the filter's project.
func (c *Client) ListRouters(ctx context.Context, f purge.Filter) ([]purge.Handle, error) {
	if err := f.Expect(purge.FieldProjectID); err != nil {
		return nil, err
	}
	pager := routers.List(c.svc.Network, routers.ListOpts{ProjectID: f.Value})
	return collect(ctx, pager, routers.ExtractRouters, func(r routers.Router) purge.Handle {
		return purge.Handle{Kind: purge.KindRouter, ID: r.ID, Name: r.Name, ProjectID: r.ProjectID}
	})
}

// DeleteRouter deletes a router. Its ports must already be detached.
func (c *Client) DeleteRouter(ctx context.Context, h purge.Handle) error {
	return deleted(routers.Delete(ctx, c.svc.Network, h.ID).ExtractErr())
}

// ListRouterPorts lists every port whose device is the router, including
// the gateway port which carries no project.
func (c *Client) ListRouterPorts(ctx context.Context, routerID string) ([]purge.Handle, error) {
	return collect(ctx, ports.List(c.svc.Network, ports.ListOpts{DeviceID: routerID}), ports.ExtractPorts, portHandle)
}

// RemoveRouterInterface detaches a port from a router.
func (c *Client) RemoveRouterInterface(ctx context.Context, routerID, portID string) error {
	c.log.V(1).Info("Removing router interface", "router", routerID, "port", portID)
	_, err := routers.RemoveInterface(ctx, c.svc.Network, routerID, routers.RemoveInterfaceOpts{PortID: portID}).Extract()
	return deleted(err)
}

// ClearRouterGateway removes the external gateway of a router.
func (c *Client) ClearRouterGateway(ctx context.Context, routerID string) error {
	c.log.V(1).Info("Clearing router gateway", "router", routerID)
	_, err := routers.Update(ctx, c.svc.Network, routerID, routers.UpdateOpts{GatewayInfo: &routers.GatewayInfo{}}).Extract()
	return deleted(err)
}

// ListSecurityGroups lists the security groups of the filter's project.
func (c *Client) ListSecurityGroups(ctx context.Context, f purge.Filter) ([]purge.Handle, error) {
	if err := f.Expect(purge.FieldProjectID); err != nil {
		return nil, err
	}
	pager := groups.List(c.svc.Network, groups.ListOpts{ProjectID: f.Value})
	return collect(ctx, pager, groups.ExtractGroups, func(g groups.SecGroup) purge.Handle {
		return purge.Handle{Kind: purge.KindSecurityGroup, ID: g.ID, Name: g.Name, ProjectID: g.ProjectID}
	})
}

// DeleteSecurityGroup deletes a security group.
func (c *Client) DeleteSecurityGroup(ctx context.Context, h purge.Handle) error {
	return deleted(groups.Delete(ctx, c.svc.Network, h.ID).ExtractErr())
}

// ListFloatingIPs lists the floating IPs of the filter's project.
func (c *Client) ListFloatingIPs(ctx context.Context, f purge.Filter) ([]purge.Handle, error) {
	if err := f.Expect(purge.FieldProjectID); err != nil {
		return nil, err
	}
	pager := floatingips.List(c.svc.Network, floatingips.ListOpts{ProjectID: f.Value})
	return collect(ctx, pager, floatingips.ExtractFloatingIPs, floatingIPHandle)
}

// DeleteFloatingIP releases a floating IP.
func (c *Client) DeleteFloatingIP(ctx context.Context, h purge.Handle) error {
	return deleted(floatingips.Delete(ctx, c.svc.Network, h.ID).ExtractErr())
}

// FindFloatingIP returns the floating IP with the given address, or nil.
func (c *Client) FindFloatingIP(ctx context.Context, address string) (*purge.Handle, error) {
	pager := floatingips.List(c.svc.Network, floatingips.ListOpts{FloatingIP: address})
	found, err := collect(ctx, pager, floatingips.ExtractFloatingIPs, floatingIPHandle)
	if err != nil {
		return nil, fmt.Errorf("failed to look up floating IP %s: %w", address, err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// DisassociateFloatingIP unbinds a floating IP from its port. A floating IP
// released in the meantime counts as unbound.
func (c *Client) DisassociateFloatingIP(ctx context.Context, floatingIPID string) error {
	c.log.V(1).Info("Disassociating floating IP", "floatingIP", floatingIPID)
	_, err := floatingips.Update(ctx, c.svc.Network, floatingIPID, floatingips.UpdateOpts{PortID: ptr.String("")}).Extract()
	return deleted(err)
}

func floatingIPHandle(f floatingips.FloatingIP) purge.Handle {
	return purge.Handle{Kind: purge.KindFloatingIP, ID: f.ID, Name: f.FloatingIP, ProjectID: f.ProjectID}
}
