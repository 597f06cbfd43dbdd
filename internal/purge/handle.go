package purge

import "fmt"

// Listing filter fields. Images record ownership in "owner", every other
// service uses "project_id".
const (
	FieldProjectID = "project_id"
	FieldOwner     = "owner"
)

// Filter restricts a listing to resources owned by one project.
type Filter struct {
	// Field is the ownership attribute to match, FieldProjectID or FieldOwner.
	Field string
	// Value is the project ID.
	Value string
	// Detailed requests the detailed listing endpoint.
	Detailed bool
}

// Expect returns an error unless the filter matches on field.
// Cloud implementations use it to reject filters their API cannot express.
func (f Filter) Expect(field string) error {
	if f.Field != field {
		return fmt.Errorf("unsupported filter field %q, expected %q", f.Field, field)
	}
	if f.Value == "" {
		return fmt.Errorf("empty %s filter", field)
	}
	return nil
}

// Project is the purge target.
type Project struct {
	ID       string
	Name     string
	DomainID string
}

// Handle identifies one resource to delete.
type Handle struct {
	Kind Kind
	ID   string
	Name string
	// ProjectID is the owning project as reported by the API. Handles
	// with no owner are never acted on.
	ProjectID string
	// Owner describes what a port is attached to. Nil for other kinds.
	Owner PortOwner
}

func (h Handle) String() string {
	if h.Name != "" && h.Name != h.ID {
		return fmt.Sprintf("%s %s (%s)", h.Kind, h.Name, h.ID)
	}
	return fmt.Sprintf("%s %s", h.Kind, h.ID)
}

// ownedBy reports whether the handle may be acted on for projectID.
// Unknown ownership is rejected: listing filters are not trusted.
func (h Handle) ownedBy(projectID string) bool {
	return projectID != "" && h.ProjectID == projectID
}

// Neutron device_owner values that need unwinding before a port is deleted.
const (
	DeviceOwnerRouterInterface = "network:router_interface"
	DeviceOwnerRouterGateway   = "network:router_gateway"
	DeviceOwnerFloatingIP      = "network:floatingip"
)

// PortOwner is what a port is attached to. It is one of RouterInterface,
// RouterGateway, FloatingIPBinding or OtherOwner.
type PortOwner interface {
	portOwner()
}

// RouterInterface is a port plugged into a router as an interface.
type RouterInterface struct {
	RouterID string
}

// RouterGateway is the external gateway port of a router.
type RouterGateway struct {
	RouterID string
}

// FloatingIPBinding is the port backing a floating IP.
type FloatingIPBinding struct {
	// Address is the port's first fixed IP, which equals the floating address.
	Address string
}

// OtherOwner is any port that can be deleted without unwinding.
type OtherOwner struct {
	DeviceOwner string
}

func (RouterInterface) portOwner()   {}
func (RouterGateway) portOwner()     {}
func (FloatingIPBinding) portOwner() {}
func (OtherOwner) portOwner()        {}

// ClassifyPort decides how a port must be unwound from its device_owner,
// device_id and fixed IP addresses.
func ClassifyPort(deviceOwner, deviceID string, fixedIPs []string) PortOwner {
	switch deviceOwner {
	case DeviceOwnerRouterInterface:
		return RouterInterface{RouterID: deviceID}
	case DeviceOwnerRouterGateway:
		return RouterGateway{RouterID: deviceID}
	case DeviceOwnerFloatingIP:
		addr := ""
		if len(fixedIPs) > 0 {
			addr = fixedIPs[0]
		}
		return FloatingIPBinding{Address: addr}
	default:
		return OtherOwner{DeviceOwner: deviceOwner}
	}
}
