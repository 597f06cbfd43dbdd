package purge

import (
	"context"
	"fmt"
)

// Kind identifies a resource type that can be purged.
type Kind string

// Resource kinds in purge order.
const (
	KindServer        Kind = "server"
	KindVolume        Kind = "volume"
	KindSnapshot      Kind = "snapshot"
	KindImage         Kind = "image"
	KindPort          Kind = "port"
	KindNetwork       Kind = "network"
	KindSubnet        Kind = "subnet"
	KindRouter        Kind = "router"
	KindSecurityGroup Kind = "security_group"
	KindFloatingIP    Kind = "floating_ip"
	KindKeypair       Kind = "keypair"
	KindStack         Kind = "stack"
)

// Service names the OpenStack service a kind belongs to.
type Service string

// OpenStack services used by the purge.
const (
	ServiceCompute       Service = "compute"
	ServiceBlockStorage  Service = "block_storage"
	ServiceImage         Service = "image"
	ServiceNetwork       Service = "network"
	ServiceOrchestration Service = "orchestration"
	ServiceIdentity      Service = "identity"
)

// Order is the fixed sequence in which kinds are purged.
//
// Compute, storage and images go first because they may hold network
// attachments. Ports come before the networks, subnets and routers that
// contain them. Stacks are last even though a stack usually owns many of the
// resources deleted before it.
var Order = []Kind{
	KindServer,
	KindVolume,
	KindSnapshot,
	KindImage,
	KindPort,
	KindNetwork,
	KindSubnet,
	KindRouter,
	KindSecurityGroup,
	KindFloatingIP,
	KindKeypair,
	KindStack,
}

type listFunc func(Cloud, context.Context, Filter) ([]Handle, error)
type deleteFunc func(Cloud, context.Context, Handle) error

// kindOps binds a kind to its service, listing filter and typed operations.
type kindOps struct {
	service  Service
	field    string
	detailed bool
	list     listFunc
	delete   deleteFunc
}

var kindTable = map[Kind]kindOps{
	KindServer:        {ServiceCompute, FieldProjectID, true, Cloud.ListServers, Cloud.DeleteServer},
	KindVolume:        {ServiceBlockStorage, FieldProjectID, true, Cloud.ListVolumes, Cloud.DeleteVolume},
	KindSnapshot:      {ServiceBlockStorage, FieldProjectID, true, Cloud.ListSnapshots, Cloud.DeleteSnapshot},
	KindImage:         {ServiceImage, FieldOwner, false, Cloud.ListImages, Cloud.DeleteImage},
	KindPort:          {ServiceNetwork, FieldProjectID, false, Cloud.ListPorts, Cloud.DeletePort},
	KindNetwork:       {ServiceNetwork, FieldProjectID, false, Cloud.ListNetworks, Cloud.DeleteNetwork},
	KindSubnet:        {ServiceNetwork, FieldProjectID, false, Cloud.ListSubnets, Cloud.DeleteSubnet},
	KindRouter:        {ServiceNetwork, FieldProjectID, false, Cloud.ListRouters, Cloud.DeleteRouter},
	KindSecurityGroup: {ServiceNetwork, FieldProjectID, false, Cloud.ListSecurityGroups, Cloud.DeleteSecurityGroup},
	KindFloatingIP:    {ServiceNetwork, FieldProjectID, false, Cloud.ListFloatingIPs, Cloud.DeleteFloatingIP},
	KindKeypair:       {ServiceCompute, FieldProjectID, false, Cloud.ListKeypairs, Cloud.DeleteKeypair},
	KindStack:         {ServiceOrchestration, FieldProjectID, false, Cloud.ListStacks, Cloud.DeleteStack},
}

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindTable[k]; !ok {
		return "", fmt.Errorf("unknown resource kind %q", s)
	}
	return k, nil
}

// Service returns the OpenStack service that owns the kind.
func (k Kind) Service() Service {
	return kindTable[k].service
}

// Filter returns the listing filter used to enumerate the kind for a project.
func (k Kind) Filter(projectID string) Filter {
	ops := kindTable[k]
	return Filter{Field: ops.field, Value: projectID, Detailed: ops.detailed}
}

// Plural returns the kind's plural form for messages.
func (k Kind) Plural() string {
	return string(k) + "s"
}

func (k Kind) ops() (kindOps, error) {
	ops, ok := kindTable[k]
	if !ok {
		return kindOps{}, fmt.Errorf("unknown resource kind %q", string(k))
	}
	return ops, nil
}
