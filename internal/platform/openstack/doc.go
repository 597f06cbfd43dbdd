// Package openstack implements purge.Cloud on top of gophercloud.
//
// # Architecture
//
// One Client wraps a service client per OpenStack API:
//
//   - client.go: Connect from clouds.yaml, Services, options
//   - compute.go: servers and keypairs (compute v2)
//   - blockstorage.go: volumes and snapshots (block storage v3)
//   - image.go: images (image v2)
//   - network.go: ports, networks, subnets, routers, security groups and
//     floating IPs, plus router and floating IP unwinding (network v2)
//   - orchestration.go: stacks (orchestration v1)
//   - identity.go: project lookup and deletion, token scope (identity v3)
//   - errors.go: HTTP status classification
//
// # Error Handling
//
// A 409 response is wrapped with purge.ErrConflict so the purge core can
// decide which conflicts to tolerate. A 404 on delete means the resource is
// already gone and is reported as success.
package openstack
