// Package purge deletes every resource owned by an OpenStack project.
//
// A purge walks a fixed list of resource kinds. For each kind the Enumerator
// lists the handles owned by the project and the Deleter removes them:
//
//	server, volume, snapshot, image, port, network, subnet,
//	router, security_group, floating_ip, keypair, stack
//
// Ports and routers are unwound before deletion. A port still attached to a
// router as an interface or gateway, or bound to a floating IP, is detached
// first. A router has every interface port removed first. A 409 Conflict while
// deleting a port is logged and tolerated; every other error aborts the purge.
//
// The package talks to the cloud only through the Cloud interface, which is
// implemented by internal/platform/openstack on top of gophercloud.
package purge
