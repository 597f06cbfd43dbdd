package testing

import "github.com/imamik/ospurge/internal/purge"

// Resource returns a handle with the given ID and a derived name.
func Resource(id string) purge.Handle {
	return purge.Handle{ID: id, Name: "res-" + id}
}

// Port returns a port handle attached to owner.
func Port(id string, owner purge.PortOwner) purge.Handle {
	return purge.Handle{Kind: purge.KindPort, ID: id, Name: "port-" + id, Owner: owner}
}

// ForeignResource returns a handle owned by another project.
func ForeignResource(id, projectID string) purge.Handle {
	return purge.Handle{ID: id, Name: "res-" + id, ProjectID: projectID}
}
