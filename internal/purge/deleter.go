package purge

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
)

// Outcome summarizes the deletion of one kind.
type Outcome struct {
	Deleted   int
	Tolerated []Handle
}

// Deleter removes enumerated resources, unwinding ports and routers first.
type Deleter struct {
	cloud    Cloud
	log      logr.Logger
	observer Observer
}

// NewDeleter creates a Deleter backed by cloud. A nil observer is ignored.
func NewDeleter(cloud Cloud, log logr.Logger, observer Observer) *Deleter {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Deleter{cloud: cloud, log: log, observer: observer}
}

// DeleteAll deletes every handle of kind in order.
//
// The first error stops the loop and is returned as a *KindError together
// with the outcome so far. Conflicts while deleting a port are the one
// exception: they are logged, recorded in Outcome.Tolerated and skipped.
func (d *Deleter) DeleteAll(ctx context.Context, kind Kind, handles []Handle) (Outcome, error) {
	var out Outcome

	ops, err := kind.ops()
	if err != nil {
		return out, err
	}

	d.log.V(1).Info("Deleting resources", "kind", kind, "count", len(handles))
	for _, h := range handles {
		if err := ctx.Err(); err != nil {
			return out, &KindError{Kind: kind, Op: OpDelete, Err: err}
		}

		d.log.V(1).Info("Deleting resource", "kind", kind, "id", h.ID, "name", h.Name)
		switch kind {
		case KindPort:
			var tolerated bool
			tolerated, err = d.deletePort(ctx, h)
			if err == nil && tolerated {
				out.Tolerated = append(out.Tolerated, h)
				continue
			}
		case KindRouter:
			err = d.deleteRouter(ctx, h)
		default:
			err = ops.delete(d.cloud, ctx, h)
		}
		if err != nil {
			d.log.V(1).Info("Failed to delete resources", "kind", kind, "id", h.ID, "error", err.Error())
			return out, &KindError{Kind: kind, Op: OpDelete, Err: err}
		}

		out.Deleted++
		deleted := h
		d.observer.Event(Event{Type: EventResourceDeleted, Kind: kind, Resource: &deleted, Timestamp: time.Now()})
	}
	return out, nil
}

// deletePort unwinds a port and deletes it. A conflict anywhere in the
// sequence is reported as tolerated instead of an error.
func (d *Deleter) deletePort(ctx context.Context, port Handle) (bool, error) {
	err := d.unwindPort(ctx, port)
	if err == nil {
		err = d.cloud.DeletePort(ctx, port)
	}
	if err != nil && IsConflict(err) {
		d.log.Info("Warning: failed to delete port", "port", port.ID, "error", err.Error())
		tolerated := port
		d.observer.Event(Event{
			Type:      EventConflictTolerated,
			Kind:      KindPort,
			Resource:  &tolerated,
			Err:       err,
			Timestamp: time.Now(),
		})
		return true, nil
	}
	return false, err
}

// unwindPort severs the relationship that would make deleting the port fail.
func (d *Deleter) unwindPort(ctx context.Context, port Handle) error {
	switch owner := port.Owner.(type) {
	case RouterInterface:
		d.log.V(1).Info("Removing port from router", "port", port.ID, "router", owner.RouterID)
		if err := d.cloud.RemoveRouterInterface(ctx, owner.RouterID, port.ID); err != nil {
			return fmt.Errorf("failed to remove port %s from router %s: %w", port.ID, owner.RouterID, err)
		}
	case RouterGateway:
		d.log.V(1).Info("Removing gateway port from router", "port", port.ID, "router", owner.RouterID)
		if err := d.cloud.ClearRouterGateway(ctx, owner.RouterID); err != nil {
			return fmt.Errorf("failed to clear gateway of router %s: %w", owner.RouterID, err)
		}
	case FloatingIPBinding:
		if owner.Address == "" {
			d.log.V(1).Info("Floating IP port has no fixed address", "port", port.ID)
			return nil
		}
		fip, err := d.cloud.FindFloatingIP(ctx, owner.Address)
		if err != nil {
			return fmt.Errorf("failed to find floating IP %s: %w", owner.Address, err)
		}
		if fip == nil {
			d.log.V(1).Info("No floating IP bound to port", "port", port.ID, "address", owner.Address)
			return nil
		}
		d.log.V(1).Info("Disassociating floating IP from port", "floatingIP", fip.ID, "port", port.ID)
		if err := d.cloud.DisassociateFloatingIP(ctx, fip.ID); err != nil {
			return fmt.Errorf("failed to disassociate floating IP %s: %w", fip.ID, err)
		}
	}
	return nil
}

// deleteRouter detaches every port of the router and deletes it.
// Gateway ports are detached by clearing the gateway, all others through
// interface removal.
func (d *Deleter) deleteRouter(ctx context.Context, router Handle) error {
	ports, err := d.cloud.ListRouterPorts(ctx, router.ID)
	if err != nil {
		return fmt.Errorf("failed to list ports of router %s: %w", router.ID, err)
	}

	for _, iface := range ports {
		if _, ok := iface.Owner.(RouterGateway); ok {
			d.log.V(1).Info("Clearing gateway of router", "port", iface.ID, "router", router.ID)
			if err := d.cloud.ClearRouterGateway(ctx, router.ID); err != nil {
				return fmt.Errorf("failed to clear gateway of router %s: %w", router.ID, err)
			}
			continue
		}
		d.log.V(1).Info("Removing interface from router", "port", iface.ID, "router", router.ID)
		if err := d.cloud.RemoveRouterInterface(ctx, router.ID, iface.ID); err != nil {
			return fmt.Errorf("failed to remove interface %s from router %s: %w", iface.ID, router.ID, err)
		}
	}

	return d.cloud.DeleteRouter(ctx, router)
}
