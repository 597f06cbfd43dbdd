package purge_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ospurge/internal/purge"
	purgetest "github.com/imamik/ospurge/internal/testing"
)

func conflict(msg string) error {
	return fmt.Errorf("%w: %s", purge.ErrConflict, msg)
}

func newDeleter(fixture *purgetest.CloudFixture, obs purge.Observer) *purge.Deleter {
	return purge.NewDeleter(fixture.Mock(), logr.Discard(), obs)
}

func TestDeletePorts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		port  purge.Handle
		setup func(*purgetest.CloudFixture)
		want  []string
	}{
		{
			name: "router interface",
			port: purgetest.Port("p1", purge.RouterInterface{RouterID: "R1"}),
			want: []string{"RemoveRouterInterface R1 p1", "DeletePort p1"},
		},
		{
			name: "router gateway",
			port: purgetest.Port("p1", purge.RouterGateway{RouterID: "R1"}),
			want: []string{"ClearRouterGateway R1", "DeletePort p1"},
		},
		{
			name: "floating ip",
			port: purgetest.Port("p1", purge.FloatingIPBinding{Address: "203.0.113.7"}),
			setup: func(f *purgetest.CloudFixture) {
				f.WithFloatingIP("203.0.113.7", "F1")
			},
			want: []string{"FindFloatingIP 203.0.113.7", "DisassociateFloatingIP F1", "DeletePort p1"},
		},
		{
			name: "floating ip already gone",
			port: purgetest.Port("p1", purge.FloatingIPBinding{Address: "203.0.113.7"}),
			want: []string{"FindFloatingIP 203.0.113.7", "DeletePort p1"},
		},
		{
			name: "floating ip port without address",
			port: purgetest.Port("p1", purge.FloatingIPBinding{}),
			want: []string{"DeletePort p1"},
		},
		{
			name: "other owner",
			port: purgetest.Port("p1", purge.OtherOwner{DeviceOwner: "compute:nova"}),
			want: []string{"DeletePort p1"},
		},
		{
			name: "no owner",
			port: purgetest.Resource("p1"),
			want: []string{"DeletePort p1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fixture := purgetest.NewCloudFixture("demo")
			if tt.setup != nil {
				tt.setup(fixture)
			}

			out, err := newDeleter(fixture, nil).DeleteAll(context.Background(), purge.KindPort, []purge.Handle{tt.port})
			require.NoError(t, err)
			assert.Equal(t, 1, out.Deleted)
			assert.Empty(t, out.Tolerated)
			assert.Equal(t, tt.want, fixture.Calls())
		})
	}
}

func TestDeletePortsToleratesConflicts(t *testing.T) {
	t.Parallel()

	t.Run("on delete", func(t *testing.T) {
		t.Parallel()
		fixture := purgetest.NewCloudFixture("demo").FailOn("DeletePort p1", conflict("port in use"))

		var events []purge.Event
		obs := purge.ObserverFunc(func(e purge.Event) { events = append(events, e) })
		ports := []purge.Handle{purgetest.Port("p1", purge.OtherOwner{}), purgetest.Port("p2", purge.OtherOwner{})}

		out, err := newDeleter(fixture, obs).DeleteAll(context.Background(), purge.KindPort, ports)
		require.NoError(t, err)
		assert.Equal(t, 1, out.Deleted)
		require.Len(t, out.Tolerated, 1)
		assert.Equal(t, "p1", out.Tolerated[0].ID)
		assert.Equal(t, []string{"DeletePort p1", "DeletePort p2"}, fixture.Calls())

		require.Len(t, events, 2)
		assert.Equal(t, purge.EventConflictTolerated, events[0].Type)
		assert.Equal(t, purge.EventResourceDeleted, events[1].Type)
	})

	t.Run("on unwinding", func(t *testing.T) {
		t.Parallel()
		fixture := purgetest.NewCloudFixture("demo").FailOn("RemoveRouterInterface R1 p1", conflict("interface busy"))
		ports := []purge.Handle{purgetest.Port("p1", purge.RouterInterface{RouterID: "R1"}), purgetest.Port("p2", purge.OtherOwner{})}

		out, err := newDeleter(fixture, nil).DeleteAll(context.Background(), purge.KindPort, ports)
		require.NoError(t, err)
		assert.Equal(t, 1, out.Deleted)
		assert.Len(t, out.Tolerated, 1)
		assert.Equal(t, []string{"RemoveRouterInterface R1 p1", "DeletePort p2"}, fixture.Calls())
	})

	t.Run("other errors abort", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("internal server error")
		fixture := purgetest.NewCloudFixture("demo").FailOn("DeletePort p1", cause)
		ports := []purge.Handle{purgetest.Port("p1", purge.OtherOwner{}), purgetest.Port("p2", purge.OtherOwner{})}

		out, err := newDeleter(fixture, nil).DeleteAll(context.Background(), purge.KindPort, ports)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "failed to delete ports: internal server error", err.Error())
		assert.Equal(t, 0, out.Deleted)
		assert.Equal(t, []string{"DeletePort p1"}, fixture.Calls())
	})
}

func TestDeleteRouters(t *testing.T) {
	t.Parallel()

	t.Run("interfaces removed before delete", func(t *testing.T) {
		t.Parallel()
		fixture := purgetest.NewCloudFixture("demo").WithRouterPorts("R1",
			purgetest.Port("i1", purge.RouterInterface{RouterID: "R1"}),
			purgetest.Port("i2", purge.RouterInterface{RouterID: "R1"}),
		)

		out, err := newDeleter(fixture, nil).DeleteAll(context.Background(), purge.KindRouter, []purge.Handle{purgetest.Resource("R1")})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Deleted)
		assert.Equal(t, []string{
			"ListRouterPorts R1",
			"RemoveRouterInterface R1 i1",
			"RemoveRouterInterface R1 i2",
			"DeleteRouter R1",
		}, fixture.Calls())
	})

	t.Run("gateway port clears gateway", func(t *testing.T) {
		t.Parallel()
		fixture := purgetest.NewCloudFixture("demo").WithRouterPorts("R1",
			purgetest.Port("gw", purge.RouterGateway{RouterID: "R1"}),
			purgetest.Port("i1", purge.RouterInterface{RouterID: "R1"}),
		)

		_, err := newDeleter(fixture, nil).DeleteAll(context.Background(), purge.KindRouter, []purge.Handle{purgetest.Resource("R1")})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"ListRouterPorts R1",
			"ClearRouterGateway R1",
			"RemoveRouterInterface R1 i1",
			"DeleteRouter R1",
		}, fixture.Calls())
	})

	t.Run("conflicts are not tolerated", func(t *testing.T) {
		t.Parallel()
		fixture := purgetest.NewCloudFixture("demo").
			WithRouterPorts("R1", purgetest.Port("i1", purge.RouterInterface{RouterID: "R1"})).
			FailOn("RemoveRouterInterface R1 i1", conflict("busy"))

		_, err := newDeleter(fixture, nil).DeleteAll(context.Background(), purge.KindRouter, []purge.Handle{purgetest.Resource("R1")})
		require.Error(t, err)
		assert.ErrorIs(t, err, purge.ErrConflict)
		assert.Contains(t, err.Error(), "failed to delete routers")
		assert.Empty(t, fixture.CallsWithPrefix("DeleteRouter"))
	})
}

func TestDeleteAllDirectKinds(t *testing.T) {
	t.Parallel()

	fixture := purgetest.NewCloudFixture("demo").With(purge.KindVolume, purgetest.Resource("v1"), purgetest.Resource("v2"))
	handles := fixture.Remaining(purge.KindVolume)

	out, err := newDeleter(fixture, nil).DeleteAll(context.Background(), purge.KindVolume, handles)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Deleted)
	assert.Equal(t, []string{"DeleteVolume v1", "DeleteVolume v2"}, fixture.Calls())
	assert.Empty(t, fixture.Remaining(purge.KindVolume))
}

func TestDeleteAllStopsOnCancel(t *testing.T) {
	t.Parallel()

	fixture := purgetest.NewCloudFixture("demo")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newDeleter(fixture, nil).DeleteAll(ctx, purge.KindServer, []purge.Handle{purgetest.Resource("s1")})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fixture.Calls())
}
