package purge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ospurge/internal/purge"
)

func TestEnumerate(t *testing.T) {
	t.Parallel()

	t.Run("passes filter and fills kind", func(t *testing.T) {
		t.Parallel()
		var got purge.Filter
		cloud := &purge.MockCloud{
			ListImagesFunc: func(_ context.Context, f purge.Filter) ([]purge.Handle, error) {
				got = f
				return []purge.Handle{{ID: "i1", ProjectID: "p1"}}, nil
			},
		}

		handles, err := purge.NewEnumerator(cloud, logr.Discard()).Enumerate(context.Background(), purge.KindImage, "p1")
		require.NoError(t, err)
		assert.Equal(t, purge.Filter{Field: purge.FieldOwner, Value: "p1"}, got)
		require.Len(t, handles, 1)
		assert.Equal(t, purge.KindImage, handles[0].Kind)
	})

	t.Run("drops foreign and unattributed resources", func(t *testing.T) {
		t.Parallel()
		cloud := &purge.MockCloud{
			ListNetworksFunc: func(_ context.Context, _ purge.Filter) ([]purge.Handle, error) {
				return []purge.Handle{
					{ID: "n1", ProjectID: "p1"},
					{ID: "shared", ProjectID: "admin"},
					{ID: "n2"},
				}, nil
			},
		}

		handles, err := purge.NewEnumerator(cloud, logr.Discard()).Enumerate(context.Background(), purge.KindNetwork, "p1")
		require.NoError(t, err)
		ids := make([]string, 0, len(handles))
		for _, h := range handles {
			ids = append(ids, h.ID)
		}
		assert.Equal(t, []string{"n1"}, ids)
	})

	t.Run("wraps list errors", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("service unavailable")
		cloud := &purge.MockCloud{
			ListSnapshotsFunc: func(_ context.Context, _ purge.Filter) ([]purge.Handle, error) {
				return nil, cause
			},
		}

		_, err := purge.NewEnumerator(cloud, logr.Discard()).Enumerate(context.Background(), purge.KindSnapshot, "p1")
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		var ke *purge.KindError
		require.ErrorAs(t, err, &ke)
		assert.Equal(t, purge.OpList, ke.Op)
		assert.Equal(t, "failed to gather snapshots information: service unavailable", err.Error())
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()
		_, err := purge.NewEnumerator(&purge.MockCloud{}, logr.Discard()).Enumerate(context.Background(), purge.Kind("bucket"), "p1")
		require.Error(t, err)
	})
}
