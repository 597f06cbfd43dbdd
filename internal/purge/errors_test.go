package purge

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		err := &KindError{Kind: KindVolume, Op: OpList, Err: cause}
		assert.Equal(t, "failed to gather volumes information: boom", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		err := &KindError{Kind: KindSecurityGroup, Op: OpDelete, Err: cause}
		assert.Equal(t, "failed to delete security_groups: boom", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("errors.As", func(t *testing.T) {
		t.Parallel()
		var wrapped error = fmt.Errorf("purge: %w", &KindError{Kind: KindPort, Op: OpDelete, Err: cause})
		var ke *KindError
		assert.ErrorAs(t, wrapped, &ke)
		assert.Equal(t, KindPort, ke.Kind)
	})
}

func TestIsConflict(t *testing.T) {
	t.Parallel()

	assert.True(t, IsConflict(ErrConflict))
	assert.True(t, IsConflict(fmt.Errorf("%w: port in use", ErrConflict)))
	assert.True(t, IsConflict(fmt.Errorf("unwind: %w", fmt.Errorf("%w: x", ErrConflict))))
	assert.False(t, IsConflict(errors.New("409")))
	assert.False(t, IsConflict(nil))
}
