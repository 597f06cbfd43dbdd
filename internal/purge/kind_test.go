package purge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder(t *testing.T) {
	t.Parallel()

	want := []Kind{
		KindServer, KindVolume, KindSnapshot, KindImage, KindPort, KindNetwork,
		KindSubnet, KindRouter, KindSecurityGroup, KindFloatingIP, KindKeypair, KindStack,
	}
	assert.Equal(t, want, Order)
	assert.Len(t, kindTable, len(Order), "every ordered kind needs a table entry")
	for _, k := range Order {
		_, ok := kindTable[k]
		assert.True(t, ok, "missing table entry for %s", k)
	}
}

func TestKindFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     Kind
		field    string
		detailed bool
	}{
		{KindServer, FieldProjectID, true},
		{KindVolume, FieldProjectID, true},
		{KindSnapshot, FieldProjectID, true},
		{KindImage, FieldOwner, false},
		{KindPort, FieldProjectID, false},
		{KindNetwork, FieldProjectID, false},
		{KindSubnet, FieldProjectID, false},
		{KindRouter, FieldProjectID, false},
		{KindSecurityGroup, FieldProjectID, false},
		{KindFloatingIP, FieldProjectID, false},
		{KindKeypair, FieldProjectID, false},
		{KindStack, FieldProjectID, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()
			f := tt.kind.Filter("p1")
			assert.Equal(t, tt.field, f.Field)
			assert.Equal(t, "p1", f.Value)
			assert.Equal(t, tt.detailed, f.Detailed)
		})
	}
}

func TestKindService(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ServiceCompute, KindServer.Service())
	assert.Equal(t, ServiceCompute, KindKeypair.Service())
	assert.Equal(t, ServiceBlockStorage, KindSnapshot.Service())
	assert.Equal(t, ServiceImage, KindImage.Service())
	assert.Equal(t, ServiceNetwork, KindFloatingIP.Service())
	assert.Equal(t, ServiceOrchestration, KindStack.Service())
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	k, err := ParseKind("security_group")
	require.NoError(t, err)
	assert.Equal(t, KindSecurityGroup, k)

	_, err = ParseKind("bucket")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown resource kind "bucket"`)
}

func TestFilterExpect(t *testing.T) {
	t.Parallel()

	require.NoError(t, KindImage.Filter("p1").Expect(FieldOwner))
	require.Error(t, KindImage.Filter("p1").Expect(FieldProjectID))
	require.Error(t, KindPort.Filter("").Expect(FieldProjectID))
}
