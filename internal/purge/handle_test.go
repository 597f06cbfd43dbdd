package purge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		deviceOwner string
		deviceID    string
		fixedIPs    []string
		want        PortOwner
	}{
		{"router interface", DeviceOwnerRouterInterface, "R1", []string{"10.0.0.1"}, RouterInterface{RouterID: "R1"}},
		{"router gateway", DeviceOwnerRouterGateway, "R1", []string{"203.0.113.4"}, RouterGateway{RouterID: "R1"}},
		{"floating ip", DeviceOwnerFloatingIP, "F1", []string{"203.0.113.7", "2001:db8::7"}, FloatingIPBinding{Address: "203.0.113.7"}},
		{"floating ip without address", DeviceOwnerFloatingIP, "F1", nil, FloatingIPBinding{}},
		{"compute", "compute:nova", "S1", []string{"10.0.0.5"}, OtherOwner{DeviceOwner: "compute:nova"}},
		{"unbound", "", "", nil, OtherOwner{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyPort(tt.deviceOwner, tt.deviceID, tt.fixedIPs))
		})
	}
}

func TestHandleOwnedBy(t *testing.T) {
	t.Parallel()

	assert.True(t, Handle{ProjectID: "p1"}.ownedBy("p1"))
	assert.False(t, Handle{}.ownedBy("p1"), "unknown ownership is rejected")
	assert.False(t, Handle{}.ownedBy(""))
	assert.False(t, Handle{ProjectID: "p2"}.ownedBy("p1"))
}

func TestHandleString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "server web (abc)", Handle{Kind: KindServer, ID: "abc", Name: "web"}.String())
	assert.Equal(t, "port abc", Handle{Kind: KindPort, ID: "abc"}.String())
	assert.Equal(t, "keypair k1", Handle{Kind: KindKeypair, ID: "k1", Name: "k1"}.String())
}
