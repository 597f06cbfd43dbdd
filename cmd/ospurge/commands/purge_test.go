package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurge(t *testing.T) {
	cmd := Purge(nil)

	require.NotNil(t, cmd)
	assert.Equal(t, "purge", cmd.Use)
	assert.Equal(t, "Purge all resources of a project and delete it", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestPurge_Flags(t *testing.T) {
	cmd := Purge(nil)

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"cloud", "C", ""},
		{"project", "p", ""},
		{"keep-project", "", "false"},
		{"check", "", "false"},
		{"yes", "y", "false"},
		{"pushgateway", "", ""},
		{"report-bucket", "", ""},
		{"tui", "", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag, "%s flag should exist", tt.name)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestPurge_RejectsArgs(t *testing.T) {
	cmd := Root()
	cmd.SetArgs([]string{"purge", "demo"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestPurge_LongDescription(t *testing.T) {
	cmd := Purge(nil)

	assert.Contains(t, cmd.Long, "Servers")
	assert.Contains(t, cmd.Long, "Routers")
	assert.Contains(t, cmd.Long, "--keep-project")
	assert.Contains(t, cmd.Long, "OS_CLOUD")
	assert.Contains(t, cmd.Long, "WARNING")
}
