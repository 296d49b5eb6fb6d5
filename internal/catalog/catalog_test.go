package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueIdentifiers(t *testing.T) {
	seen := make(map[string]struct{})
	for _, d := range All() {
		_, dup := seen[d.ID]
		require.False(t, dup, "duplicate identifier %s", d.ID)
		seen[d.ID] = struct{}{}
	}
}

func TestStableOrdering(t *testing.T) {
	first := All()
	second := All()
	require.Equal(t, first, second)

	// Mutating the returned slice must not affect the catalog.
	first[0].DisplayName = "mutated"
	assert.NotEqual(t, "mutated", All()[0].DisplayName)
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("com.apple.Terminal")
	require.True(t, ok)
	assert.Equal(t, "Terminal", d.DisplayName)
	assert.Equal(t, ScriptedAutomation, d.Method)

	_, ok = Lookup("com.example.nope")
	assert.False(t, ok)
}

func TestEveryEntryIsLaunchable(t *testing.T) {
	for _, d := range All() {
		assert.NotEmpty(t, d.DisplayName, "%s needs a display name", d.ID)
		assert.NotEmpty(t, d.AppName, "%s needs a bundle name", d.ID)
		switch d.Method {
		case CommandLineWorkingDir, CommandLineDirectoryFlag:
			assert.NotEmpty(t, d.DirFlag, "%s needs a directory flag", d.ID)
			assert.NotEmpty(t, d.CLIName, "%s needs an executable name", d.ID)
		case VendorSpecificCLI:
			assert.NotEmpty(t, d.CLIName, "%s needs a CLI name", d.ID)
		}
	}
}
