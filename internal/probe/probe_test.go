package probe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropnote/dropnote/internal/catalog"
)

type memIndex struct {
	bundles map[string]string
	execs   map[string]string
}

func (m *memIndex) BundlePath(d catalog.Descriptor) (string, bool) {
	p, ok := m.bundles[d.ID]
	return p, ok
}

func (m *memIndex) ExecutablePath(d catalog.Descriptor) (string, error) {
	if p, ok := m.execs[d.ID]; ok {
		return p, nil
	}
	return "", fmt.Errorf("no executable for %s", d.ID)
}

func TestInstalledIsOrderedSubset(t *testing.T) {
	index := &memIndex{
		bundles: map[string]string{
			"net.kovidgoyal.kitty": "/Applications/kitty.app",
			"com.apple.Terminal":   "/System/Applications/Utilities/Terminal.app",
		},
		execs: map[string]string{},
	}
	p := New(index)

	installed := p.Installed()
	require.Len(t, installed, 2)
	// Catalog order, not map order: Terminal precedes kitty.
	assert.Equal(t, "com.apple.Terminal", installed[0].ID)
	assert.Equal(t, "net.kovidgoyal.kitty", installed[1].ID)

	position := map[string]int{}
	for i, d := range catalog.All() {
		position[d.ID] = i
	}
	for i := 1; i < len(installed); i++ {
		assert.Less(t, position[installed[i-1].ID], position[installed[i].ID])
	}
}

func TestInstalledRecomputesEachQuery(t *testing.T) {
	index := &memIndex{bundles: map[string]string{}, execs: map[string]string{}}
	p := New(index)

	assert.Empty(t, p.Installed())

	// "Install" an app between queries; no staleness allowed.
	index.bundles["co.zeit.hyper"] = "/Applications/Hyper.app"
	installed := p.Installed()
	require.Len(t, installed, 1)
	assert.Equal(t, "co.zeit.hyper", installed[0].ID)

	// And "uninstall" again.
	delete(index.bundles, "co.zeit.hyper")
	assert.Empty(t, p.Installed())
}

func TestCLIOnlyInstallCounts(t *testing.T) {
	index := &memIndex{
		bundles: map[string]string{},
		execs:   map[string]string{"net.kovidgoyal.kitty": "/opt/homebrew/bin/kitty"},
	}
	p := New(index)

	kitty, ok := catalog.Lookup("net.kovidgoyal.kitty")
	require.True(t, ok)
	assert.True(t, p.IsInstalled(kitty))
}

func TestNothingInstalledIsEmptyNotError(t *testing.T) {
	p := New(&memIndex{bundles: map[string]string{}, execs: map[string]string{}})
	installed := p.Installed()
	assert.NotNil(t, installed)
	assert.Empty(t, installed)
}
