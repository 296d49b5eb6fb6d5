package probe

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/dropnote/dropnote/internal/catalog"
)

// AppIndex is the host's application registry: it answers where a terminal's
// bundle and executable live on this machine.
type AppIndex interface {
	// BundlePath returns the on-disk .app bundle for the descriptor.
	BundlePath(d catalog.Descriptor) (string, bool)
	// ExecutablePath returns a runnable binary for the descriptor, either
	// from PATH or embedded in the bundle.
	ExecutablePath(d catalog.Descriptor) (string, error)
}

// DarwinIndex implements AppIndex against the local filesystem and
// Spotlight. Queries are cheap and uncached; installation state rarely
// changes and staleness is acceptable.
type DarwinIndex struct{}

// bundleDirs are the directories checked for app bundles, in order.
// Terminal.app ships under /System/Applications/Utilities.
func bundleDirs() []string {
	dirs := []string{"/Applications", "/Applications/Utilities", "/System/Applications/Utilities"}
	if home, err := homedir.Dir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Applications"))
	}
	return dirs
}

func (DarwinIndex) BundlePath(d catalog.Descriptor) (string, bool) {
	for _, dir := range bundleDirs() {
		p := filepath.Join(dir, d.AppName+".app")
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p, true
		}
	}
	// Spotlight knows about bundles installed elsewhere.
	out, err := exec.Command("mdfind", fmt.Sprintf("kMDItemCFBundleIdentifier == '%s'", d.ID)).Output()
	if err == nil {
		for _, line := range strings.Split(string(out), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				return line, true
			}
		}
	}
	return "", false
}

func (idx DarwinIndex) ExecutablePath(d catalog.Descriptor) (string, error) {
	if d.CLIName != "" {
		if p, err := exec.LookPath(d.CLIName); err == nil {
			return p, nil
		}
	}
	bundle, ok := idx.BundlePath(d)
	if !ok {
		return "", fmt.Errorf("no bundle found for %s (%s)", d.DisplayName, d.ID)
	}
	for _, name := range []string{d.CLIName, d.AppName} {
		if name == "" {
			continue
		}
		p := filepath.Join(bundle, "Contents", "MacOS", name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no executable inside %s", bundle)
}

// Prober answers which catalog terminals are present on the host.
type Prober struct {
	index AppIndex
}

func New(index AppIndex) *Prober {
	return &Prober{index: index}
}

// IsInstalled reports whether the descriptor's application is registered on
// the host, either as an app bundle or a PATH binary.
func (p *Prober) IsInstalled(d catalog.Descriptor) bool {
	if _, ok := p.index.BundlePath(d); ok {
		return true
	}
	_, err := p.index.ExecutablePath(d)
	return err == nil
}

// Installed filters the full catalog, preserving catalog order. Returns an
// empty slice (not an error) when no terminal is present; the caller omits
// terminal UI in that case.
func (p *Prober) Installed() []catalog.Descriptor {
	installed := make([]catalog.Descriptor, 0, len(catalog.All()))
	for _, d := range catalog.All() {
		if p.IsInstalled(d) {
			installed = append(installed, d)
		}
	}
	return installed
}
