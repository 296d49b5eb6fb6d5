package launch

import (
	"context"
	"fmt"

	"github.com/dropnote/dropnote/internal/catalog"
	"github.com/dropnote/dropnote/internal/probe"
)

// SpawnLauncher starts a terminal's executable directly with a
// working-directory argument. Fire and forget: spawn succeeding is treated
// as success, no window is ever confirmed.
type SpawnLauncher struct {
	index   probe.AppIndex
	spawner ProcessSpawner
}

func NewSpawnLauncher(index probe.AppIndex, spawner ProcessSpawner) *SpawnLauncher {
	return &SpawnLauncher{index: index, spawner: spawner}
}

func (l *SpawnLauncher) Attempt(ctx context.Context, d catalog.Descriptor, dir string) (Outcome, error) {
	path, err := l.index.ExecutablePath(d)
	if err != nil {
		// Sandboxing and bundle-structure variance make this common; the
		// dispatcher degrades to the generic fallback instead of aborting.
		return failure(err.Error()), fmt.Errorf("%w: %v", ErrResolve, err)
	}
	args := spawnArgs(d, dir)
	if err := l.spawner.Spawn(path, args); err != nil {
		return failure(err.Error()), fmt.Errorf("%w: %v", ErrSpawn, err)
	}
	return Outcome{State: ConfirmedReady}, nil
}

func spawnArgs(d catalog.Descriptor, dir string) []string {
	if d.Method == catalog.VendorSpecificCLI {
		// WezTerm's CLI spawns the GUI itself.
		return []string{"start", "--cwd", dir}
	}
	return []string{d.DirFlag + "=" + dir}
}
