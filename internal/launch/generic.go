package launch

import (
	"context"
	"fmt"
	"time"

	"github.com/dropnote/dropnote/internal/catalog"
	"github.com/dropnote/dropnote/internal/probe"
)

const (
	// DefaultActivationTimeout bounds the wait for the OS to report launch
	// completion.
	DefaultActivationTimeout = 2 * time.Second
	// DefaultKeystrokeDelay gives the app's main window time to become key
	// before keystrokes are injected. Empirical, tunable, not a guarantee.
	DefaultKeystrokeDelay = 500 * time.Millisecond

	keystrokeAttempts = 3
	keystrokeBackoff  = 300 * time.Millisecond
)

// GenericLauncher opens an application generically, waits for it to become
// frontmost, then types a cd command at whatever has input focus. Inherently
// racy: there is no confirmation the keystrokes landed in the intended
// terminal, so success from this path is graded ActivationOnly.
type GenericLauncher struct {
	index  probe.AppIndex
	opener AppOpener
	keys   KeystrokeSender

	ActivationTimeout time.Duration
	KeystrokeDelay    time.Duration
}

func NewGenericLauncher(index probe.AppIndex, opener AppOpener, keys KeystrokeSender) *GenericLauncher {
	return &GenericLauncher{
		index:             index,
		opener:            opener,
		keys:              keys,
		ActivationTimeout: DefaultActivationTimeout,
		KeystrokeDelay:    DefaultKeystrokeDelay,
	}
}

func (l *GenericLauncher) Attempt(ctx context.Context, d catalog.Descriptor, dir string) (Outcome, error) {
	if _, ok := l.index.BundlePath(d); !ok {
		// Nothing weaker to fall back to.
		err := fmt.Errorf("%w: no bundle for %s", ErrResolve, d.ID)
		return failure(err.Error()), err
	}

	if err := l.activate(ctx, d); err != nil {
		return failure(err.Error()), err
	}

	select {
	case <-time.After(l.KeystrokeDelay):
	case <-ctx.Done():
		return failure(ctx.Err().Error()), ctx.Err()
	}

	if err := l.sendCD(ctx, dir); err != nil {
		return failure(err.Error()), err
	}
	return Outcome{State: ActivationOnly, Detail: "keystroke delivery unconfirmed"}, nil
}

// activate asks the OS to open the app, bounding the wait regardless of
// whether the completion signal ever fires.
func (l *GenericLauncher) activate(ctx context.Context, d catalog.Descriptor) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- l.opener.Open(ctx, d.ID)
	}()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		return nil
	case <-time.After(l.ActivationTimeout):
		return fmt.Errorf("%w: %s did not activate within %s", ErrActivationTimeout, d.DisplayName, l.ActivationTimeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// sendCD types the cd command with a small retry loop; keystroke injection
// races window focus, so transient failures are worth one more try.
func (l *GenericLauncher) sendCD(ctx context.Context, dir string) error {
	var lastErr error
	backoff := keystrokeBackoff
	for attempt := 0; attempt < keystrokeAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			backoff *= 2
		}
		if err := l.keys.Type(ctx, cdCommand(dir)); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("keystroke synthesis failed: %w", lastErr)
}
