package launch

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dropnote/dropnote/internal/catalog"
	"github.com/dropnote/dropnote/internal/probe"
)

// Strategy is one launch family with a uniform attempt contract.
type Strategy interface {
	Attempt(ctx context.Context, d catalog.Descriptor, dir string) (Outcome, error)
}

// Dispatcher routes a launch request to the strategy matching the
// terminal's launch method, degrading to the generic fallback when the
// preferred strategy fails for environmental reasons. Stateless beyond the
// read-only catalog; safe for concurrent requests.
type Dispatcher struct {
	prober   *probe.Prober
	scripted Strategy
	spawn    Strategy
	generic  Strategy
	recorder Recorder
	log      *zap.Logger

	activationTimeout time.Duration
	keystrokeDelay    time.Duration
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRecorder attaches an attempt recorder.
func WithRecorder(r Recorder) Option {
	return func(d *Dispatcher) { d.recorder = r }
}

// WithLogger replaces the no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(d *Dispatcher) { d.log = log }
}

// WithStrategies overrides the strategy implementations (tests).
func WithStrategies(scripted, spawn, generic Strategy) Option {
	return func(d *Dispatcher) {
		d.scripted, d.spawn, d.generic = scripted, spawn, generic
	}
}

// WithFallbackTiming tunes the generic fallback's activation wait and
// keystroke delay.
func WithFallbackTiming(activationTimeout, keystrokeDelay time.Duration) Option {
	return func(d *Dispatcher) {
		d.activationTimeout = activationTimeout
		d.keystrokeDelay = keystrokeDelay
	}
}

// NewDispatcher builds a dispatcher over the host's application index.
// Strategies not overridden by options are exec-backed.
func NewDispatcher(index probe.AppIndex, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		prober:            probe.New(index),
		log:               zap.NewNop(),
		activationTimeout: DefaultActivationTimeout,
		keystrokeDelay:    DefaultKeystrokeDelay,
	}
	for _, opt := range opts {
		opt(d)
	}
	runner := OsascriptRunner{}
	if d.scripted == nil {
		d.scripted = NewScriptedLauncher(runner)
	}
	if d.spawn == nil {
		d.spawn = NewSpawnLauncher(index, ExecSpawner{})
	}
	if d.generic == nil {
		g := NewGenericLauncher(index, OpenCommandOpener{}, SystemEventsSender{Runner: runner})
		g.ActivationTimeout = d.activationTimeout
		g.KeystrokeDelay = d.keystrokeDelay
		d.generic = g
	}
	return d
}

// Open opens a terminal window positioned at dir. Installation is
// re-verified here rather than trusted from the caller's menu snapshot:
// apps can be removed between menu construction and the click. Never
// panics; every path yields an Outcome.
func (d *Dispatcher) Open(ctx context.Context, term catalog.Descriptor, dir string) Outcome {
	start := time.Now()
	log := d.log.With(
		zap.String("terminal", term.DisplayName),
		zap.String("bundle_id", term.ID),
		zap.String("dir", dir),
		zap.Stringer("method", term.Method),
	)

	if !d.prober.IsInstalled(term) {
		out := failure(ErrNotInstalled.Error())
		log.Warn("launch refused", zap.Error(ErrNotInstalled))
		d.record(term, dir, false, out, time.Since(start))
		return out
	}

	out, fellBack := d.dispatch(ctx, term, dir, log)
	if out.OK() {
		log.Info("launch succeeded",
			zap.Stringer("state", out.State),
			zap.Bool("fell_back", fellBack))
	} else {
		log.Error("launch failed", zap.String("detail", out.Detail))
	}
	d.record(term, dir, fellBack, out, time.Since(start))
	return out
}

func (d *Dispatcher) dispatch(ctx context.Context, term catalog.Descriptor, dir string, log *zap.Logger) (Outcome, bool) {
	switch term.Method {
	case catalog.ScriptedAutomation:
		// Automation errors are terminal: the app is present but refused
		// the script, and re-driving it blindly risks double execution.
		out, _ := d.scripted.Attempt(ctx, term, dir)
		return out, false

	case catalog.CommandLineWorkingDir, catalog.CommandLineDirectoryFlag, catalog.VendorSpecificCLI:
		out, err := d.spawn.Attempt(ctx, term, dir)
		if err != nil && (errors.Is(err, ErrResolve) || errors.Is(err, ErrSpawn)) {
			log.Warn("spawn path unavailable, falling back to generic open", zap.Error(err))
			out, _ = d.generic.Attempt(ctx, term, dir)
			return out, true
		}
		return out, false

	case catalog.GenericOpen:
		out, _ := d.generic.Attempt(ctx, term, dir)
		return out, false

	default:
		return failure("unknown launch method"), false
	}
}

func (d *Dispatcher) record(term catalog.Descriptor, dir string, fellBack bool, out Outcome, dur time.Duration) {
	if d.recorder == nil {
		return
	}
	a := Attempt{
		ID:       uuid.NewString(),
		At:       time.Now(),
		Terminal: term,
		Dir:      dir,
		FellBack: fellBack,
		Outcome:  out,
		Duration: dur,
	}
	if err := d.recorder.Record(a); err != nil {
		d.log.Warn("attempt not recorded", zap.Error(err))
	}
}
