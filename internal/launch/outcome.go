package launch

import (
	"errors"
	"time"

	"github.com/dropnote/dropnote/internal/catalog"
)

// Error kinds produced by the launch strategies. The dispatcher degrades to
// the generic fallback on ErrResolve and ErrSpawn; everything else is
// terminal for the request.
var (
	ErrNotInstalled      = errors.New("terminal not installed")
	ErrResolve           = errors.New("executable resolution failed")
	ErrSpawn             = errors.New("process spawn failed")
	ErrAutomation        = errors.New("automation script failed")
	ErrActivationTimeout = errors.New("activation timed out")
)

// State grades a launch result. A spawned or scripted launch confirms the
// window is positioned at the path; the generic fallback only confirms the
// app was activated, with the cd keystrokes sent best-effort.
type State int

const (
	Failed State = iota
	ConfirmedReady
	ActivationOnly
)

func (s State) String() string {
	switch s {
	case ConfirmedReady:
		return "confirmed-ready"
	case ActivationOnly:
		return "activation-only"
	default:
		return "failed"
	}
}

// Outcome is the result of one launch attempt, consumed immediately by the
// caller to decide whether to show an error.
type Outcome struct {
	State  State
	Detail string
}

// OK reports success at either grade.
func (o Outcome) OK() bool {
	return o.State != Failed
}

func failure(detail string) Outcome {
	return Outcome{State: Failed, Detail: detail}
}

// Attempt is the diagnostic record of one dispatched launch request.
type Attempt struct {
	ID       string
	At       time.Time
	Terminal catalog.Descriptor
	Dir      string
	FellBack bool
	Outcome  Outcome
	Duration time.Duration
}

// Recorder persists attempts for later diagnosis. Implementations must not
// fail the launch; the dispatcher only logs recording errors.
type Recorder interface {
	Record(a Attempt) error
}
