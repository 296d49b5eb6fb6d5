package launch

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ScriptRunner executes an AppleScript source through the system automation
// engine. A non-nil error covers both compile and runtime failures.
type ScriptRunner interface {
	Run(ctx context.Context, script string) error
}

// ProcessSpawner starts a detached process. Start succeeding is the whole
// contract; the spawned terminal is never waited on.
type ProcessSpawner interface {
	Spawn(path string, args []string) error
}

// AppOpener asks the OS to launch or activate an application bundle and
// blocks until the OS reports completion.
type AppOpener interface {
	Open(ctx context.Context, bundleID string) error
}

// KeystrokeSender types text followed by a return keystroke into whichever
// application is frontmost.
type KeystrokeSender interface {
	Type(ctx context.Context, text string) error
}

// OsascriptRunner runs scripts via /usr/bin/osascript.
type OsascriptRunner struct{}

func (OsascriptRunner) Run(ctx context.Context, script string) error {
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ExecSpawner starts processes with stdio discarded and reaps them in the
// background.
type ExecSpawner struct{}

func (ExecSpawner) Spawn(path string, args []string) error {
	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}

// OpenCommandOpener activates apps with /usr/bin/open by bundle identifier.
type OpenCommandOpener struct{}

func (OpenCommandOpener) Open(ctx context.Context, bundleID string) error {
	cmd := exec.CommandContext(ctx, "open", "-b", bundleID)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("open -b %s: %v: %s", bundleID, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// SystemEventsSender injects keystrokes through the System Events scripting
// interface. Delivery to the intended window is not confirmed.
type SystemEventsSender struct {
	Runner ScriptRunner
}

func (s SystemEventsSender) Type(ctx context.Context, text string) error {
	runner := s.Runner
	if runner == nil {
		runner = OsascriptRunner{}
	}
	script := fmt.Sprintf(`tell application "System Events" to keystroke %q & return`, text)
	return runner.Run(ctx, script)
}
