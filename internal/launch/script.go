package launch

import (
	"context"
	"fmt"

	"github.com/dropnote/dropnote/internal/catalog"
)

// ScriptedLauncher drives terminals whose only non-destructive automation
// surface is AppleScript: open a window, issue a cd, activate.
type ScriptedLauncher struct {
	runner ScriptRunner
}

func NewScriptedLauncher(runner ScriptRunner) *ScriptedLauncher {
	return &ScriptedLauncher{runner: runner}
}

func (l *ScriptedLauncher) Attempt(ctx context.Context, d catalog.Descriptor, dir string) (Outcome, error) {
	script := automationScript(d, dir)
	if err := l.runner.Run(ctx, script); err != nil {
		return failure(err.Error()), fmt.Errorf("%w: %v", ErrAutomation, err)
	}
	if script == activateOnlyScript(d) {
		// No bespoke template for this terminal: the window was activated
		// but never told to cd. Documented limitation.
		return Outcome{State: ActivationOnly, Detail: "activated without directory change"}, nil
	}
	return Outcome{State: ConfirmedReady}, nil
}

// automationScript picks the script template for the terminal. The two
// terminals with rich window/session scripting get dedicated templates;
// anything else assigned this method is merely activated.
func automationScript(d catalog.Descriptor, dir string) string {
	switch d.ID {
	case "com.apple.Terminal":
		return fmt.Sprintf(`tell application "Terminal"
	activate
	do script %q
end tell`, cdCommand(dir))
	case "com.googlecode.iterm2":
		return fmt.Sprintf(`tell application "iTerm"
	activate
	create window with default profile
	tell current session of current window
		write text %q
	end tell
end tell`, cdCommand(dir))
	default:
		return activateOnlyScript(d)
	}
}

func activateOnlyScript(d catalog.Descriptor) string {
	return fmt.Sprintf(`tell application id %q to activate`, d.ID)
}
