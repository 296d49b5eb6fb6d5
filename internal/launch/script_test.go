package launch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropnote/dropnote/internal/catalog"
)

func TestScriptedTerminalAppEscapesPath(t *testing.T) {
	runner := &fakeRunner{}
	l := NewScriptedLauncher(runner)

	out, err := l.Attempt(context.Background(), mustDescriptor("com.apple.Terminal"), "/tmp/a'b")
	require.NoError(t, err)
	assert.Equal(t, ConfirmedReady, out.State)

	require.Len(t, runner.scripts, 1)
	script := runner.scripts[0]
	assert.Contains(t, script, `tell application "Terminal"`)
	assert.Contains(t, script, "activate")
	// The shell command carried by the script must use the exact POSIX
	// close-escape-reopen quoting.
	assert.Contains(t, script, fmt.Sprintf("do script %q", `cd '/tmp/a'\''b'`))
}

func TestScriptedITermOpensSession(t *testing.T) {
	runner := &fakeRunner{}
	l := NewScriptedLauncher(runner)

	out, err := l.Attempt(context.Background(), mustDescriptor("com.googlecode.iterm2"), "/Users/test/My Folder")
	require.NoError(t, err)
	assert.Equal(t, ConfirmedReady, out.State)

	require.Len(t, runner.scripts, 1)
	script := runner.scripts[0]
	assert.Contains(t, script, `tell application "iTerm"`)
	assert.Contains(t, script, "create window with default profile")
	assert.Contains(t, script, fmt.Sprintf("write text %q", `cd '/Users/test/My Folder'`))
}

func TestScriptedUnknownIDActivatesOnly(t *testing.T) {
	runner := &fakeRunner{}
	l := NewScriptedLauncher(runner)
	d := catalog.Descriptor{ID: "com.example.term", DisplayName: "Example", Method: catalog.ScriptedAutomation}

	out, err := l.Attempt(context.Background(), d, "/tmp")
	require.NoError(t, err)
	assert.Equal(t, ActivationOnly, out.State)

	require.Len(t, runner.scripts, 1)
	assert.Equal(t, `tell application id "com.example.term" to activate`, runner.scripts[0])
}

func TestScriptedFailureIsAutomationError(t *testing.T) {
	runner := &fakeRunner{err: errBoom}
	l := NewScriptedLauncher(runner)

	out, err := l.Attempt(context.Background(), mustDescriptor("com.apple.Terminal"), "/tmp")
	require.ErrorIs(t, err, ErrAutomation)
	assert.False(t, out.OK())
	assert.NotEmpty(t, out.Detail)
	// No retry at this layer.
	assert.Len(t, runner.scripts, 1)
}
