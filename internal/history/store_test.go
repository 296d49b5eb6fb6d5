package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropnote/dropnote/internal/catalog"
	"github.com/dropnote/dropnote/internal/launch"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testAttempt(state launch.State, at time.Time) launch.Attempt {
	term, _ := catalog.Lookup("org.alacritty")
	return launch.Attempt{
		ID:       uuid.NewString(),
		At:       at,
		Terminal: term,
		Dir:      "/Users/test/My Folder",
		FellBack: state == launch.ActivationOnly,
		Outcome:  launch.Outcome{State: state, Detail: "detail"},
		Duration: 120 * time.Millisecond,
	}
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	older := testAttempt(launch.ConfirmedReady, time.Now().Add(-time.Hour))
	newer := testAttempt(launch.ActivationOnly, time.Now())
	require.NoError(t, s.Record(older))
	require.NoError(t, s.Record(newer))

	rows, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, newer.ID, rows[0].ID, "most recent first")
	assert.Equal(t, "Alacritty", rows[0].Terminal)
	assert.Equal(t, "org.alacritty", rows[0].TerminalID)
	assert.Equal(t, "/Users/test/My Folder", rows[0].Dir)
	assert.Equal(t, "working-dir-flag", rows[0].Method)
	assert.Equal(t, "activation-only", rows[0].State)
	assert.True(t, rows[0].FellBack)
	assert.Equal(t, int64(120), rows[0].DurationMS)
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(testAttempt(launch.ConfirmedReady, time.Now().Add(time.Duration(i)*time.Minute))))
	}
	rows, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Record(testAttempt(launch.Failed, time.Now())))
	require.NoError(t, s.Clear())

	rows, err := s.Recent(0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	a := testAttempt(launch.ConfirmedReady, time.Now())
	require.NoError(t, s.Record(a))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	rows, err := s2.Recent(0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, a.ID, rows[0].ID)
}
