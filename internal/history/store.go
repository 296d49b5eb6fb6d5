package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mitchellh/go-homedir"
	_ "modernc.org/sqlite"

	"github.com/dropnote/dropnote/internal/launch"
)

// Store persists launch attempts in a SQLite database so failures stay
// diagnosable after the fact.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Row is one recorded launch attempt.
type Row struct {
	ID         string
	At         time.Time
	TerminalID string
	Terminal   string
	Dir        string
	Method     string
	FellBack   bool
	State      string
	Detail     string
	DurationMS int64
}

// DefaultPath returns ~/.dropnote/history.db.
func DefaultPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(os.TempDir(), "dropnote-history.db")
	}
	return filepath.Join(home, ".dropnote", "history.db")
}

// Open creates (or opens) the attempt database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS attempts (
		id TEXT PRIMARY KEY,
		at TEXT,
		terminal_id TEXT,
		terminal TEXT,
		dir TEXT,
		method TEXT,
		fell_back INTEGER,
		state TEXT,
		detail TEXT,
		duration_ms INTEGER
	);`)
	if err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return nil
}

// Record inserts a new attempt.
func (s *Store) Record(a launch.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO attempts
		(id, at, terminal_id, terminal, dir, method, fell_back, state, detail, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.At.Format(time.RFC3339),
		a.Terminal.ID,
		a.Terminal.DisplayName,
		a.Dir,
		a.Terminal.Method.String(),
		boolToInt(a.FellBack),
		a.Outcome.State.String(),
		a.Outcome.Detail,
		a.Duration.Milliseconds(),
	)
	return err
}

// Recent returns the newest attempts, most recent first.
func (s *Store) Recent(limit int) ([]Row, error) {
	query := `SELECT id, at, terminal_id, terminal, dir, method, fell_back, state, detail, duration_ms
		FROM attempts ORDER BY datetime(at) DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var at string
		var fellBack int
		if err := rows.Scan(&r.ID, &at, &r.TerminalID, &r.Terminal, &r.Dir, &r.Method, &fellBack, &r.State, &r.Detail, &r.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, at); err == nil {
			r.At = t
		}
		r.FellBack = fellBack == 1
		out = append(out, r)
	}
	return out, rows.Err()
}

// Clear deletes all recorded attempts.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM attempts")
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ launch.Recorder = (*Store)(nil)
