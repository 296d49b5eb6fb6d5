package note

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const maxConflictSuffix = 10000

// Creator writes new Markdown notes into a target folder.
type Creator struct {
	// Extension is appended to sanitized names, ".md" if empty.
	Extension string
	// Template is the initial file content; {{title}} and {{date}}
	// placeholders are substituted.
	Template string
}

// Create writes a new note named after name in dir and returns its path.
// Names are sanitized, conflicts resolved by numeric suffix, and the file
// is written atomically.
func (c Creator) Create(dir, name string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("target folder: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("target %s is not a folder", dir)
	}

	title := SanitizeName(name)
	path, err := c.availablePath(dir, title)
	if err != nil {
		return "", err
	}
	if err := atomicWrite(path, []byte(c.render(title))); err != nil {
		return "", err
	}
	return path, nil
}

func (c Creator) extension() string {
	if c.Extension == "" {
		return ".md"
	}
	return c.Extension
}

func (c Creator) render(title string) string {
	out := strings.ReplaceAll(c.Template, "{{title}}", title)
	out = strings.ReplaceAll(out, "{{date}}", time.Now().Format("2006-01-02"))
	return out
}

// availablePath finds the first non-colliding path: "name.md",
// "name 2.md", "name 3.md", ...
func (c Creator) availablePath(dir, title string) (string, error) {
	candidate := filepath.Join(dir, title+c.extension())
	for i := 2; ; i++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
		if i > maxConflictSuffix {
			return "", fmt.Errorf("too many files named %s in %s", title, dir)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s %d%s", title, i, c.extension()))
	}
}

// SanitizeName strips path separators and control characters from a
// user-supplied file name. Empty input becomes "untitled".
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '/' || r == ':' || r == 0:
			b.WriteRune('-')
		case r < 0x20 || r == 0x7f:
			// drop control characters
		default:
			b.WriteRune(r)
		}
	}
	out := strings.TrimSpace(b.String())
	out = strings.TrimLeft(out, ".")
	if out == "" {
		return "untitled"
	}
	return out
}

// atomicWrite writes content to a temp file in the same directory and
// renames it into place.
func atomicWrite(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write note: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to place note: %w", err)
	}
	return nil
}
