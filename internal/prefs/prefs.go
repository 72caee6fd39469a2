// Package prefs persists the dashboard's dark-mode choice across runs.
//
// The file is small TOML, ~/.config/jester/prefs.toml by default:
//
//	dark_mode = true
//
// It is read once at startup and rewritten on every theme toggle.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs is the persisted preference record. The zero value is light mode.
type Prefs struct {
	DarkMode bool `toml:"dark_mode"`
}

const defaultPrefsPath = "~/.config/jester/prefs.toml"

// DefaultPath returns the default preferences file path, unexpanded.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load returns the stored preferences. Any problem reading the file (missing,
// unreadable, malformed, wrong types) yields the zero Prefs; the error result
// is always nil and kept for call-site symmetry with Save.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}, nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Prefs{}, nil
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}, nil
	}
	return p, nil
}

// Save replaces the preferences file. Parent directories are created, and
// the new contents are renamed into place so a crash never leaves a partial
// file behind.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// File is a dashboard.PreferenceStore backed by the file at Path.
type File struct {
	Path string
}

// SaveDarkMode records the theme flag, keeping any other stored fields.
func (f File) SaveDarkMode(dark bool) error {
	current, _ := Load(f.Path)
	current.DarkMode = dark
	return Save(f.Path, current)
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultPrefsPath
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	return filepath.Abs(path)
}
