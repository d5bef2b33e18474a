package prefs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "pilgrim"

// DefaultSlotPath is where a named slot lives under the user config dir.
func DefaultSlotPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name+".json"), nil
}

// FileSlot keeps a single blob in one file. Writes go through a temp file and
// a rename so a reader never sees a half-written payload.
type FileSlot struct {
	path string
}

// NewFileSlot creates the parent directory of path if needed.
func NewFileSlot(path string) (*FileSlot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir slot dir: %w", err)
	}
	return &FileSlot{path: path}, nil
}

func (f *FileSlot) Path() string { return f.path }

// Load returns nil, nil when the file does not exist yet.
func (f *FileSlot) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (f *FileSlot) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
