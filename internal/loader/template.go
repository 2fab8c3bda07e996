package loader

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Template is a complete example project file.
//
//go:embed template.yaml
var Template []byte

// ErrExists is returned by WriteTemplate when the target already exists.
var ErrExists = errors.New("file already exists")

// WriteTemplate writes Template to path, creating parent directories. An
// existing file is only replaced when force is set.
func WriteTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, Template, 0o644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}
