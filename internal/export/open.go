package export

import (
	"fmt"

	"github.com/pkg/browser"
)

// openFile is swapped out in tests
var openFile = browser.OpenFile

// Open shows a written file in the system browser.
func Open(path string) error {
	if err := openFile(path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}
