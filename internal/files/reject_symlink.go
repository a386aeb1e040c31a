package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RejectSymlinkPath returns an error if the path or any existing ancestor is a symlink.
func RejectSymlinkPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve absolute path: %w", err)
	}

	volume := filepath.VolumeName(abs)
	rest := strings.TrimLeft(abs[len(volume):], string(os.PathSeparator))
	current := volume + string(os.PathSeparator)
	if rest == "" {
		return nil
	}

	for _, part := range strings.Split(rest, string(os.PathSeparator)) {
		if part == "" {
			continue
		}
		current = filepath.Join(current, part)
		info, err := os.Lstat(current)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("access path: %w", err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("refusing to write through symlink %s", current)
		}
		reparse, err := isReparsePoint(current)
		if err != nil {
			return fmt.Errorf("check reparse point: %w", err)
		}
		if reparse {
			return fmt.Errorf("refusing to write through reparse point %s", current)
		}
	}
	return nil
}
