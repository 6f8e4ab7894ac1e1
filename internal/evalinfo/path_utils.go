package evalinfo

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

func isDir(path string) bool {
	path = strings.TrimSpace(path)
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func exists(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// entryIsDir follows symlinks so a linked scenario directory still counts.
func entryIsDir(parent string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	return isDir(filepath.Join(parent, e.Name()))
}

// readOptional reads a file that may legitimately be missing. A missing
// file yields (nil, nil).
func readOptional(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, unreadable(path, err)
	}
	return data, nil
}

// subdirs lists the non-hidden immediate subdirectories of dir.
func subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if isHidden(e.Name()) || !entryIsDir(dir, e) {
			continue
		}
		out = append(out, e.Name())
	}
	return out, nil
}
