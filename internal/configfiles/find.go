// Package configfiles discovers roster configuration files on disk.
package configfiles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrNoConfigFiles is returned by Find when no configuration file exists.
var ErrNoConfigFiles = errors.New("no configuration files found")

// excluded lists YAML files that belong to tooling rather than rosters.
var excluded = map[string]struct{}{
	".golangci.yml":       {},
	".golangci.yaml":      {},
	"docker-compose.yml":  {},
	"docker-compose.yaml": {},
	"compose.yml":         {},
	"compose.yaml":        {},
	"codecov.yml":         {},
	".goreleaser.yml":     {},
	".goreleaser.yaml":    {},
}

// Find returns the roster configuration files in dir and in dir/test, sorted
// by path. A missing test subdirectory is not an error.
func Find(dir string) ([]string, error) {
	var found []string

	for _, d := range []string{dir, filepath.Join(dir, "test")} {
		entries, err := os.ReadDir(d)
		if err != nil {
			if d != dir && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read config directory %q: %w", d, err)
		}

		for _, entry := range entries {
			if IsConfigFile(entry) {
				found = append(found, filepath.Join(d, entry.Name()))
			}
		}
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoConfigFiles, dir)
	}

	slices.Sort(found)

	return found, nil
}

// IsConfigFile reports whether entry is a regular YAML file that is not a
// known tooling file.
func IsConfigFile(entry fs.DirEntry) bool {
	if !entry.Type().IsRegular() {
		return false
	}

	name := entry.Name()
	if _, skip := excluded[strings.ToLower(name)]; skip {
		return false
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
