package configfiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("places: [A]\n"), 0o600))
}

func TestFind(t *testing.T) {
	t.Run("finds yaml files in dir and test subdir", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "team-b.yaml"))
		touch(t, filepath.Join(dir, "team-a.yml"))
		touch(t, filepath.Join(dir, "notes.txt"))
		touch(t, filepath.Join(dir, ".golangci.yml"))
		touch(t, filepath.Join(dir, "docker-compose.yml"))
		touch(t, filepath.Join(dir, "test", "fixture.yaml"))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.yaml"), 0o755))

		files, err := Find(dir)
		require.NoError(t, err)
		require.Equal(t, []string{
			filepath.Join(dir, "team-a.yml"),
			filepath.Join(dir, "team-b.yaml"),
			filepath.Join(dir, "test", "fixture.yaml"),
		}, files)
	})

	t.Run("no config files", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "readme.md"))

		_, err := Find(dir)
		require.ErrorIs(t, err, ErrNoConfigFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Find(filepath.Join(t.TempDir(), "missing"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
