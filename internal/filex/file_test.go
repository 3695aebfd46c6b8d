package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "a", "b", AppName)

	require.NoError(t, EnsureDir(want))

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), AppName)

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.txt"), []byte("x"), 0o600))
	require.NoError(t, EnsureDir(dir))

	_, err := os.Stat(filepath.Join(dir, "1.txt"))
	require.NoError(t, err, "existing entries must survive a second call")
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), AppName)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	require.Error(t, EnsureDir(path), "should fail when a file exists with the same name")
}

func TestDataDir_UsesXDGDataHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	got, err := DataDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/tmp/xdg", AppName), got)
}

func TestDataDir_FallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)

	if runtime.GOOS == "windows" {
		t.Skip("HOME is not consulted on windows")
	}

	got, err := DataDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", AppName), got)
}
