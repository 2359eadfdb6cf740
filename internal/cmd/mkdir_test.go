package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMkdir_Parents(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "x"), 0o755))
	target := filepath.Join(root, "x", "y", "z")
	r, _, stderr := newTestRouter(t)

	require.Equal(t, StatusSuccess, r.Mkdir(MkdirArgs{Paths: []string{target}, Parents: true}))
	require.DirExists(t, target)
	require.Empty(t, stderr.String())

	// A second run only meets directories that already exist.
	require.Equal(t, StatusSuccess, r.Mkdir(MkdirArgs{Paths: []string{target}, Parents: true}))
	require.Empty(t, stderr.String())
}

func TestMkdir_WithoutParents(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "x", "y", "z")
	r, _, stderr := newTestRouter(t)

	require.Equal(t, StatusUnknown, r.Mkdir(MkdirArgs{Paths: []string{target}}))
	require.NoDirExists(t, filepath.Join(root, "x"))
	require.Equal(t, target+": cannot create directory: no such file or directory\n", stderr.String())
}

func TestMkdir_ExistingFailsWithoutParents(t *testing.T) {
	root := t.TempDir()
	r, _, stderr := newTestRouter(t)

	require.Equal(t, StatusUnknown, r.Mkdir(MkdirArgs{Paths: []string{root}}))
	require.Contains(t, stderr.String(), "file exists")
}

func TestMkdir_ContinuesAfterFailure(t *testing.T) {
	root := t.TempDir()
	bad := filepath.Join(root, "missing", "a")
	good := filepath.Join(root, "b")
	r, _, _ := newTestRouter(t)

	require.Equal(t, StatusUnknown, r.Mkdir(MkdirArgs{Paths: []string{bad, good}}))
	require.DirExists(t, good)
}

func TestMkdir_ParentsStopsAtFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	r, _, stderr := newTestRouter(t)

	require.Equal(t, StatusUnknown, r.Mkdir(MkdirArgs{
		Paths:   []string{filepath.Join(file, "a", "b"), filepath.Join(root, "ok", "c")},
		Parents: true,
	}))
	require.Equal(t, filepath.Join(file, "a")+": cannot create directory: not a directory\n", stderr.String())
	require.DirExists(t, filepath.Join(root, "ok", "c"))
}

func TestMkdir_Mode(t *testing.T) {
	target := filepath.Join(t.TempDir(), "d")
	r, _, _ := newTestRouter(t)

	require.Equal(t, StatusSuccess, r.Dispatch([]string{"mkdir", target}))
	info, err := os.Stat(target)
	require.NoError(t, err)
	// Never more than rwxrwxr-x, whatever the umask.
	require.Zero(t, info.Mode().Perm()&^0o775)
}
