//go:build linux || darwin

package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestNow(t *testing.T) {
	before := time.Now()
	ts, err := Now()
	require.NoError(t, err)
	require.WithinDuration(t, before, time.Unix(ts.Unix()), time.Minute)
}

func TestFileTimesAndSetTimes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	f, err := OpenForTouch(path, true)
	require.NoError(t, err)
	defer f.Close()

	want := Times{
		Atime: unix.NsecToTimespec(time.Date(2001, 2, 3, 4, 5, 6, 7000, time.UTC).UnixNano()),
		Mtime: unix.NsecToTimespec(time.Date(2002, 3, 4, 5, 6, 7, 8000, time.UTC).UnixNano()),
	}
	require.NoError(t, SetTimes(f, want))

	got, err := FileTimes(f)
	require.NoError(t, err)
	require.Equal(t, want.Atime.Sec, got.Atime.Sec)
	require.Equal(t, want.Mtime.Sec, got.Mtime.Sec)
}

func TestOpenForTouch_NoCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	_, err := OpenForTouch(path, false)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMkdirRmdir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "d")
	require.NoError(t, Mkdir(dir))
	require.ErrorIs(t, Mkdir(dir), os.ErrExist)

	typ, err := Classify(dir)
	require.NoError(t, err)
	require.Equal(t, TypeDir, typ)

	require.NoError(t, Rmdir(dir))
	_, err = Classify(dir)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRmdir_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	err := Rmdir(file)
	require.Error(t, err)
	require.Equal(t, unix.ENOTDIR.Error(), Reason(err))

	typ, err := Classify(file)
	require.NoError(t, err)
	require.Equal(t, TypeFile, typ)
}
