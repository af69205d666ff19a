package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vision-speech/internal/domain/entity"
)

func TestFileAudioStore_NewPathIsUnique(t *testing.T) {
	store, err := NewFileAudioStore(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	id1, p1, err := store.NewPath()
	require.NoError(t, err)
	id2, p2, err := store.NewPath()
	require.NoError(t, err)

	require.NotEqual(t, id1, id2)
	require.NotEqual(t, p1, p2)
	require.Equal(t, store.Dir(), filepath.Dir(p1))
	require.Equal(t, id1+".mp3", filepath.Base(p1))
}

func TestFileAudioStore_Path(t *testing.T) {
	store, err := NewFileAudioStore(t.TempDir())
	require.NoError(t, err)

	_, path, err := store.NewPath()
	require.NoError(t, err)
	name := filepath.Base(path)

	_, err = store.Path(name)
	require.ErrorIs(t, err, entity.ErrAudioNotFound)

	require.NoError(t, os.WriteFile(path, []byte("ID3"), 0o644))
	got, err := store.Path(name)
	require.NoError(t, err)
	require.Equal(t, path, got)

	for _, bad := range []string{"../" + name, "output.mp3", "passwd", name + ".txt", ""} {
		_, err := store.Path(bad)
		require.ErrorIs(t, err, entity.ErrAudioNotFound, bad)
	}
}

func TestFileAudioStore_Sweep(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileAudioStore(dir)
	require.NoError(t, err)

	_, oldPath, _ := store.NewPath()
	_, freshPath, _ := store.NewPath()
	foreign := filepath.Join(dir, "notes.txt")
	for _, p := range []string{oldPath, freshPath, foreign} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))
	require.NoError(t, os.Chtimes(foreign, past, past))

	removed, err := store.Sweep(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	require.NoFileExists(t, oldPath)
	require.FileExists(t, freshPath)
	require.FileExists(t, foreign)
}

func TestFileAudioStore_RemoveOutsideDir(t *testing.T) {
	store, err := NewFileAudioStore(t.TempDir())
	require.NoError(t, err)

	require.Error(t, store.Remove(filepath.Join(t.TempDir(), "x.mp3")))

	_, path, _ := store.NewPath()
	require.NoError(t, store.Remove(path))
}
