package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore_Unit(t *testing.T) {
	// In-memory filesystem; no disk I/O.
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	filePath := "out/cards/front.html"
	fileContent := `<div class="business-card"></div>`

	t.Run("Save", func(t *testing.T) {
		bytesWritten, err := store.Save(ctx, filePath, bytes.NewReader([]byte(fileContent)))

		require.NoError(t, err)
		assert.Equal(t, int64(len(fileContent)), bytesWritten)

		readBytes, err := afero.ReadFile(memFs, filePath)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))

		// Only the target file is left behind.
		entries, err := afero.ReadDir(memFs, "out/cards")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Save replaces existing content", func(t *testing.T) {
		_, err := store.Save(ctx, filePath, strings.NewReader("v2"))
		require.NoError(t, err)

		readBytes, err := afero.ReadFile(memFs, filePath)
		require.NoError(t, err)
		assert.Equal(t, "v2", string(readBytes))
	})

	t.Run("Open", func(t *testing.T) {
		file, err := store.Open(ctx, filePath)
		require.NoError(t, err)
		defer file.Close()

		readBytes, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "v2", string(readBytes))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, filePath))

		exists, err := afero.Exists(memFs, filePath)
		require.NoError(t, err)
		assert.False(t, exists, "file should not exist after deleting")
	})

	t.Run("Open non-existent file", func(t *testing.T) {
		_, err := store.Open(ctx, "path/to/nothing.txt")
		assert.Error(t, err, "opening a non-existent file should return an error")
	})

	t.Run("Save with cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Save(cctx, "never.html", strings.NewReader("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAferoStore_FailedWriteKeepsOriginal(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	require.NoError(t, afero.WriteFile(memFs, "card.html", []byte("original"), 0644))

	_, err := store.Save(context.Background(), "card.html", io.MultiReader(strings.NewReader("partial"), failingReader{}))
	require.Error(t, err)

	readBytes, err := afero.ReadFile(memFs, "card.html")
	require.NoError(t, err)
	assert.Equal(t, "original", string(readBytes))

	entries, err := afero.ReadDir(memFs, ".")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) { return 0, io.ErrUnexpectedEOF }
