package util

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineFromFile(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "name")
	err := os.WriteFile(filePath, []byte("coretemp\r\n"), 0644)
	require.NoError(t, err)

	// WHEN
	result, err := ReadLineFromFile(context.Background(), filePath)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "coretemp", result)
}

func TestReadLineFromFile_KeepsInnerWhitespace(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "temp1_label")
	err := os.WriteFile(filePath, []byte("Package id 0\n"), 0644)
	require.NoError(t, err)

	// WHEN
	result, err := ReadLineFromFile(context.Background(), filePath)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "Package id 0", result)
}

func TestReadFileContext_Missing(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "temp1_input")

	// WHEN
	_, err := ReadFileContext(context.Background(), filePath)

	// THEN
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadFileContext_Canceled(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "temp1_input")
	err := os.WriteFile(filePath, []byte("45000\n"), 0644)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// WHEN
	_, err = ReadFileContext(ctx, filePath)

	// THEN
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrimLineEnding(t *testing.T) {
	assert.Equal(t, "nvme", TrimLineEnding("nvme\n"))
	assert.Equal(t, "nvme", TrimLineEnding("nvme\r\n"))
	assert.Equal(t, " nvme", TrimLineEnding(" nvme"))
	assert.Equal(t, "", TrimLineEnding("\n"))
}
