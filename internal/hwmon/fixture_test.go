package hwmon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// createChip creates a fake hwmon chip directory containing the given files
func createChip(t *testing.T, root string, chip string, files map[string]string) string {
	t.Helper()

	dir := filepath.Join(root, chip)
	err := os.MkdirAll(dir, 0755)
	require.NoError(t, err)

	for name, content := range files {
		err = os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
	return dir
}

func ptr[T any](v T) *T {
	return &v
}
