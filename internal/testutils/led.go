package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// MakeLEDs creates count LED class directories under a temporary directory and returns their paths.
// Each LED has a trigger file with trigger as its content, and a max_brightness of 1.
func MakeLEDs(t *testing.T, count int, trigger string) []string {
	t.Helper()
	root := t.TempDir()
	paths := make([]string, count)
	for i := range paths {
		paths[i] = filepath.Join(root, fmt.Sprintf("led%d", i))
		require.NoError(t, os.Mkdir(paths[i], 0755))
		require.NoError(t, os.WriteFile(filepath.Join(paths[i], "trigger"), []byte(trigger), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(paths[i], "max_brightness"), []byte("1"), 0644))
	}
	return paths
}

// ReadLED returns the content of an LED's file, or a blank string if the file doesn't exist
func ReadLED(t *testing.T, path, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(path, name))
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(content)
}
