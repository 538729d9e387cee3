package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud")
	require.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New("info", WithFile(path, 1, 1, 1))
	require.NoError(t, err)

	log.Infow("project added", "project_id", 7)
	log.Debugw("dropped by level")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"project_id":7`)
	require.NotContains(t, string(data), "dropped by level")
}
