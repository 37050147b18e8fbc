package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/formcanvas/formcanvas/pkg/errors"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.ConfirmationsEnabled())
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadReadsAndValidates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "log_level: debug\ndata_dir: /tmp/formcanvas-test\nconfirmations: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.ConfirmationsEnabled())

	dir, err := cfg.ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/formcanvas-test", dir)

	session, err := cfg.SessionPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "session.json"), session)

	registry, err := cfg.RegistryPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "forms.json"), registry)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))

	_, err := Load(path)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unclosed\n"), 0o644))

	_, err := Load(path)
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
