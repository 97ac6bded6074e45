package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_FromEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DOVE_TEST_VALUE=from-file\n"), 0o644))

	t.Setenv("ENV_PATH", path)
	t.Setenv("DOVE_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("DOVE_TEST_VALUE"))

	require.NoError(t, LoadDotEnv("local", "ignored.env"))
	assert.Equal(t, "from-file", os.Getenv("DOVE_TEST_VALUE"))
}

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DOVE_TEST_KEEP=from-file\n"), 0o644))

	t.Setenv("ENV_PATH", "")
	t.Setenv("DOVE_TEST_KEEP", "from-env")

	require.NoError(t, LoadDotEnv("local", path))
	assert.Equal(t, "from-env", os.Getenv("DOVE_TEST_KEEP"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), "missing.env")

	assert.Error(t, LoadDotEnv("local", missing))
	assert.NoError(t, LoadDotEnv("production", missing))
	assert.NoError(t, LoadDotEnv("local"))
}
