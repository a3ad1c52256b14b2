package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsDefaults(t *testing.T) {
	cfg := &Config{
		App:       AppConfig{Environment: "development"},
		Logger:    LoggerConfig{Level: "info"},
		Store:     StoreConfig{DataPath: "/tmp/inkmatch"},
		Recommend: RecommendConfig{DefaultLimit: 5},
	}
	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadEnvironment(t *testing.T) {
	cfg := &Config{
		App:       AppConfig{Environment: "prod"},
		Logger:    LoggerConfig{Level: "info"},
		Store:     StoreConfig{DataPath: "/tmp/inkmatch"},
		Recommend: RecommendConfig{DefaultLimit: 5},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsBadLogLevel(t *testing.T) {
	cfg := &Config{
		App:       AppConfig{Environment: "development"},
		Logger:    LoggerConfig{Level: "verbose"},
		Store:     StoreConfig{DataPath: "/tmp/inkmatch"},
		Recommend: RecommendConfig{DefaultLimit: 5},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveRecommendLimit(t *testing.T) {
	cfg := &Config{
		App:       AppConfig{Environment: "development"},
		Logger:    LoggerConfig{Level: "info"},
		Store:     StoreConfig{DataPath: "/tmp/inkmatch"},
		Recommend: RecommendConfig{DefaultLimit: 0},
	}
	assert.Error(t, cfg.Validate())
}

func TestExpandPath(t *testing.T) {
	t.Run("empty uses default", func(t *testing.T) {
		got, err := expandPath("", "/default/path")
		require.NoError(t, err)
		assert.Equal(t, "/default/path", got)
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := expandPath("~/inkmatch", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "inkmatch"), got)
	})

	t.Run("relative becomes absolute", func(t *testing.T) {
		got, err := expandPath("data", "")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("INKMATCH_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "INKMATCH_TEST_KEY", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "INKMATCH_TEST_KEY", "default"))
	assert.Equal(t, "default", getConfigValue("", "INKMATCH_TEST_MISSING", "default"))
}

func TestGetIntConfigValue(t *testing.T) {
	t.Setenv("INKMATCH_TEST_INT", "7")
	assert.Equal(t, 7, getIntConfigValue("", "INKMATCH_TEST_INT", 5))

	t.Setenv("INKMATCH_TEST_INT", "not a number")
	assert.Equal(t, 5, getIntConfigValue("", "INKMATCH_TEST_INT", 5))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "# comment\nINKMATCH_TEST_FROM_FILE=hello\nINKMATCH_TEST_QUOTED=\"quoted value\"\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o600))

	t.Setenv("INKMATCH_TEST_FROM_FILE", "")
	os.Unsetenv("INKMATCH_TEST_FROM_FILE")
	t.Setenv("INKMATCH_TEST_QUOTED", "")
	os.Unsetenv("INKMATCH_TEST_QUOTED")

	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "hello", os.Getenv("INKMATCH_TEST_FROM_FILE"))
	assert.Equal(t, "quoted value", os.Getenv("INKMATCH_TEST_QUOTED"))
}

func TestLoadEnvFile_DoesNotOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("INKMATCH_TEST_SET=from-file\n"), 0o600))

	t.Setenv("INKMATCH_TEST_SET", "from-env")
	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "from-env", os.Getenv("INKMATCH_TEST_SET"))
}

func TestLoadEnvFile_RejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("JUST_A_KEY\n"), 0o600))

	assert.Error(t, loadEnvFile(envPath))
}
