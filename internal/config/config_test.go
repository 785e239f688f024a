package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)
	for _, key := range []string{"HOST", "PORT", "LOG_LEVEL", "CHAT_TYPING_DELAY", "API_TIMEOUT", "MAX_BODY_SIZE", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		req.NoError(os.Unsetenv(key))
	}

	cfg, err := Load()
	req.NoError(err)
	req.Equal("0.0.0.0", cfg.Host)
	req.Equal(8080, cfg.Port)
	req.Equal("INFO", cfg.LogLevel)
	req.Equal(time.Second, cfg.ChatTypingDelay)
	req.Equal(30*time.Second, cfg.APITimeout)
	req.Equal(int64(1048576), cfg.MaxBodySize)
	req.Equal(10*time.Second, cfg.ShutdownTimeout)
	req.Equal("0.0.0.0:8080", cfg.Address())
}

func TestLoad_FromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("HOST", "localhost")
	t.Setenv("PORT", "9090")
	t.Setenv("CHAT_TYPING_DELAY", "250ms")

	cfg, err := Load()
	req.NoError(err)
	req.Equal("localhost:9090", cfg.Address())
	req.Equal(250*time.Millisecond, cfg.ChatTypingDelay)
}

func TestLoad_InvalidPort(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "70000")

	_, err := Load()
	req.Error(err)
}

func TestLoadEnvFile(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	req.ErrorIs(loadEnvFile(filepath.Join(dir, "missing.env")), ErrEnvFileNotFound)

	path := filepath.Join(dir, ".env")
	req.NoError(os.WriteFile(path, []byte("# comment\nHEALTHASSIST_TEST_A=\"quoted\"\nHEALTHASSIST_TEST_B=kept\n"), 0o600))

	t.Setenv("HEALTHASSIST_TEST_A", "")
	req.NoError(os.Unsetenv("HEALTHASSIST_TEST_A"))
	t.Setenv("HEALTHASSIST_TEST_B", "from-env")

	req.NoError(loadEnvFile(path))
	req.Equal("quoted", os.Getenv("HEALTHASSIST_TEST_A"))
	req.Equal("from-env", os.Getenv("HEALTHASSIST_TEST_B"))
}
