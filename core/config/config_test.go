package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"VAULT_ADDR", "VAULT_TOKEN", "VAULT_CONFIG",
		"VAULT_TARGET_ADDR", "VAULT_TARGET_TOKEN", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func writeEnvFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, config.Vault.Addr)
	assert.Empty(t, config.Vault.Token)
	assert.False(t, config.Vault.SkipTLS)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "console", config.Log.Format)
	assert.Equal(t, "vault-snapshots", config.Storage.Bucket)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("VAULT_ADDR", "http://127.0.0.1:8200")
	t.Setenv("VAULT_TOKEN", "root")
	t.Setenv("VAULT_CONFIG", "/etc/vault-manager")
	t.Setenv("VAULT_TARGET_ADDR", "http://10.0.0.2:8200")
	t.Setenv("VAULT_TARGET_TOKEN", "target-root")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8200", config.Vault.Addr)
	assert.Equal(t, "root", config.Vault.Token)
	assert.Equal(t, "/etc/vault-manager", config.Vault.ConfigDir)
	assert.Equal(t, "http://10.0.0.2:8200", config.Vault.Target.Addr)
	assert.Equal(t, "target-root", config.Vault.Target.Token)
	assert.Equal(t, "debug", config.Log.Level)
}

func TestLoadConfigEnvFile(t *testing.T) {
	// clearEnv registers cleanups, so values Overload writes into the
	// process environment are restored after this test.
	clearEnv(t)
	dir := t.TempDir()
	writeEnvFile(t, dir, "VAULT_ADDR=http://vault.internal:8200\nVAULT_TOKEN=file-token\n")

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://vault.internal:8200", config.Vault.Addr)
	assert.Equal(t, "file-token", config.Vault.Token)
}
