package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "complete",
			config: Config{Addr: "http://127.0.0.1:8200", Token: "root", ConfigDir: "/etc/vault-manager"},
		},
		{
			name:    "missing addr",
			config:  Config{Token: "root", ConfigDir: "/etc/vault-manager"},
			wantErr: "missing required configuration: vault-addr",
		},
		{
			name:    "missing config dir",
			config:  Config{Addr: "http://127.0.0.1:8200", Token: "root"},
			wantErr: "missing required configuration: vault-config",
		},
		{
			name:    "everything missing is reported at once",
			config:  Config{},
			wantErr: "missing required configuration: vault-addr, vault-token, vault-config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestConfigValidateConnection(t *testing.T) {
	// Connection-only validation does not require a configuration directory.
	config := Config{Addr: "http://127.0.0.1:8200", Token: "root"}
	assert.NoError(t, config.ValidateConnection())

	config = Config{Addr: "http://127.0.0.1:8200"}
	err := config.ValidateConnection()
	require.Error(t, err)
	assert.Equal(t, "missing required configuration: vault-token", err.Error())
}

func TestTargetConfigValidate(t *testing.T) {
	target := TargetConfig{Addr: "http://10.0.0.2:8200", Token: "root"}
	assert.NoError(t, target.Validate())

	err := (&TargetConfig{}).Validate()
	require.Error(t, err)
	assert.Equal(t, "missing required configuration: VAULT_TARGET_ADDR, VAULT_TARGET_TOKEN", err.Error())
}
