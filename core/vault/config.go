package vault

import (
	"fmt"
	"strings"
)

// Config holds connection settings for the secrets service.
type Config struct {
	// Addr is the URL of the secrets service (VAULT_ADDR).
	Addr string `mapstructure:"addr" default:""`
	// Token is the access token used to authenticate (VAULT_TOKEN).
	Token string `mapstructure:"token" default:""`
	// ConfigDir is the directory holding the declared configuration
	// (auth-methods.yml and the policies tree) (VAULT_CONFIG).
	ConfigDir string `mapstructure:"config" default:""`
	// SkipTLS disables TLS certificate verification.
	SkipTLS bool `mapstructure:"skip_tls" default:"false"`
	// Target holds coordinates of the destination service for KV exports.
	Target TargetConfig `mapstructure:"target"`
}

// TargetConfig holds coordinates of the destination service for KV exports.
// Conventionally supplied out-of-band via VAULT_TARGET_ADDR and
// VAULT_TARGET_TOKEN.
type TargetConfig struct {
	// Addr is the URL of the destination secrets service.
	Addr string `mapstructure:"addr" default:""`
	// Token is the access token for the destination service.
	Token string `mapstructure:"token" default:""`
}

// Validate checks that every input required for a reconciliation run is set.
// It returns an error naming all missing inputs at once so the operator can
// fix them in a single pass.
func (c *Config) Validate() error {
	missing := c.missingConnection()
	if c.ConfigDir == "" {
		missing = append(missing, "vault-config")
	}
	return missingError(missing)
}

// ValidateConnection checks only the service coordinates. KV operations
// need no declared-configuration directory.
func (c *Config) ValidateConnection() error {
	return missingError(c.missingConnection())
}

func (c *Config) missingConnection() []string {
	var missing []string
	if c.Addr == "" {
		missing = append(missing, "vault-addr")
	}
	if c.Token == "" {
		missing = append(missing, "vault-token")
	}
	return missing
}

func missingError(missing []string) error {
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Validate checks that both export-target coordinates are set.
func (c *TargetConfig) Validate() error {
	var missing []string
	if c.Addr == "" {
		missing = append(missing, "VAULT_TARGET_ADDR")
	}
	if c.Token == "" {
		missing = append(missing, "VAULT_TARGET_TOKEN")
	}
	return missingError(missing)
}
