package methods

import (
	"context"

	"vault-manager/core/vault"

	"go.uber.org/zap"
)

// Configurator applies method-specific configuration to an enabled auth
// mount, given the declared auth_config record.
type Configurator interface {
	Configure(ctx context.Context, mountPath string, authConfig map[string]any) error
}

// Registry maps auth method type tags to configurators. A type with no
// entry simply receives no post-enable configuration.
type Registry struct {
	entries map[string]Configurator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Configurator)}
}

// Register adds or replaces the configurator for a type tag.
func (r *Registry) Register(typeTag string, c Configurator) {
	r.entries[typeTag] = c
}

// Lookup returns the configurator for a type tag, if one is registered.
func (r *Registry) Lookup(typeTag string) (Configurator, bool) {
	c, ok := r.entries[typeTag]
	return c, ok
}

// Default builds a registry with the shipped configurators.
func Default(client vault.Client, log *zap.Logger) *Registry {
	r := NewRegistry()
	r.Register("ldap", NewLDAP(client, log))
	r.Register("approle", NewAppRole(client, log))
	return r
}
