package methods

import (
	"context"
	"sort"

	"vault-manager/core/vault"

	"go.uber.org/zap"
)

// LDAP configures an enabled LDAP auth mount.
//
// The declared auth_config is split in two: the "groups" mapping (group
// name to policy list) is written one entry at a time under
// auth/<path>/groups/<group>; every other key is treated as a connection
// setting and written to auth/<path>/config.
type LDAP struct {
	client vault.Client
	log    *zap.Logger
}

// NewLDAP creates the LDAP configurator.
func NewLDAP(client vault.Client, log *zap.Logger) *LDAP {
	return &LDAP{client: client, log: log}
}

// Configure implements Configurator.
func (l *LDAP) Configure(ctx context.Context, mountPath string, authConfig map[string]any) error {
	settings := make(map[string]any, len(authConfig))
	var groups map[string]any
	for k, v := range authConfig {
		if k == "groups" {
			groups, _ = v.(map[string]any)
			continue
		}
		settings[k] = v
	}

	if len(settings) > 0 {
		l.log.Debug("Writing LDAP connection settings", zap.String("path", mountPath))
		if err := l.client.WriteSecret(ctx, "auth/"+mountPath+"/config", settings); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		l.log.Debug("Writing LDAP group policies",
			zap.String("path", mountPath), zap.String("group", name))
		data := map[string]any{"policies": groups[name]}
		if err := l.client.WriteSecret(ctx, "auth/"+mountPath+"/groups/"+name, data); err != nil {
			return err
		}
	}
	return nil
}
