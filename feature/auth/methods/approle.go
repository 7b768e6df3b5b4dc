package methods

import (
	"context"
	"fmt"

	"vault-manager/core/utils"
	"vault-manager/core/vault"

	"go.uber.org/zap"
)

// AppRole configures an enabled AppRole auth mount.
//
// The declared auth_config carries a "roles" list; each entry is a mapping
// with a "name" plus arbitrary role parameters, written to
// auth/<path>/role/<name>.
type AppRole struct {
	client vault.Client
	log    *zap.Logger
}

// NewAppRole creates the AppRole configurator.
func NewAppRole(client vault.Client, log *zap.Logger) *AppRole {
	return &AppRole{client: client, log: log}
}

// Configure implements Configurator.
func (a *AppRole) Configure(ctx context.Context, mountPath string, authConfig map[string]any) error {
	roles, _ := authConfig["roles"].([]any)
	for i, raw := range roles {
		role, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("approle mount %q: role %d is not a mapping", mountPath, i)
		}
		name := utils.ToString(role["name"])
		if name == "" {
			return fmt.Errorf("approle mount %q: role %d has no name", mountPath, i)
		}

		params := make(map[string]any, len(role))
		for k, v := range role {
			if k == "name" {
				continue
			}
			params[k] = v
		}

		a.log.Debug("Writing AppRole role",
			zap.String("path", mountPath), zap.String("role", name))
		if err := a.client.WriteSecret(ctx, "auth/"+mountPath+"/role/"+name, params); err != nil {
			return err
		}
	}
	return nil
}
