package methods

import (
	"context"
	"testing"

	"vault-manager/core/vault/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistryLookup(t *testing.T) {
	registry := Default(new(mocks.Client), zap.NewNop())

	_, ok := registry.Lookup("ldap")
	assert.True(t, ok)
	_, ok = registry.Lookup("approle")
	assert.True(t, ok)
	_, ok = registry.Lookup("github")
	assert.False(t, ok)
}

func TestLDAPConfigure(t *testing.T) {
	client := new(mocks.Client)
	client.On("WriteSecret", mock.Anything, "auth/ldap/config", map[string]any{
		"url":      "ldaps://ldap.example.com",
		"userdn":   "ou=Users,dc=example,dc=com",
		"insecure_tls": false,
	}).Return(nil).Once()
	client.On("WriteSecret", mock.Anything, "auth/ldap/groups/admins", map[string]any{
		"policies": []any{"admin_root_policy"},
	}).Return(nil).Once()
	client.On("WriteSecret", mock.Anything, "auth/ldap/groups/devs", map[string]any{
		"policies": []any{"team_read_policy", "team_write_policy"},
	}).Return(nil).Once()

	ldap := NewLDAP(client, zap.NewNop())
	err := ldap.Configure(context.Background(), "ldap", map[string]any{
		"url":          "ldaps://ldap.example.com",
		"userdn":       "ou=Users,dc=example,dc=com",
		"insecure_tls": false,
		"groups": map[string]any{
			"devs":   []any{"team_read_policy", "team_write_policy"},
			"admins": []any{"admin_root_policy"},
		},
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestLDAPConfigureGroupsOnly(t *testing.T) {
	client := new(mocks.Client)
	client.On("WriteSecret", mock.Anything, "auth/ldap/groups/devs", mock.Anything).Return(nil).Once()

	ldap := NewLDAP(client, zap.NewNop())
	err := ldap.Configure(context.Background(), "ldap", map[string]any{
		"groups": map[string]any{"devs": []any{"team_read_policy"}},
	})

	require.NoError(t, err)
	// No connection settings declared: auth/ldap/config must not be written.
	client.AssertNumberOfCalls(t, "WriteSecret", 1)
}

func TestAppRoleConfigure(t *testing.T) {
	client := new(mocks.Client)
	client.On("WriteSecret", mock.Anything, "auth/apps/role/deployer", map[string]any{
		"token_policies": []any{"team_write_policy"},
		"token_ttl":      600,
	}).Return(nil).Once()

	approle := NewAppRole(client, zap.NewNop())
	err := approle.Configure(context.Background(), "apps", map[string]any{
		"roles": []any{
			map[string]any{
				"name":           "deployer",
				"token_policies": []any{"team_write_policy"},
				"token_ttl":      600,
			},
		},
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestAppRoleConfigureRejectsMalformedRoles(t *testing.T) {
	approle := NewAppRole(new(mocks.Client), zap.NewNop())

	err := approle.Configure(context.Background(), "apps", map[string]any{
		"roles": []any{"not-a-mapping"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a mapping")

	err = approle.Configure(context.Background(), "apps", map[string]any{
		"roles": []any{map[string]any{"token_ttl": 600}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no name")
}

func TestAppRoleConfigureNoRolesIsNoop(t *testing.T) {
	client := new(mocks.Client)
	approle := NewAppRole(client, zap.NewNop())

	err := approle.Configure(context.Background(), "apps", map[string]any{})
	require.NoError(t, err)
	client.AssertNotCalled(t, "WriteSecret", mock.Anything, mock.Anything, mock.Anything)
}
