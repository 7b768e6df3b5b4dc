package mocks

import (
	"context"

	"vault-manager/core/vault"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of vault.Client
type Client struct {
	mock.Mock
}

func (m *Client) Authenticate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Client) ListAuthMounts(ctx context.Context) ([]vault.MountOutput, error) {
	args := m.Called(ctx)
	if mounts, ok := args.Get(0).([]vault.MountOutput); ok {
		return mounts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) EnableAuthMount(ctx context.Context, method, path, description string) error {
	args := m.Called(ctx, method, path, description)
	return args.Error(0)
}

func (m *Client) DisableAuthMount(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *Client) TuneAuthMount(ctx context.Context, path string, in vault.TuneInput) error {
	args := m.Called(ctx, path, in)
	return args.Error(0)
}

func (m *Client) ListPolicies(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetPolicy(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *Client) SetPolicy(ctx context.Context, name, content string) error {
	args := m.Called(ctx, name, content)
	return args.Error(0)
}

func (m *Client) DeletePolicy(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *Client) ListSecretsRecursive(ctx context.Context, root string) ([]string, error) {
	args := m.Called(ctx, root)
	if paths, ok := args.Get(0).([]string); ok {
		return paths, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ReadSecret(ctx context.Context, path string) (map[string]any, error) {
	args := m.Called(ctx, path)
	if data, ok := args.Get(0).(map[string]any); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) WriteSecret(ctx context.Context, path string, data map[string]any) error {
	args := m.Called(ctx, path, data)
	return args.Error(0)
}
