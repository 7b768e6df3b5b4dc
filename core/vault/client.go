package vault

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	vaultapi "github.com/hashicorp/vault/api"
	"go.uber.org/zap"
)

// ErrNotAuthenticated is returned by any remote operation attempted before
// Authenticate has succeeded.
var ErrNotAuthenticated = errors.New("vault client is not authenticated")

// MountOutput describes an auth mount as reported by the remote service.
type MountOutput struct {
	// Type is the auth method type tag (ldap, approle, token, ...).
	Type string
	// Path is the mount point, without trailing slash.
	Path string
	// Description is the mount description.
	Description string
	// Tuning contains the mutable per-mount parameters (lease lifetimes).
	Tuning map[string]any
}

// TuneInput carries the parameters written when tuning an auth mount.
type TuneInput struct {
	// DefaultLeaseTTL is the default lease lifetime in seconds.
	DefaultLeaseTTL int
	// MaxLeaseTTL is the maximum lease lifetime in seconds.
	MaxLeaseTTL int
	// Description replaces the mount description.
	Description string
}

// Client defines the interface for remote secrets-service operations.
//
// Authenticate must be called once per instance before any other method;
// calls made earlier fail fast with ErrNotAuthenticated. In dry mode every
// mutating method becomes a logged no-op while reads proceed unchanged.
type Client interface {
	// Authenticate verifies the configured token against the service.
	Authenticate(ctx context.Context) error
	// ListAuthMounts returns every enabled auth mount.
	ListAuthMounts(ctx context.Context) ([]MountOutput, error)
	// EnableAuthMount enables an auth method of the given type at path.
	EnableAuthMount(ctx context.Context, method, path, description string) error
	// DisableAuthMount disables the auth mount at path.
	DisableAuthMount(ctx context.Context, path string) error
	// TuneAuthMount overwrites the tunable parameters of the mount at path.
	TuneAuthMount(ctx context.Context, path string, in TuneInput) error
	// ListPolicies returns the names of all policies.
	ListPolicies(ctx context.Context) ([]string, error)
	// GetPolicy returns the content of the named policy.
	GetPolicy(ctx context.Context, name string) (string, error)
	// SetPolicy creates or overwrites the named policy.
	SetPolicy(ctx context.Context, name, content string) error
	// DeletePolicy removes the named policy.
	DeletePolicy(ctx context.Context, name string) error
	// ListSecretsRecursive returns every leaf secret path under root.
	ListSecretsRecursive(ctx context.Context, root string) ([]string, error)
	// ReadSecret returns the key/value document stored at path.
	ReadSecret(ctx context.Context, path string) (map[string]any, error)
	// WriteSecret stores a key/value document at path. The document content
	// is never logged; only the path is.
	WriteSecret(ctx context.Context, path string, data map[string]any) error
}

// Options configures a single client instance.
type Options struct {
	// Addr is the URL of the secrets service.
	Addr string
	// Token is the access token to authenticate with.
	Token string
	// SkipTLS disables TLS certificate verification.
	SkipTLS bool
	// Dry turns every mutating operation into a logged no-op.
	Dry bool
}

// NewClient creates a client for a single secrets-service instance.
func NewClient(opts Options, log *zap.Logger) (Client, error) {
	cfg := vaultapi.DefaultConfig()
	cfg.Address = opts.Addr
	if opts.SkipTLS {
		if err := cfg.ConfigureTLS(&vaultapi.TLSConfig{Insecure: true}); err != nil {
			return nil, fmt.Errorf("failed to configure TLS: %w", err)
		}
	}

	api, err := vaultapi.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	return &apiClient{
		api:   api,
		token: opts.Token,
		dry:   opts.Dry,
		log:   log,
	}, nil
}

type apiClient struct {
	api           *vaultapi.Client
	token         string
	dry           bool
	authenticated bool
	log           *zap.Logger
}

// Authenticate attaches the token and verifies it with a self-lookup.
func (c *apiClient) Authenticate(ctx context.Context) error {
	c.api.SetToken(c.token)
	if _, err := c.api.Auth().Token().LookupSelfWithContext(ctx); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	c.authenticated = true
	c.log.Debug("Authenticated against vault", zap.String("addr", c.api.Address()))
	return nil
}

// ready guards every remote operation behind the authentication gate.
func (c *apiClient) ready() error {
	if !c.authenticated {
		return ErrNotAuthenticated
	}
	return nil
}

func (c *apiClient) ListAuthMounts(ctx context.Context) ([]MountOutput, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	raw, err := c.api.Sys().ListAuthWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list auth mounts: %w", err)
	}

	mounts := make([]MountOutput, 0, len(raw))
	for path, mount := range raw {
		mounts = append(mounts, MountOutput{
			Type:        mount.Type,
			Path:        strings.TrimSuffix(path, "/"),
			Description: mount.Description,
			Tuning: map[string]any{
				"default_lease_ttl": mount.Config.DefaultLeaseTTL,
				"max_lease_ttl":     mount.Config.MaxLeaseTTL,
			},
		})
	}
	// The API returns a map; sort for stable log output.
	sort.Slice(mounts, func(i, j int) bool { return mounts[i].Path < mounts[j].Path })
	return mounts, nil
}

func (c *apiClient) EnableAuthMount(ctx context.Context, method, path, description string) error {
	if err := c.ready(); err != nil {
		return err
	}
	if c.dry {
		c.log.Info("Dry-run: would enable auth mount",
			zap.String("type", method), zap.String("path", path))
		return nil
	}
	err := c.api.Sys().EnableAuthWithOptionsWithContext(ctx, path, &vaultapi.EnableAuthOptions{
		Type:        method,
		Description: description,
	})
	if err != nil {
		return fmt.Errorf("failed to enable auth mount %q: %w", path, err)
	}
	return nil
}

func (c *apiClient) DisableAuthMount(ctx context.Context, path string) error {
	if err := c.ready(); err != nil {
		return err
	}
	if c.dry {
		c.log.Info("Dry-run: would disable auth mount", zap.String("path", path))
		return nil
	}
	if err := c.api.Sys().DisableAuthWithContext(ctx, path); err != nil {
		return fmt.Errorf("failed to disable auth mount %q: %w", path, err)
	}
	return nil
}

func (c *apiClient) TuneAuthMount(ctx context.Context, path string, in TuneInput) error {
	if err := c.ready(); err != nil {
		return err
	}
	if c.dry {
		c.log.Info("Dry-run: would tune auth mount",
			zap.String("path", path),
			zap.Int("default_lease_ttl", in.DefaultLeaseTTL),
			zap.Int("max_lease_ttl", in.MaxLeaseTTL))
		return nil
	}
	desc := in.Description
	err := c.api.Sys().TuneMountWithContext(ctx, "auth/"+path, vaultapi.MountConfigInput{
		DefaultLeaseTTL: fmt.Sprintf("%ds", in.DefaultLeaseTTL),
		MaxLeaseTTL:     fmt.Sprintf("%ds", in.MaxLeaseTTL),
		Description:     &desc,
	})
	if err != nil {
		return fmt.Errorf("failed to tune auth mount %q: %w", path, err)
	}
	return nil
}

func (c *apiClient) ListPolicies(ctx context.Context) ([]string, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	names, err := c.api.Sys().ListPoliciesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	return names, nil
}

func (c *apiClient) GetPolicy(ctx context.Context, name string) (string, error) {
	if err := c.ready(); err != nil {
		return "", err
	}
	content, err := c.api.Sys().GetPolicyWithContext(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to get policy %q: %w", name, err)
	}
	return content, nil
}

func (c *apiClient) SetPolicy(ctx context.Context, name, content string) error {
	if err := c.ready(); err != nil {
		return err
	}
	if c.dry {
		c.log.Info("Dry-run: would set policy", zap.String("name", name))
		return nil
	}
	if err := c.api.Sys().PutPolicyWithContext(ctx, name, content); err != nil {
		return fmt.Errorf("failed to set policy %q: %w", name, err)
	}
	return nil
}

func (c *apiClient) DeletePolicy(ctx context.Context, name string) error {
	if err := c.ready(); err != nil {
		return err
	}
	if c.dry {
		c.log.Info("Dry-run: would delete policy", zap.String("name", name))
		return nil
	}
	if err := c.api.Sys().DeletePolicyWithContext(ctx, name); err != nil {
		return fmt.Errorf("failed to delete policy %q: %w", name, err)
	}
	return nil
}

// ListSecretsRecursive walks the secret tree under root by repeated listing.
// Entries ending in "/" are subtrees; everything else is a leaf. Every leaf
// is reported exactly once.
func (c *apiClient) ListSecretsRecursive(ctx context.Context, root string) ([]string, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	var leaves []string
	pending := []string{strings.TrimSuffix(root, "/")}
	for len(pending) > 0 {
		current := pending[0]
		pending = pending[1:]

		secret, err := c.api.Logical().ListWithContext(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("failed to list secrets under %q: %w", current, err)
		}
		if secret == nil || secret.Data == nil {
			continue
		}
		keys, ok := secret.Data["keys"].([]any)
		if !ok {
			continue
		}
		for _, k := range keys {
			key, ok := k.(string)
			if !ok {
				continue
			}
			child := current + "/" + strings.TrimSuffix(key, "/")
			if strings.HasSuffix(key, "/") {
				pending = append(pending, child)
			} else {
				leaves = append(leaves, child)
			}
		}
	}
	sort.Strings(leaves)
	return leaves, nil
}

func (c *apiClient) ReadSecret(ctx context.Context, path string) (map[string]any, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	secret, err := c.api.Logical().ReadWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret at %q: %w", path, err)
	}
	if secret == nil {
		return nil, fmt.Errorf("no secret found at %q", path)
	}
	return secret.Data, nil
}

func (c *apiClient) WriteSecret(ctx context.Context, path string, data map[string]any) error {
	if err := c.ready(); err != nil {
		return err
	}
	if c.dry {
		c.log.Info("Dry-run: would write secret", zap.String("path", path))
		return nil
	}
	if _, err := c.api.Logical().WriteWithContext(ctx, path, data); err != nil {
		return fmt.Errorf("failed to write secret at %q: %w", path, err)
	}
	return nil
}
