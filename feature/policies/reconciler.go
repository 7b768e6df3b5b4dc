package policies

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"vault-manager/core/reconcile"
	"vault-manager/core/vault"

	"go.uber.org/zap"
)

// Reconciler converges policies between the local directory layout and the
// remote service, in either direction.
type Reconciler struct {
	client vault.Client
	root   string
	log    *zap.Logger
}

// NewReconciler creates a policy reconciler rooted at the local policies
// directory.
func NewReconciler(client vault.Client, root string, log *zap.Logger) *Reconciler {
	return &Reconciler{
		client: client,
		root:   root,
		log:    log,
	}
}

// Push applies the local policy tree to the remote service: remote names
// that decode but have no local counterpart are deleted, then every local
// policy is upserted unconditionally. Foreign names (that fail to decode)
// are never touched. Unlike auth mounts, deletion here is not gated by a
// flag.
func (r *Reconciler) Push(ctx context.Context) error {
	r.log.Info("Pushing policies")

	local, err := LoadLocal(r.root)
	if err != nil {
		return err
	}

	observed, err := r.fetchObserved(ctx)
	if err != nil {
		return err
	}

	cs := reconcile.Diff(local, observed)

	for _, p := range cs.ToRemove {
		r.log.Info("Removing remote policy", zap.String("name", p.RemoteName()))
		if err := r.client.DeletePolicy(ctx, p.RemoteName()); err != nil {
			return err
		}
	}

	// Upsert every local policy; created vs updated is reporting only.
	for _, p := range cs.ToCreate {
		if err := r.client.SetPolicy(ctx, p.RemoteName(), p.Content); err != nil {
			return err
		}
		r.log.Info("Policy created", zap.String("name", p.RemoteName()))
	}
	for _, pair := range cs.Matched {
		if err := r.client.SetPolicy(ctx, pair.Declared.RemoteName(), pair.Declared.Content); err != nil {
			return err
		}
		r.log.Info("Policy updated", zap.String("name", pair.Declared.RemoteName()))
	}

	r.log.Info("Policies pushed",
		zap.Int("created", len(cs.ToCreate)),
		zap.Int("updated", len(cs.Matched)),
		zap.Int("removed", len(cs.ToRemove)))
	return nil
}

// Pull mirrors every decodable remote policy into the local directory
// layout, creating category directories as needed and overwriting existing
// files. Foreign names are skipped with a warning.
func (r *Reconciler) Pull(ctx context.Context) error {
	r.log.Info("Pulling policies")

	if err := EnsureRoot(r.root); err != nil {
		return err
	}

	names, err := r.client.ListPolicies(ctx)
	if err != nil {
		return err
	}

	for _, remote := range names {
		category, name, ok := DecodeName(remote)
		if !ok {
			r.log.Warn("Policy does not match the naming pattern and will not be pulled",
				zap.String("name", remote))
			continue
		}

		content, err := r.client.GetPolicy(ctx, remote)
		if err != nil {
			return err
		}

		dir := filepath.Join(r.root, category)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create policy directory %q: %w", dir, err)
		}

		path := filepath.Join(dir, name+Extension)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write policy file %q: %w", path, err)
		}
		r.log.Info("Policy saved", zap.String("path", path))
	}

	r.log.Info("Policies pulled")
	return nil
}

// fetchObserved converts the remote name list into the local model,
// dropping foreign names with a warning. Content is not fetched: push
// overwrites unconditionally, so only identity matters here.
func (r *Reconciler) fetchObserved(ctx context.Context) ([]Policy, error) {
	names, err := r.client.ListPolicies(ctx)
	if err != nil {
		return nil, err
	}

	observed := make([]Policy, 0, len(names))
	for _, remote := range names {
		category, name, ok := DecodeName(remote)
		if !ok {
			r.log.Warn("Policy does not match the naming pattern and will not be managed",
				zap.String("name", remote))
			continue
		}
		observed = append(observed, Policy{Category: category, Name: name})
	}
	return observed, nil
}
