package auth

import (
	"context"
	"fmt"

	"vault-manager/core/reconcile"
	"vault-manager/core/utils"
	"vault-manager/core/vault"
	"vault-manager/feature/auth/methods"

	"go.uber.org/zap"
)

// Reconciler converges the remote auth mount set toward the declared one.
type Reconciler struct {
	client   vault.Client
	registry *methods.Registry
	log      *zap.Logger
}

// NewReconciler creates an auth reconciler. The registry decides which
// declared mounts receive post-enable configuration.
func NewReconciler(client vault.Client, registry *methods.Registry, log *zap.Logger) *Reconciler {
	return &Reconciler{
		client:   client,
		registry: registry,
		log:      log,
	}
}

// Push applies the declared mount set to the remote service, in strict
// order: disable extraneous mounts (only when deletion is enabled), enable
// missing mounts, re-fetch the observed set, tune mounts whose tuning hash
// changed, then run method-specific configurators.
//
// A remote failure aborts the run where it stands; mutations already
// applied are kept. The sequence is convergent, so re-running after fixing
// the cause is the recovery path.
func (r *Reconciler) Push(ctx context.Context, declared *Declared) error {
	r.log.Info("Pushing auth methods", zap.Int("declared", len(declared.Methods)))

	observed, err := r.fetchObserved(ctx)
	if err != nil {
		return err
	}

	cs := reconcile.Diff(declared.Methods, observed)
	for _, pair := range cs.Matched {
		r.log.Debug("Auth mount unchanged",
			zap.String("type", pair.Declared.Type),
			zap.String("path", pair.Declared.Path))
	}

	if declared.DeletionEnabled {
		for _, m := range cs.ToRemove {
			r.log.Info("Disabling auth mount",
				zap.String("type", m.Type), zap.String("path", m.Path))
			if err := r.client.DisableAuthMount(ctx, m.Path); err != nil {
				return err
			}
		}
	} else if len(cs.ToRemove) > 0 {
		r.log.Debug("Mount deletion disabled, leaving extraneous mounts",
			zap.Int("count", len(cs.ToRemove)))
	}

	for _, m := range cs.ToCreate {
		r.log.Info("Enabling auth mount",
			zap.String("type", m.Type), zap.String("path", m.Path))
		if err := r.client.EnableAuthMount(ctx, m.Type, m.Path, m.Description); err != nil {
			return err
		}
	}

	// The service assigns mount metadata only once a mount exists, so
	// tuning decisions need a fresh listing.
	observed, err = r.fetchObserved(ctx)
	if err != nil {
		return err
	}

	if err := r.tune(ctx, declared, observed); err != nil {
		return err
	}

	return r.configure(ctx, declared)
}

// tune overwrites the remote tuning of every matched mount whose tuning
// hash differs from the declared one. Remote values are replaced with the
// declared ones, never merged.
func (r *Reconciler) tune(ctx context.Context, declared *Declared, observed []Method) error {
	cs := reconcile.Diff(declared.Methods, observed)
	for _, pair := range cs.Matched {
		localHash := pair.Declared.TuningHash()
		remoteHash := pair.Observed.TuningHash()
		r.log.Debug("Tuning hashes",
			zap.String("path", pair.Declared.Path),
			zap.String("local", localHash),
			zap.String("remote", remoteHash))
		if localHash == remoteHash {
			continue
		}

		r.log.Info("Tuning auth mount", zap.String("path", pair.Declared.Path))
		in := vault.TuneInput{
			DefaultLeaseTTL: utils.ToInt(pair.Declared.Tuning["default_lease_ttl"]),
			MaxLeaseTTL:     utils.ToInt(pair.Declared.Tuning["max_lease_ttl"]),
			Description:     pair.Declared.Description,
		}
		if err := r.client.TuneAuthMount(ctx, pair.Declared.Path, in); err != nil {
			return err
		}
	}
	return nil
}

// configure dispatches method-specific post-enable configuration by type.
// Mounts without auth_config, and types with no registered configurator,
// are skipped without error.
func (r *Reconciler) configure(ctx context.Context, declared *Declared) error {
	for _, m := range declared.Methods {
		if len(m.AuthConfig) == 0 {
			continue
		}
		configurator, ok := r.registry.Lookup(m.Type)
		if !ok {
			r.log.Debug("No configurator for auth method type",
				zap.String("type", m.Type), zap.String("path", m.Path))
			continue
		}
		r.log.Info("Configuring auth method",
			zap.String("type", m.Type), zap.String("path", m.Path))
		if err := configurator.Configure(ctx, m.Path, m.AuthConfig); err != nil {
			return fmt.Errorf("failed to configure auth method %q: %w", m.Path, err)
		}
	}
	return nil
}

// fetchObserved converts the remote mount listing into the local model.
// Observed methods are built fresh on every fetch and never mutated.
func (r *Reconciler) fetchObserved(ctx context.Context) ([]Method, error) {
	mounts, err := r.client.ListAuthMounts(ctx)
	if err != nil {
		return nil, err
	}

	observed := make([]Method, 0, len(mounts))
	for _, mount := range mounts {
		observed = append(observed, Method{
			Type:        mount.Type,
			Path:        mount.Path,
			Description: mount.Description,
			Tuning:      mount.Tuning,
		})
	}
	return observed, nil
}
