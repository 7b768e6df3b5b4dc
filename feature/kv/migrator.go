package kv

import (
	"context"

	"vault-manager/core/vault"

	"go.uber.org/zap"
)

// Migrator copies a secret subtree verbatim from a source service to a
// target service. There is no diffing and no skip-if-unchanged: every
// invocation performs a full copy of every leaf found, and anything already
// present at the destination path is overwritten.
type Migrator struct {
	source vault.Client
	target vault.Client
	log    *zap.Logger
}

// NewMigrator creates a migrator between two authenticated clients.
func NewMigrator(source, target vault.Client, log *zap.Logger) *Migrator {
	return &Migrator{
		source: source,
		target: target,
		log:    log,
	}
}

// Export copies every leaf under root from the source to the identical
// path on the target. It returns the number of secrets copied. Secret
// content is never logged; paths are.
func (m *Migrator) Export(ctx context.Context, root string) (int, error) {
	leaves, err := m.source.ListSecretsRecursive(ctx, root)
	if err != nil {
		return 0, err
	}
	m.log.Info("Exporting secret tree",
		zap.String("root", root), zap.Int("leaves", len(leaves)))

	copied := 0
	for _, path := range leaves {
		doc, err := m.source.ReadSecret(ctx, path)
		if err != nil {
			return copied, err
		}
		if err := m.target.WriteSecret(ctx, path, doc); err != nil {
			return copied, err
		}
		m.log.Debug("Copied secret", zap.String("path", path))
		copied++
	}

	m.log.Info("Secret tree exported", zap.Int("copied", copied))
	return copied, nil
}
