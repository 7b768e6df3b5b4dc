package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"vault-manager/core/storage"
	"vault-manager/core/vault"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Snapshotter exports a secret subtree into an object-storage bucket, one
// JSON document per leaf. Like the migrator it copies everything it finds
// and overwrites existing objects.
type Snapshotter struct {
	source vault.Client
	store  storage.Client
	bucket string
	log    *zap.Logger
}

// NewSnapshotter creates a snapshotter writing into the given bucket.
func NewSnapshotter(source vault.Client, store storage.Client, bucket string, log *zap.Logger) *Snapshotter {
	return &Snapshotter{
		source: source,
		store:  store,
		bucket: bucket,
		log:    log,
	}
}

// Snapshot writes every leaf under root as <prefix>/<leaf-path>.json into
// the bucket, creating the bucket if needed. It returns the number of
// objects written. Secret content goes only into the bucket, never into
// the logs.
func (s *Snapshotter) Snapshot(ctx context.Context, root, prefix string) (int, error) {
	exists, err := s.store.BucketExists(ctx, s.bucket)
	if err != nil {
		return 0, fmt.Errorf("failed to check snapshot bucket: %w", err)
	}
	if !exists {
		if err := s.store.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return 0, fmt.Errorf("failed to create snapshot bucket: %w", err)
		}
	}

	leaves, err := s.source.ListSecretsRecursive(ctx, root)
	if err != nil {
		return 0, err
	}
	s.log.Info("Snapshotting secret tree",
		zap.String("root", root), zap.Int("leaves", len(leaves)))

	written := 0
	for _, leaf := range leaves {
		doc, err := s.source.ReadSecret(ctx, leaf)
		if err != nil {
			return written, err
		}
		payload, err := json.Marshal(doc)
		if err != nil {
			return written, fmt.Errorf("failed to encode secret at %q: %w", leaf, err)
		}

		object := path.Join(prefix, leaf) + ".json"
		_, err = s.store.PutObject(ctx, s.bucket, object,
			bytes.NewReader(payload), int64(len(payload)),
			minio.PutObjectOptions{ContentType: "application/json"})
		if err != nil {
			return written, fmt.Errorf("failed to store snapshot object %q: %w", object, err)
		}
		s.log.Debug("Snapshotted secret", zap.String("path", leaf), zap.String("object", object))
		written++
	}

	s.log.Info("Secret tree snapshotted", zap.Int("written", written))
	return written, nil
}
