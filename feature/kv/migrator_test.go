package kv

import (
	"context"
	"errors"
	"testing"

	"vault-manager/core/vault/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExportCopiesEveryLeaf(t *testing.T) {
	leaves := []string{
		"secret/apps/api/token",
		"secret/apps/db/credentials",
		"secret/apps/flags",
	}
	docs := map[string]map[string]any{
		"secret/apps/api/token":      {"value": "tok-1"},
		"secret/apps/db/credentials": {"user": "svc", "password": "hunter2"},
		"secret/apps/flags":          {"beta": true},
	}

	source := new(mocks.Client)
	target := new(mocks.Client)
	source.On("ListSecretsRecursive", mock.Anything, "secret/apps").Return(leaves, nil)
	for path, doc := range docs {
		source.On("ReadSecret", mock.Anything, path).Return(doc, nil).Once()
		target.On("WriteSecret", mock.Anything, path, doc).Return(nil).Once()
	}

	copied, err := NewMigrator(source, target, zap.NewNop()).Export(context.Background(), "secret/apps")
	require.NoError(t, err)
	assert.Equal(t, 3, copied)

	source.AssertExpectations(t)
	target.AssertExpectations(t)
}

func TestExportEmptyTree(t *testing.T) {
	source := new(mocks.Client)
	target := new(mocks.Client)
	source.On("ListSecretsRecursive", mock.Anything, "secret/empty").Return([]string{}, nil)

	copied, err := NewMigrator(source, target, zap.NewNop()).Export(context.Background(), "secret/empty")
	require.NoError(t, err)
	assert.Zero(t, copied)
	target.AssertNotCalled(t, "WriteSecret", mock.Anything, mock.Anything, mock.Anything)
}

func TestExportStopsAtFirstFailure(t *testing.T) {
	source := new(mocks.Client)
	target := new(mocks.Client)
	source.On("ListSecretsRecursive", mock.Anything, "secret/apps").Return([]string{"secret/apps/a", "secret/apps/b"}, nil)
	source.On("ReadSecret", mock.Anything, "secret/apps/a").Return(map[string]any{"k": "v"}, nil).Once()
	target.On("WriteSecret", mock.Anything, "secret/apps/a", mock.Anything).Return(errors.New("permission denied")).Once()

	copied, err := NewMigrator(source, target, zap.NewNop()).Export(context.Background(), "secret/apps")
	require.Error(t, err)
	assert.Zero(t, copied)
	// The second leaf is never read once the run aborts.
	source.AssertNotCalled(t, "ReadSecret", mock.Anything, "secret/apps/b")
}
