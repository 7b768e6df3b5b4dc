package policies

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePolicyFile(t *testing.T, root, category, name, content string) {
	t.Helper()
	dir := filepath.Join(root, category)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+Extension), []byte(content), 0o644))
}

func TestLoadLocal(t *testing.T) {
	root := t.TempDir()
	writePolicyFile(t, root, "team", "write", `path "secret/team/*" { capabilities = ["create"] }`)
	writePolicyFile(t, root, "team", "read", `path "secret/team/*" { capabilities = ["read"] }`)
	writePolicyFile(t, root, "user", "alice", `path "secret/user/alice/*" { capabilities = ["read"] }`)

	local, err := LoadLocal(root)
	require.NoError(t, err)
	require.Len(t, local, 3)

	// Sorted by remote name.
	assert.Equal(t, "team_read_policy", local[0].RemoteName())
	assert.Equal(t, "team_write_policy", local[1].RemoteName())
	assert.Equal(t, "user_alice_policy", local[2].RemoteName())
	assert.Contains(t, local[0].Content, `"read"`)
}

func TestLoadLocalSkipsUnrelatedFiles(t *testing.T) {
	root := t.TempDir()
	writePolicyFile(t, root, "team", "read", "content")
	// Files outside the layout are not policies.
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("docs"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "team", "notes.txt"), []byte("notes"), 0o644))

	local, err := LoadLocal(root)
	require.NoError(t, err)
	require.Len(t, local, 1)
	assert.Equal(t, "team_read_policy", local[0].RemoteName())
}

func TestLoadLocalMissingRoot(t *testing.T) {
	_, err := LoadLocal(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestEnsureRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "policies")
	require.NoError(t, EnsureRoot(root))

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent.
	require.NoError(t, EnsureRoot(root))
}
