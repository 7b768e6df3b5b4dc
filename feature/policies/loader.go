package policies

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extension is the on-disk policy file extension.
const Extension = ".hcl"

// Policy is a named access-control document. Category and Name come from
// the two-level directory layout; the remote identity is the encoded name.
type Policy struct {
	// Category is the parent directory name.
	Category string
	// Name is the file stem.
	Name string
	// Content is the opaque policy document.
	Content string
}

// RemoteName returns the flat name this policy carries on the remote side.
func (p Policy) RemoteName() string {
	return EncodeName(p.Category, p.Name)
}

// Key returns the identity key used by the diff engine.
func (p Policy) Key() string {
	return p.RemoteName()
}

// EnsureRoot creates the policies directory if it does not exist yet.
func EnsureRoot(root string) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("failed to create policies directory %q: %w", root, err)
	}
	return nil
}

// LoadLocal enumerates every <root>/<category>/<name>.hcl file and reads
// its content. The result is sorted by remote name.
func LoadLocal(root string) ([]Policy, error) {
	categories, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read policies directory: %w", err)
	}

	var local []Policy
	for _, category := range categories {
		if !category.IsDir() {
			continue
		}
		dir := filepath.Join(root, category.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read policy category %q: %w", category.Name(), err)
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), Extension) {
				continue
			}
			content, err := os.ReadFile(filepath.Join(dir, file.Name()))
			if err != nil {
				return nil, fmt.Errorf("failed to read policy file %q: %w", file.Name(), err)
			}
			local = append(local, Policy{
				Category: category.Name(),
				Name:     strings.TrimSuffix(file.Name(), Extension),
				Content:  string(content),
			})
		}
	}

	sort.Slice(local, func(i, j int) bool { return local[i].Key() < local[j].Key() })
	return local, nil
}
