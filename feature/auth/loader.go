package auth

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// ConfigFileName is the declared auth-method document expected inside the
// configuration directory.
const ConfigFileName = "auth-methods.yml"

// Declared is the validated result of loading the auth-method document.
type Declared struct {
	// DeletionEnabled opts in to disabling remote mounts absent from the
	// declared set. When false, extraneous mounts are left untouched.
	// Note the asymmetry with policies: policy push always deletes
	// decodable orphans, mount deletion requires this flag.
	DeletionEnabled bool
	// Methods is the declared mount set, unique by (type, path).
	Methods []Method
}

// methodsFile mirrors the on-disk document layout.
type methodsFile struct {
	DeletionEnabled bool           `yaml:"auth-methods-deletion"`
	Methods         []methodRecord `yaml:"auth-methods"`
}

type methodRecord struct {
	Type        string         `yaml:"type"`
	Path        string         `yaml:"path"`
	Description string         `yaml:"description"`
	Tuning      map[string]any `yaml:"tuning"`
	AuthConfig  map[string]any `yaml:"auth_config"`
}

// LoadDeclared reads auth-methods.yml from the configuration directory and
// validates every record. Validation failures are configuration errors:
// they surface before any remote call is made.
func LoadDeclared(configDir string) (*Declared, error) {
	path := filepath.Join(configDir, ConfigFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth method configuration: %w", err)
	}

	var file methodsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	declared := &Declared{
		DeletionEnabled: file.DeletionEnabled,
		Methods:         make([]Method, 0, len(file.Methods)),
	}

	seen := make(map[string]struct{}, len(file.Methods))
	for i, rec := range file.Methods {
		if rec.Type == "" {
			return nil, fmt.Errorf("%s: auth method %d: type is required", ConfigFileName, i)
		}
		if rec.Path == "" {
			return nil, fmt.Errorf("%s: auth method %d: path is required", ConfigFileName, i)
		}
		if len(rec.Tuning) == 0 {
			return nil, fmt.Errorf("%s: auth method %q: tuning is required", ConfigFileName, rec.Path)
		}
		for _, key := range []string{"default_lease_ttl", "max_lease_ttl"} {
			if _, ok := rec.Tuning[key]; !ok {
				return nil, fmt.Errorf("%s: auth method %q: tuning.%s is required", ConfigFileName, rec.Path, key)
			}
		}

		m := Method{
			Type:        rec.Type,
			Path:        rec.Path,
			Description: rec.Description,
			Tuning:      rec.Tuning,
			AuthConfig:  rec.AuthConfig,
		}
		if _, dup := seen[m.Key()]; dup {
			return nil, fmt.Errorf("%s: duplicate auth method %s at %q", ConfigFileName, rec.Type, rec.Path)
		}
		seen[m.Key()] = struct{}{}
		declared.Methods = append(declared.Methods, m)
	}

	return declared, nil
}
