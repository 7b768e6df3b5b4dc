package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"vault-manager/core/utils"
)

// Method describes a single auth mount, declared or observed.
//
// Identity is (Type, Path) only. Description and Tuning are mutable fields:
// they never affect set membership and are consulted solely for change
// detection via TuningHash.
type Method struct {
	// Type is the auth method type tag (ldap, approle, token, ...).
	Type string
	// Path is the mount point, unique per service instance.
	Path string
	// Description is free text attached to the mount.
	Description string
	// Tuning maps tunable parameter names to scalar values
	// (default_lease_ttl, max_lease_ttl).
	Tuning map[string]any
	// AuthConfig carries method-specific post-enable configuration.
	// It is only meaningful on declared methods and is nil otherwise.
	AuthConfig map[string]any
}

// Key returns the identity key used by the diff engine.
func (m Method) Key() string {
	return m.Type + ":" + m.Path
}

// Equal reports whether two methods are the same mount. Mutable fields are
// deliberately excluded.
func (m Method) Equal(other Method) bool {
	return m.Type == other.Type && m.Path == other.Path
}

// TuningHash returns a stable fingerprint of the tuning mapping.
//
// Keys are sorted and values normalized to strings before hashing, so two
// mappings with identical pairs hash identically regardless of key order or
// the scalar type the value arrived as (YAML integer vs API integer vs
// string). Any differing value produces a different hash.
func (m Method) TuningHash() string {
	keys := make([]string, 0, len(m.Tuning))
	for k := range m.Tuning {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(utils.ToString(m.Tuning[k]))
		b.WriteByte(';')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
