package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodEqualIgnoresMutableFields(t *testing.T) {
	a := Method{
		Type:        "approle",
		Path:        "apps",
		Description: "application access",
		Tuning:      map[string]any{"default_lease_ttl": 3600, "max_lease_ttl": 7200},
	}
	b := Method{
		Type:        "approle",
		Path:        "apps",
		Description: "completely different",
		Tuning:      map[string]any{"default_lease_ttl": 1800, "max_lease_ttl": 3600},
	}

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
}

func TestMethodEqualDistinguishesIdentity(t *testing.T) {
	base := Method{Type: "approle", Path: "apps"}

	assert.False(t, base.Equal(Method{Type: "ldap", Path: "apps"}))
	assert.False(t, base.Equal(Method{Type: "approle", Path: "other"}))
}

func TestTuningHashStableUnderKeyOrder(t *testing.T) {
	a := Method{Tuning: map[string]any{"a": 1, "b": 2}}
	b := Method{Tuning: map[string]any{"b": 2, "a": 1}}

	assert.Equal(t, a.TuningHash(), b.TuningHash())
}

func TestTuningHashChangesWithValue(t *testing.T) {
	a := Method{Tuning: map[string]any{"default_lease_ttl": 3600, "max_lease_ttl": 7200}}
	b := Method{Tuning: map[string]any{"default_lease_ttl": 1800, "max_lease_ttl": 7200}}

	assert.NotEqual(t, a.TuningHash(), b.TuningHash())
}

func TestTuningHashNormalizesScalarTypes(t *testing.T) {
	// Declared values arrive as YAML scalars, observed values as API
	// integers; equal pairs must hash identically either way.
	declared := Method{Tuning: map[string]any{"default_lease_ttl": uint64(3600)}}
	observed := Method{Tuning: map[string]any{"default_lease_ttl": 3600}}
	asString := Method{Tuning: map[string]any{"default_lease_ttl": "3600"}}

	assert.Equal(t, declared.TuningHash(), observed.TuningHash())
	assert.Equal(t, declared.TuningHash(), asString.TuningHash())
}

func TestTuningHashEmptyMapping(t *testing.T) {
	a := Method{}
	b := Method{Tuning: map[string]any{}}

	assert.Equal(t, a.TuningHash(), b.TuningHash())
	assert.NotEqual(t, a.TuningHash(), Method{Tuning: map[string]any{"k": "v"}}.TuningHash())
}
