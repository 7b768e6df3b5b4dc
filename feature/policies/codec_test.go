package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeName(t *testing.T) {
	assert.Equal(t, "team_read_policy", EncodeName("team", "read"))
	assert.Equal(t, "user_alice_policy", EncodeName("user", "alice"))
}

func TestDecodeNameRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"team", "read"},
		{"user", "alice"},
		{"service", "deploy"},
	}
	for _, pair := range pairs {
		category, name, ok := DecodeName(EncodeName(pair[0], pair[1]))
		assert.True(t, ok)
		assert.Equal(t, pair[0], category)
		assert.Equal(t, pair[1], name)
	}
}

func TestDecodeNameRejectsForeignNames(t *testing.T) {
	foreign := []string{
		"foo",
		"a_b",
		"a_b_c_d",
		"a_b_notpolicy",
		"default",
		"root",
	}
	for _, remote := range foreign {
		t.Run(remote, func(t *testing.T) {
			_, _, ok := DecodeName(remote)
			assert.False(t, ok)
		})
	}
}
