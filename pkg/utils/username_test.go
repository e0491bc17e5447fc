package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	for _, name := range []string{"marcus", "seneca_42", "Epictetus", "ab1"} {
		assert.NoError(t, ValidateUsername(name), name)
	}

	for _, name := range []string{"ab", "_leading", "has space", "has-dash", "waytoolongusernamefortwenty"} {
		assert.Error(t, ValidateUsername(name), name)
	}
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "marcus", NormalizeUsername("  Marcus "))
	assert.Equal(t, "seneca_42", NormalizeUsername("SENECA_42"))
}
