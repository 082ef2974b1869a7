package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "hyphenated UUID",
			input:    "2455E6C1-43B2-4a00-0000-000000000000",
			expected: "2455e6c143b24a000000000000000000",
		},
		{
			name:     "already normalized",
			input:    "2455e6c143b24a000000000000000000",
			expected: "2455e6c143b24a000000000000000000",
		},
		{
			name:     "underscores and spaces",
			input:    "2455e6c14 3b2_4a00",
			expected: "2455e6c143b24a00",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(
		"2455e6c1-43b2-4a00-0000-000000000000",
		"2455E6C143B24A000000000000000000",
	))
	assert.True(t, Equal("2455e6c14 3b2", "2455e6c143b2"))
	assert.False(t, Equal("2455e6c143b2", "2455e6c143b3"))

	// Known looseness: two missing identifiers compare equal.
	assert.True(t, Equal("", ""))
	assert.True(t, Equal("-", ""))
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(""))
	assert.True(t, IsZero("- -"))
	assert.False(t, IsZero("a"))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("2455e6c1-43b2-4a00-8000-000000000000"))
	assert.True(t, IsUUID("2455e6c143b24a008000000000000000"))
	assert.False(t, IsUUID("not-a-uuid"))
}
