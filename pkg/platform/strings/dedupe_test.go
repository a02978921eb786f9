package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "trims whitespace",
			input:    []string{"  Palermo  ", "Recoleta  "},
			expected: []string{"Palermo", "Recoleta"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"Palermo", "Recoleta", "Palermo", "Belgrano"},
			expected: []string{"Palermo", "Recoleta", "Belgrano"},
		},
		{
			name:     "removes empty strings",
			input:    []string{"Palermo", "", "  ", "Belgrano"},
			expected: []string{"Palermo", "Belgrano"},
		},
		{
			name:     "preserves case",
			input:    []string{"Palermo", "palermo"},
			expected: []string{"Palermo", "palermo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DedupeAndTrim(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
