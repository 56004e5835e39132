package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNationalID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Formatted ID",
			input: "123.456.789-01",
			want:  "12345678901",
		},
		{
			name:  "Bare digits",
			input: "12345678901",
			want:  "12345678901",
		},
		{
			name:  "Spaces and letters",
			input: " 123 456 789 01 abc",
			want:  "12345678901",
		},
		{
			name:  "Empty",
			input: "",
			want:  "",
		},
		{
			name:  "No digits at all",
			input: "---",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeNationalID(tt.input))
		})
	}
}

func TestIsValidNationalID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "Exactly 11 digits",
			input: "12345678901",
			want:  true,
		},
		{
			name:  "Formatted 11 digits",
			input: "123.456.789-01",
			want:  true,
		},
		{
			name:  "Ten digits",
			input: "1234567890",
			want:  false,
		},
		{
			name:  "Twelve digits",
			input: "123456789012",
			want:  false,
		},
		{
			name:  "Empty",
			input: "",
			want:  false,
		},
		{
			name:  "Only separators",
			input: "...-",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidNationalID(tt.input))
		})
	}
}
