package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *int
	}{
		{name: "parses a number", value: "130", want: intPtr(130)},
		{name: "trims surrounding whitespace", value: " 25 ", want: intPtr(25)},
		{name: "empty input is absent", value: "", want: nil},
		{name: "garbage is absent", value: "abc", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Int(tt.value))
		})
	}
}

func TestIntList(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []int
	}{
		{
			name:  "native int list",
			value: []int{5, 10, 20},
			want:  []int{5, 10, 20},
		},
		{
			name:  "native list from a parsed config file",
			value: []any{5, 10, 20},
			want:  []int{5, 10, 20},
		},
		{
			name:  "native list with float values",
			value: []any{float64(5), float64(10)},
			want:  []int{5, 10},
		},
		{
			name:  "JSON array string",
			value: "[5, 10, 20]",
			want:  []int{5, 10, 20},
		},
		{
			name:  "comma-separated string without brackets",
			value: "5, 10, 20",
			want:  []int{5, 10, 20},
		},
		{
			name:  "comma-separated string with brackets and no spaces",
			value: "[5,10,20]",
			want:  []int{5, 10, 20},
		},
		{
			name:  "invalid elements are dropped",
			value: "5, x, 20",
			want:  []int{5, 20},
		},
		{
			name:  "all-invalid input is absent",
			value: "x, y",
			want:  nil,
		},
		{
			name:  "empty string is absent",
			value: "",
			want:  nil,
		},
		{
			name:  "empty brackets are absent",
			value: "[]",
			want:  nil,
		},
		{
			name:  "nil is absent",
			value: nil,
			want:  nil,
		},
		{
			name:  "unsupported type is absent",
			value: 42,
			want:  nil,
		},
		{
			name:  "empty native list is absent",
			value: []int{},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntList(tt.value))
		})
	}
}

func intPtr(n int) *int {
	return &n
}
