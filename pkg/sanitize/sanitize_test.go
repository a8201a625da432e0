package sanitize_test

import (
	"testing"

	"github.com/mjunit/mjunit/pkg/sanitize"
	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "Hello World",
			expected: "Hello World",
		},
		{
			name:     "single color code",
			input:    "[31mHello World",
			expected: "Hello World",
		},
		{
			name:     "multiple color codes",
			input:    "[30mA [31m B [32m C [33m D[0m",
			expected: "A  B  C  D",
		},
		{
			name:     "bright color code",
			input:    "[91mE: Unable to locate package lorem",
			expected: "E: Unable to locate package lorem",
		},
		{
			name:     "bare escape character",
			input:    "expected true to equal false",
			expected: "expected true to equal false",
		},
		{
			name:     "assertion error with colors",
			input:    "[0mAssertionError: expected true to equal false[0m",
			expected: "AssertionError: expected true to equal false",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "regex metacharacters preserved",
			input:    "expected [a-z]+ to match (foo|bar)",
			expected: "expected [a-z]+ to match (foo|bar)",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, sanitize.Strip(test.input))
		})
	}
}
