package logger_test

import (
	"bytes"
	"testing"

	"github.com/mjunit/mjunit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:paralleltest // mutates the package-level logger
func TestLogger_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)

	logger.Infof("this is info")
	logger.Debugf("should not be displayed")
	assert.Contains(t, buf.String(), "this is info")
	assert.NotContains(t, buf.String(), "should not be displayed")

	logger.SetLevel("debug")
	assert.Equal(t, logger.LogLevelDebug, logger.Get().Level)

	logger.Debugf("should be displayed")
	assert.Contains(t, buf.String(), "should be displayed")

	logger.SetLevel("info")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		expected    logger.LogLevel
		expectError bool
	}{
		{name: "debug", input: "debug", expected: logger.LogLevelDebug},
		{name: "info", input: "info", expected: logger.LogLevelInfo},
		{name: "warning", input: "warning", expected: logger.LogLevelWarn},
		{name: "warn alias", input: "warn", expected: logger.LogLevelWarn},
		{name: "error", input: "error", expected: logger.LogLevelError},
		{name: "fatal", input: "fatal", expected: logger.LogLevelFatal},
		{name: "unknown", input: "lorem", expectError: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			level, err := logger.ParseLevel(test.input)
			if test.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, level)
		})
	}
}
