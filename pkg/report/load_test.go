package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mjunit/mjunit/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonReport = `{
  "runs": [
    {
      "title": "Suite A",
      "file": "spec/suite_a.spec.js",
      "tests": [
        {"suite": "Suite A", "name": "does X", "state": "passed", "wallClockDuration": 150},
        {"suite": "Suite A", "name": "does Y", "state": "failed", "error": "AssertionError: expected true"}
      ],
      "stats": {"failures": 1, "wallClockDuration": 350, "pending": 0}
    }
  ],
  "totalDuration": 350,
  "totalTests": 2,
  "totalFailed": 1,
  "totalPending": 0
}`

const yamlReport = `runs:
  - title: Suite B
    tests:
      - suite: Suite B
        name: stays pending
        state: pending
    stats:
      failures: 0
      wallClockDuration: 12
      pending: 1
totalDuration: 12
totalTests: 1
totalFailed: 0
totalPending: 1
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()

	rprt, err := report.Load(writeTempFile(t, "report.json", jsonReport))
	require.NoError(t, err)

	require.Len(t, rprt.Runs, 1)
	run := rprt.Runs[0]
	assert.Equal(t, "Suite A", run.Title)
	assert.Equal(t, "spec/suite_a.spec.js", run.File)
	require.Len(t, run.Tests, 2)
	assert.Equal(t, report.StatePassed, run.Tests[0].State)
	assert.InDelta(t, 150.0, run.Tests[0].WallClockDuration, 0)
	assert.Equal(t, report.StateFailed, run.Tests[1].State)
	assert.Equal(t, "AssertionError: expected true", run.Tests[1].Err)
	assert.Equal(t, 1, run.Stats.Failures)
	assert.Equal(t, 2, rprt.TotalTests)
	assert.Equal(t, 1, rprt.TotalFailed)
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	rprt, err := report.Load(writeTempFile(t, "report.yml", yamlReport))
	require.NoError(t, err)

	require.Len(t, rprt.Runs, 1)
	assert.Equal(t, report.StatePending, rprt.Runs[0].Tests[0].State)
	assert.Equal(t, 1, rprt.TotalPending)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "lorem.json")
			},
		},
		{
			name: "unsupported extension",
			path: func(t *testing.T) string {
				t.Helper()
				return writeTempFile(t, "report.txt", "lorem")
			},
		},
		{
			name: "malformed JSON",
			path: func(t *testing.T) string {
				t.Helper()
				return writeTempFile(t, "report.json", "{lorem")
			},
		},
		{
			name: "malformed YAML",
			path: func(t *testing.T) string {
				t.Helper()
				return writeTempFile(t, "report.yaml", "\t- lorem")
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := report.Load(test.path(t))
			require.Error(t, err)
		})
	}
}
