package reporter_test

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mjunit/mjunit/pkg/report"
	"github.com/mjunit/mjunit/pkg/reporter"
)

// fixedClock pins suite timestamps so renders are reproducible.
func fixedClock() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

const fixedTimestamp = "2024-01-01T00:00:00"

type recordingLogger struct {
	infos    []string
	warnings []string
	errors   []string
}

func (l *recordingLogger) Infof(msg string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(msg, args...))
}

func (l *recordingLogger) Warnf(msg string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(msg, args...))
}

func (l *recordingLogger) Errorf(msg string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(msg, args...))
}

// newTestGenerator builds a generator with a fixed clock, a recording logger
// and a captured stdout. File output is disabled unless the test opts in.
func newTestGenerator(opts reporter.Options) (*reporter.Generator, *recordingLogger, *bytes.Buffer) {
	log := &recordingLogger{}
	stdout := &bytes.Buffer{}

	gen := reporter.New(opts)
	gen.Clock = fixedClock
	gen.Log = log
	gen.Stdout = stdout

	return gen, log, stdout
}

func sampleReport() report.Report {
	return report.Report{
		Runs: []report.Run{
			{
				Title: "Suite A",
				File:  "spec/suite_a.spec.js",
				Tests: []report.Test{
					{Suite: "Suite A", Name: "does X", State: report.StatePassed, WallClockDuration: 150},
					{Suite: "Suite A", Name: "does Y", State: report.StateFailed, Err: "AssertionError: expected true"},
				},
				Stats: report.RunStats{Failures: 1, WallClockDuration: 350},
			},
		},
		TotalDuration: 350,
		TotalTests:    2,
		TotalFailed:   1,
	}
}
