package summary_test

import (
	"bytes"
	"testing"

	"github.com/mjunit/mjunit/pkg/report"
	"github.com/mjunit/mjunit/pkg/summary"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Parallel()

	rprt := report.Report{
		Runs: []report.Run{
			{
				Title: "Suite A",
				Tests: []report.Test{
					{Suite: "Suite A", Name: "does X", State: report.StatePassed},
					{Suite: "Suite A", Name: "does Y", State: report.StateFailed, Err: "boom"},
				},
				Stats: report.RunStats{Failures: 1, WallClockDuration: 350},
			},
			{
				Title: "",
				Stats: report.RunStats{Pending: 1},
			},
		},
		TotalDuration: 350,
		TotalTests:    2,
		TotalFailed:   1,
		TotalPending:  1,
	}

	buf := &bytes.Buffer{}
	summary.Render(buf, rprt)

	out := buf.String()
	assert.Contains(t, out, "SUITE")
	assert.Contains(t, out, "Suite A")
	assert.Contains(t, out, "(root)")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "0.350s")
}
