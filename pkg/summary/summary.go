// Package summary renders a human-readable digest of a test-run report.
package summary

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/mjunit/mjunit/pkg/report"
	"github.com/mjunit/mjunit/pkg/sanitize"
)

// Render displays the report's suites as a table.
func Render(w io.Writer, rprt report.Report) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	var data [][]string
	for _, run := range rprt.Runs {
		title := sanitize.Strip(run.Title)
		if title == "" {
			title = "(root)"
		}

		data = append(data, []string{
			title,
			strconv.Itoa(len(run.Tests)),
			strconv.Itoa(run.Stats.Failures),
			strconv.Itoa(run.Stats.Pending),
			strconv.FormatFloat(run.Stats.WallClockDuration/1000, 'f', 3, 64) + "s",
		})
	}

	data = append(data, []string{
		"TOTAL",
		strconv.Itoa(rprt.TotalTests),
		strconv.Itoa(rprt.TotalFailed),
		strconv.Itoa(rprt.TotalPending),
		strconv.FormatFloat(rprt.TotalDuration/1000, 'f', 3, 64) + "s",
	})

	table.AppendBulk(data)
	table.SetHeader([]string{"Suite", "Tests", "Failures", "Pending", "Duration"})
	table.Render()
}
