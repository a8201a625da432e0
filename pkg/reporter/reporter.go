// Package reporter converts a test-run report into a JUnit XML report file.
package reporter

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mjunit/mjunit/internal/logger"
	"github.com/mjunit/mjunit/pkg/junit"
	"github.com/mjunit/mjunit/pkg/report"
	"github.com/mjunit/mjunit/pkg/sanitize"
)

// Logger is the observability collaborator of the reporter. Hosts can
// inject their own implementation; filesystem faults are surfaced through it
// instead of aborting the generation.
type Logger interface {
	Infof(msg string, args ...any)
	Warnf(msg string, args ...any)
	Errorf(msg string, args ...any)
}

// stdLogger routes reporter logs to the mjunit leveled logger.
type stdLogger struct{}

func (stdLogger) Infof(msg string, args ...any)  { logger.Infof(msg, args...) }
func (stdLogger) Warnf(msg string, args ...any)  { logger.Warnf(msg, args...) }
func (stdLogger) Errorf(msg string, args ...any) { logger.Errorf(msg, args...) }

// Generator transforms reports into JUnit XML documents.
type Generator struct {
	Options Options

	// Clock supplies the testsuite timestamps. It is read once per
	// generation, so a fixed clock yields byte-identical output.
	Clock func() time.Time

	// Log receives warnings about dropped tests and swallowed filesystem
	// faults.
	Log Logger

	// Stdout is the destination of the echo option.
	Stdout io.Writer
}

// Result is the outcome of one generation.
type Result struct {
	// XML is the rendered report.
	XML string

	// Path is the resolved destination file, with the [hash] token already
	// substituted. Empty when file output is disabled or the write failed.
	Path string
}

// New creates a Generator with the ambient clock, logger and stdout.
func New(opts Options) *Generator {
	if opts.SuiteTitleSeparator == "" {
		opts.SuiteTitleSeparator = DefaultSuiteTitleSeparator
	}

	return &Generator{
		Options: opts,
		Clock:   time.Now,
		Log:     stdLogger{},
		Stdout:  os.Stdout,
	}
}

// Generate builds the JUnit document for the report, renders it, writes it to
// the configured destination and echoes it when requested. Input shape
// problems never fail the generation, and neither do filesystem faults: those
// are logged and swallowed so reporting cannot crash the host test run.
func (g *Generator) Generate(rprt report.Report) (Result, error) {
	out, err := junit.Render(g.Build(rprt))
	if err != nil {
		return Result{}, fmt.Errorf("can't render JUnit report: %w", err)
	}

	result := Result{
		XML:  out,
		Path: g.write(out),
	}

	if g.Options.Echo {
		fmt.Fprint(g.Stdout, out)
	}

	return result, nil
}

// Build assembles the JUnit node tree for the report. One testsuite is
// produced per run, in report order, with its stats filled from the run's own
// record during the same pass.
func (g *Generator) Build(rprt report.Report) *junit.Testsuites {
	timestamp := g.Clock().Format("2006-01-02T15:04:05")

	doc := &junit.Testsuites{
		Name:  g.Options.TestsuitesTitle,
		Tests: rprt.TotalTests,
		// The total duration is passed through in the report's native unit,
		// unlike per-suite times which are converted to seconds.
		Time:     formatNumber(rprt.TotalDuration),
		Failures: rprt.TotalFailed,
		Skipped:  rprt.TotalPending,
	}

	for _, run := range rprt.Runs {
		suite := g.buildTestsuite(run, timestamp)

		for _, test := range run.Tests {
			switch test.State {
			case report.StatePassed:
				suite.Testcases = append(suite.Testcases, g.buildTestcase(test, ""))
			case report.StatePending:
				testcase := g.buildTestcase(test, "")
				testcase.Skipped = &junit.Skipped{}
				suite.Testcases = append(suite.Testcases, testcase)
			case report.StateFailed:
				suite.Testcases = append(suite.Testcases, g.buildTestcase(test, test.Err))
			default:
				g.Log.Warnf("dropping test %q: unrecognized state %q", test.Name, test.State)
			}
		}

		doc.Testsuites = append(doc.Testsuites, suite)
	}

	return doc
}

// buildTestsuite converts one run into a testsuite node header. Stats come
// straight from the run's own record.
func (g *Generator) buildTestsuite(run report.Run, timestamp string) *junit.Testsuite {
	suite := &junit.Testsuite{
		Name:      g.suiteName(run),
		Timestamp: timestamp,
		Tests:     len(run.Tests),
		File:      run.File,
		Failures:  run.Stats.Failures,
		Time:      formatSeconds(run.Stats.WallClockDuration),
		Skipped:   run.Stats.Pending,
	}

	if len(g.Options.Properties) > 0 {
		block := &junit.Properties{}
		for _, name := range sortedKeys(g.Options.Properties) {
			block.Properties = append(block.Properties, junit.Property{
				Name:  name,
				Value: g.Options.Properties[name],
			})
		}
		suite.Properties = block
	}

	return suite
}

// suiteName resolves the testsuite name from the run titles, according to
// the configured title policy.
func (g *Generator) suiteName(run report.Run) string {
	if !g.Options.UseFullSuiteTitle {
		title := run.Title
		if title == "" {
			title = g.Options.RootSuiteTitle
		}

		return sanitize.Strip(title)
	}

	var chain []string
	for _, title := range append(append([]string{}, run.AncestorTitles...), run.Title) {
		if title == "" {
			title = g.Options.RootSuiteTitle
		}
		chain = append(chain, title)
	}

	return sanitize.Strip(strings.Join(chain, g.Options.SuiteTitleSeparator))
}

// buildTestcase converts one test into a testcase node. A non-empty errMsg
// attaches a failure child: the raw message in the attribute, the sanitized
// form in the CDATA body.
func (g *Generator) buildTestcase(test report.Test, errMsg string) *junit.Testcase {
	name := sanitize.Strip(test.Name)
	classname := sanitize.Strip(test.Suite)
	if g.Options.SwitchClassnameAndName {
		name, classname = classname, name
	}

	testcase := &junit.Testcase{
		Name:      name,
		Time:      formatSeconds(test.WallClockDuration),
		Classname: classname,
	}

	if errMsg != "" {
		testcase.Failure = &junit.Failure{
			Message: errMsg,
			Text:    sanitize.Strip(errMsg),
		}
	}

	return testcase
}

// formatSeconds converts a millisecond duration to seconds.
func formatSeconds(milliseconds float64) string {
	return formatNumber(milliseconds / 1000)
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
