// Package report defines the test-run report consumed by the JUnit reporter.
// The report is produced by the host test runner and is treated as a
// read-only input: aggregate totals are trusted as supplied, never recomputed
// from the test list.
package report

// Test states recognized by the reporter. Any other value is tolerated on
// input but produces no testcase node.
const (
	StatePassed  = "passed"
	StatePending = "pending"
	StateFailed  = "failed"
)

// Report is the top-level input of the transformation.
type Report struct {
	Runs []Run `json:"runs" yaml:"runs"`

	// Roll-up totals supplied by the runner. TotalDuration is expressed in
	// milliseconds.
	TotalDuration float64 `json:"totalDuration" yaml:"totalDuration"`
	TotalTests    int     `json:"totalTests"    yaml:"totalTests"`
	TotalFailed   int     `json:"totalFailed"   yaml:"totalFailed"`
	TotalPending  int     `json:"totalPending"  yaml:"totalPending"`
}

// Run is one execution of a suite tree. Each run maps to exactly one JUnit
// testsuite node, in the same position.
type Run struct {
	// Title is the run's own suite title. The anonymous root suite has an
	// empty title.
	Title string `json:"title" yaml:"title"`

	// AncestorTitles holds the titles of all enclosing suites, outermost
	// first. Empty entries stand for the anonymous root suite.
	AncestorTitles []string `json:"ancestorTitles,omitempty" yaml:"ancestorTitles,omitempty"`

	// File is the source path of the spec file, when known.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	Tests []Test   `json:"tests" yaml:"tests"`
	Stats RunStats `json:"stats" yaml:"stats"`
}

// RunStats carries the per-run aggregates supplied by the runner.
type RunStats struct {
	Failures int `json:"failures" yaml:"failures"`

	// WallClockDuration is expressed in milliseconds.
	WallClockDuration float64 `json:"wallClockDuration" yaml:"wallClockDuration"`
	Pending           int     `json:"pending" yaml:"pending"`
}

// Test is one leaf test case.
type Test struct {
	// Suite and Name form the ordered title pair of the test.
	Suite string `json:"suite" yaml:"suite"`
	Name  string `json:"name"  yaml:"name"`

	State string `json:"state" yaml:"state"`

	// WallClockDuration is expressed in milliseconds. Zero when the runner
	// did not measure the test.
	WallClockDuration float64 `json:"wallClockDuration,omitempty" yaml:"wallClockDuration,omitempty"`

	// Err holds the failure message, present only when State is "failed".
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}
