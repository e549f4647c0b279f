package framework

import (
	"strings"
)

// Results accumulates the outcome of a whole test run. Tests holds one
// TestResult per executed test, in execution order; Failures holds the subset
// that did not pass.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the recorded outcome of a single executed test. It is
// immutable once recorded.
type TestResult struct {
	TestID  TestID
	Passed  bool
	Details []string
	Errors  []error
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r Results) Total() int {
	return len(r.Tests)
}

func (r Results) PassedCount() int {
	return len(r.Tests) - len(r.Failures)
}

func (r Results) FailedCount() int {
	return len(r.Failures)
}

// DetailString joins every recorded assertion message, followed by any errors
// (panics, transport failures) that were not produced by an assertion, into
// the single human-readable explanation that appears in the run log.
func (r TestResult) DetailString() string {
	parts := append([]string(nil), r.Details...)
	for _, err := range r.Errors {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}
