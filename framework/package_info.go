// Package framework contains the low-level test harness infrastructure that
// is not specific to the API being tested.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results. A panic inside one test is recorded as
// that test's failure and never aborts the rest of the run.
//
// 2. Every executed test produces exactly one TestResult carrying a pass/fail
// flag and the accumulated assertion details, so failures are data rather than
// control flow.
//
// 3. Progress is reported through a TestLogger, and the RunLog mirrors every
// line to standard output and to an append-only per-run log file.
//
// The domain-specific code that knows what is being tested lives elsewhere and
// provides the test case functions and a domain-specific test API on top of
// the test context.
package framework
