package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context represents a running test. It tracks the test's identifier, the
// assertion details accumulated so far, and whether the test has failed.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	details     []string
	errors      []error
}

// Run executes a group of tests and returns their results. The action
// receives a root Context whose Run method starts each individual test; only
// those named tests are recorded in the results.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				// FailNow was called; the failure message, if any, was
				// already recorded.
				if len(c.errors) == 0 && len(c.details) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run executes a single named test. The test transitions from running to
// either passed or failed; any panic inside the action (including FailNow
// from a require assertion) fails only this test, and exactly one TestResult
// is recorded for it. Tests excluded by the run filter are reported as
// skipped and not recorded.
func (c *Context) Run(name string, action func(*Context)) {
	path := append(append([]string(nil), c.id.Path...), name)
	id := TestID{Path: path}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)

	result := TestResult{
		TestID:  id,
		Passed:  !c1.failed,
		Details: c1.details,
		Errors:  c1.errors,
	}
	c.env.results.Tests = append(c.env.results.Tests, result)
	if !result.Passed {
		c.env.results.Failures = append(c.env.results.Failures, result)
	}
	c.env.testLogger.TestFinished(id, result, c1.debugLogger.Output())
}

// AddDetail records one assertion message for this test. Messages are
// recorded for passing assertions as well as failing ones, so the final
// details line shows every check that ran.
func (c *Context) AddDetail(message string) {
	c.details = append(c.details, message)
}

// Fail marks the test as failed without recording an additional message.
func (c *Context) Fail() {
	c.failed = true
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (c *Context) FailNow() {
	panic(c)
}

// Debug logs some debug output for the test. The output will be passed to the
// test logger at the end of the test.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
