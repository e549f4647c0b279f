package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	started     []string
	finished    []string
	skipped     []string
	errors      []error
	debugCounts map[string]int
}

func newRecordingTestLogger() *recordingTestLogger {
	return &recordingTestLogger{debugCounts: make(map[string]int)}
}

func (l *recordingTestLogger) TestStarted(id TestID) {
	l.started = append(l.started, id.String())
}

func (l *recordingTestLogger) TestError(id TestID, err error) {
	l.errors = append(l.errors, err)
}

func (l *recordingTestLogger) TestFinished(id TestID, result TestResult, debugOutput CapturedOutput) {
	l.finished = append(l.finished, id.String())
	l.debugCounts[id.String()] = len(debugOutput)
}

func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	l.skipped = append(l.skipped, id.String())
}

func TestRunRecordsOneResultPerExecutedTest(t *testing.T) {
	logger := newRecordingTestLogger()

	results := Run(nil, logger, func(c *Context) {
		c.Run("first", func(c *Context) {
			c.AddDetail("200 OK")
		})
		c.Run("second", func(c *Context) {
			c.AddDetail("Expected 200, got 500")
			c.Fail()
		})
		c.Run("third", func(c *Context) {})
	})

	require.Len(t, results.Tests, 3)
	assert.Equal(t, 3, results.Total())
	assert.Equal(t, 2, results.PassedCount())
	assert.Equal(t, 1, results.FailedCount())
	assert.False(t, results.OK())

	assert.Equal(t, "first", results.Tests[0].TestID.String())
	assert.True(t, results.Tests[0].Passed)
	assert.Equal(t, "200 OK", results.Tests[0].DetailString())

	assert.Equal(t, "second", results.Tests[1].TestID.String())
	assert.False(t, results.Tests[1].Passed)
	assert.Equal(t, "Expected 200, got 500", results.Tests[1].DetailString())

	require.Len(t, results.Failures, 1)
	assert.Equal(t, "second", results.Failures[0].TestID.String())

	assert.Equal(t, []string{"first", "second", "third"}, logger.finished)
}

func TestPanicInTestBecomesFailedResultWithoutAbortingRun(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) {
			panic(errors.New("connection timed out"))
		})
		c.Run("still runs", func(c *Context) {
			c.AddDetail("ok")
		})
	})

	require.Len(t, results.Tests, 2)
	assert.False(t, results.Tests[0].Passed)
	assert.Contains(t, results.Tests[0].DetailString(), "unexpected panic in test")
	assert.Contains(t, results.Tests[0].DetailString(), "connection timed out")
	assert.True(t, results.Tests[1].Passed)
}

func TestFailNowStopsOnlyTheCurrentTest(t *testing.T) {
	reachedAfterFailNow := false

	results := Run(nil, nil, func(c *Context) {
		c.Run("aborted", func(c *Context) {
			c.Errorf("request failed: %s", "connection refused")
			c.FailNow()
			reachedAfterFailNow = true
		})
		c.Run("next", func(c *Context) {})
	})

	assert.False(t, reachedAfterFailNow)
	require.Len(t, results.Tests, 2)
	assert.False(t, results.Tests[0].Passed)
	assert.Contains(t, results.Tests[0].DetailString(), "connection refused")
	assert.True(t, results.Tests[1].Passed)
}

func TestFailNowWithNoMessageStillProducesAFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("silent failure", func(c *Context) {
			c.FailNow()
		})
	})

	require.Len(t, results.Tests, 1)
	assert.False(t, results.Tests[0].Passed)
	assert.Contains(t, results.Tests[0].DetailString(), "test failed with no failure message")
}

func TestDetailStringCombinesAssertionMessagesAndErrors(t *testing.T) {
	result := TestResult{
		TestID:  TestID{Path: []string{"x"}},
		Details: []string{"200 OK", "products[] present"},
		Errors:  []error{errors.New("boom")},
	}
	assert.Equal(t, "200 OK; products[] present; boom", result.DetailString())
}

func TestFilteredOutTestIsSkippedAndNotRecorded(t *testing.T) {
	logger := newRecordingTestLogger()
	filter := func(id TestID) bool { return id.String() != "excluded" }

	results := Run(filter, logger, func(c *Context) {
		c.Run("included", func(c *Context) {})
		c.Run("excluded", func(c *Context) {
			t.Error("filtered test should not execute")
		})
	})

	require.Len(t, results.Tests, 1)
	assert.Equal(t, "included", results.Tests[0].TestID.String())
	assert.Equal(t, []string{"excluded"}, logger.skipped)
	assert.Equal(t, []string{"included", "excluded"}, logger.started)
}

func TestDebugOutputIsCapturedPerTest(t *testing.T) {
	logger := newRecordingTestLogger()

	Run(nil, logger, func(c *Context) {
		c.Run("chatty", func(c *Context) {
			c.Debug("request %d", 1)
			c.Debug("request %d", 2)
		})
		c.Run("quiet", func(c *Context) {})
	})

	assert.Equal(t, 2, logger.debugCounts["chatty"])
	assert.Equal(t, 0, logger.debugCounts["quiet"])
}
