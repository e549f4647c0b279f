package main

import (
	"fmt"
	"os"

	"github.com/btec-qa/automationexercise-api-tests/framework"

	"github.com/fatih/color"
)

var passLabel = color.New(color.FgGreen).Sprint("PASS")
var failLabel = color.New(color.FgRed).Sprint("FAIL")

// runLogTestLogger emits one timestamped PASS/FAIL line per test to the run
// log. The console copy gets a colored status label; the file copy stays
// plain text. Captured debug output is dumped after a failed test (or every
// test with -debug-all).
type runLogTestLogger struct {
	log                  *framework.RunLog
	debugOutputOnFailure bool
	debugOutputOnSuccess bool
}

func (l *runLogTestLogger) TestStarted(id framework.TestID) {}

func (l *runLogTestLogger) TestError(id framework.TestID, err error) {
	// Errors are folded into the test's details line by TestFinished.
}

func (l *runLogTestLogger) TestFinished(id framework.TestID, result framework.TestResult, debugOutput framework.CapturedOutput) {
	status, label := "PASS", passLabel
	if !result.Passed {
		status, label = "FAIL", failLabel
	}
	detail := result.DetailString()
	l.log.Record(
		fmt.Sprintf("%s - %s - %s", label, id, detail),
		fmt.Sprintf("%s - %s - %s", status, id, detail),
	)
	if len(debugOutput) > 0 &&
		((!result.Passed && l.debugOutputOnFailure) || (result.Passed && l.debugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (l *runLogTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		l.log.Printf("SKIP - %s", id)
	} else {
		l.log.Printf("SKIP - %s (%s)", id, reason)
	}
}
