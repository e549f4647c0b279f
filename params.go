package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/btec-qa/automationexercise-api-tests/framework"
)

type commandParams struct {
	baseURL    string
	reportsDir string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.baseURL, "base-url", c.baseURL, "base URL of the API under test")
	fs.StringVar(&c.reportsDir, "reports-dir", c.reportsDir, "directory where run log files are written")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}
