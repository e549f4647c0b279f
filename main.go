package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/btec-qa/automationexercise-api-tests/apitests"
	"github.com/btec-qa/automationexercise-api-tests/client"
	"github.com/btec-qa/automationexercise-api-tests/framework"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "https://automationexercise.com"
const defaultReportsDir = "reports"
const requestTimeout = time.Second * 20

func main() {
	// A .env file may override the defaults; explicit flags still win.
	_ = godotenv.Load()

	params := commandParams{
		baseURL:    defaultBaseURL,
		reportsDir: defaultReportsDir,
	}
	if v := os.Getenv("API_TESTS_BASE_URL"); v != "" {
		params.baseURL = v
	}
	if v := os.Getenv("API_TESTS_REPORTS_DIR"); v != "" {
		params.reportsDir = v
	}
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	user := apitests.NewUniqueUser()

	runLog, err := framework.NewRunLog(params.reportsDir, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open run log: %s\n", err)
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	apiClient := client.New(params.baseURL, requestTimeout, mainDebugLogger)

	runLog.Printf("=== AutomationExercise API Testing ===")
	runLog.Printf("Base URL: %s", params.baseURL)
	runLog.Printf("Test user: %s", user.Email)
	framework.PrintFilterDescription(runLog, params.filters)

	testLogger := &runLogTestLogger{
		log:                  runLog,
		debugOutputOnFailure: params.debug || params.debugAll,
		debugOutputOnSuccess: params.debugAll,
	}

	results := apitests.RunTestSuite(apiClient, user, params.filters.AsFilter, testLogger)

	framework.PrintResults(runLog, results)
	ok := results.OK()
	_ = runLog.Close()
	if !ok {
		os.Exit(1)
	}
}
