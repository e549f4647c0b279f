package framework

// PrintResults writes the end-of-run summary to the run log: the totals line,
// a recap of each failure, and the final verdict.
func PrintResults(log *RunLog, results Results) {
	log.Printf("=== SUMMARY ===")
	log.Printf("Total: %d | Passed: %d | Failed: %d",
		results.Total(), results.PassedCount(), results.FailedCount())
	if results.OK() {
		log.Printf("All tests passed")
		return
	}
	for _, f := range results.Failures {
		log.Printf("FAILED: %s - %s", f.TestID, f.DetailString())
	}
	log.Printf("Some tests failed. Check details above.")
}
