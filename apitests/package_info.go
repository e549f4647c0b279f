// Package apitests contains the test suite for the AutomationExercise public
// REST API: the product catalog and search checks, the method-negative
// checks, and the full account lifecycle (create, verify login, get detail,
// update, delete).
package apitests
