package apitests

import (
	"fmt"
	"net/url"

	"github.com/btec-qa/automationexercise-api-tests/client"
	"github.com/btec-qa/automationexercise-api-tests/framework"

	"github.com/stretchr/testify/require"
)

const (
	productsListPath  = "/api/productsList"
	brandsListPath    = "/api/brandsList"
	searchProductPath = "/api/searchProduct"
	createAccountPath = "/api/createAccount"
	verifyLoginPath   = "/api/verifyLogin"
	getUserDetailPath = "/api/getUserDetailByEmail"
	updateAccountPath = "/api/updateAccount"
	deleteAccountPath = "/api/deleteAccount"
)

// T represents a test or subtest in the API test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with extra features such
// as per-test debug logging provided by the lower-level framework package.
//
// Every T shares the run's API client session and the test user generated at
// startup. The request helpers fail the test immediately on a transport
// error (timeout, connection refused), recording the error text as the
// test's details; the remaining tests still run. Assertions on response
// content go through Check, which records an explanation whether the check
// passed or failed.
//
// To make additional assertions, the assert and require packages can be used,
// passing the *T as if it were a *testing.T.
type T struct {
	context *framework.Context
	client  *client.Client
	user    *User
}

func newTestScope(c *framework.Context, apiClient *client.Client, user *User) *T {
	return &T{
		context: c,
		client:  apiClient.WithLogger(c.DebugLogger()),
		user:    user,
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.client, t.user))
	})
}

// Debug logs some debug output for the test. The output will be passed to
// the test logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// User returns the unique account payload generated for this run.
func (t *T) User() *User {
	return t.user
}

// Check records the outcome of one assertion: okMsg when the condition holds,
// failMsg otherwise. Both end up in the test's details line, so the log shows
// every check that ran. A false condition fails the test but does not stop
// it; checks within one test combine with logical AND.
func (t *T) Check(condition bool, okMsg, failMsg string) bool {
	if condition {
		t.context.AddDetail(okMsg)
		return true
	}
	t.context.AddDetail(failMsg)
	t.context.Fail()
	return false
}

// Get issues a GET request, failing the test on a transport error.
func (t *T) Get(path string, query url.Values) client.Response {
	resp, err := t.client.Get(path, query)
	require.NoError(t, err)
	return resp
}

// PostForm issues a POST request with a form body, failing the test on a
// transport error.
func (t *T) PostForm(path string, form url.Values) client.Response {
	resp, err := t.client.PostForm(path, form)
	require.NoError(t, err)
	return resp
}

// PutForm issues a PUT request with a form body, failing the test on a
// transport error.
func (t *T) PutForm(path string, form url.Values) client.Response {
	resp, err := t.client.PutForm(path, form)
	require.NoError(t, err)
	return resp
}

// DeleteForm issues a DELETE request with a form body, failing the test on a
// transport error.
func (t *T) DeleteForm(path string, form url.Values) client.Response {
	resp, err := t.client.DeleteForm(path, form)
	require.NoError(t, err)
	return resp
}

func statusIn(resp client.Response, accepted ...int) bool {
	for _, code := range accepted {
		if resp.StatusCode == code {
			return true
		}
	}
	return false
}

func keysOf(resp client.Response) string {
	return fmt.Sprintf("%v", resp.Keys())
}
