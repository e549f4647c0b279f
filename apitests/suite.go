package apitests

import (
	"github.com/btec-qa/automationexercise-api-tests/client"
	"github.com/btec-qa/automationexercise-api-tests/framework"
)

// RunTestSuite executes the whole suite in a fixed order: the read-only
// catalog and search checks first, then the account lifecycle, which must run
// create → verify → mutate → delete against the same generated user.
func RunTestSuite(
	apiClient *client.Client,
	user *User,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, apiClient, user)

		DoProductCatalogTests(t)
		DoProductSearchTests(t)
		DoAccountLifecycleTests(t)
	})
}
