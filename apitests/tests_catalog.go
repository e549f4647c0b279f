package apitests

import (
	"fmt"
)

// DoProductCatalogTests covers the read-only catalog endpoints and their
// method-negative checks. The API list documents 405 for the unsupported
// methods, but the live service sometimes answers HTTP 200 with the error in
// the body's responseCode, so both conventions are accepted.
func DoProductCatalogTests(t *T) {
	t.Run("API 1 - GET /api/productsList returns products", func(t *T) {
		resp := t.Get(productsListPath, nil)
		t.Check(resp.StatusCode == 200,
			"200 OK", fmt.Sprintf("Expected 200, got %d", resp.StatusCode))
		t.Check(resp.HasListField("products"),
			"products[] present", fmt.Sprintf("products[] missing, keys=%s", keysOf(resp)))
	})

	t.Run("API 2 - POST /api/productsList not supported (negative)", func(t *T) {
		resp := t.PostForm(productsListPath, nil)
		t.Check(statusIn(resp, 405, 200),
			fmt.Sprintf("Status %d", resp.StatusCode), fmt.Sprintf("Unexpected status %d", resp.StatusCode))
		t.Check(resp.ResponseCode() == 405 || resp.ContainsText("not supported"),
			"405 not supported", fmt.Sprintf("Expected not supported, got %s", resp.Text()))
	})

	t.Run("API 3 - GET /api/brandsList returns brands", func(t *T) {
		resp := t.Get(brandsListPath, nil)
		t.Check(resp.StatusCode == 200,
			"200 OK", fmt.Sprintf("Expected 200, got %d", resp.StatusCode))
		t.Check(resp.HasListField("brands"),
			"brands[] present", fmt.Sprintf("brands[] missing, keys=%s", keysOf(resp)))
	})

	t.Run("API 4 - PUT /api/brandsList not supported (negative)", func(t *T) {
		resp := t.PutForm(brandsListPath, nil)
		t.Check(statusIn(resp, 405, 200),
			fmt.Sprintf("Status %d", resp.StatusCode), fmt.Sprintf("Unexpected status %d", resp.StatusCode))
		t.Check(resp.ResponseCode() == 405 || resp.ContainsText("not supported"),
			"405 not supported", fmt.Sprintf("Expected not supported, got %s", resp.Text()))
	})
}
