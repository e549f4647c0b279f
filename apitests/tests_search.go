package apitests

import (
	"fmt"
	"net/url"
)

// DoProductSearchTests covers searchProduct with and without its required
// parameter.
func DoProductSearchTests(t *T) {
	t.Run("API 5 - POST /api/searchProduct with parameter returns results", func(t *T) {
		resp := t.PostForm(searchProductPath, url.Values{"search_product": {"top"}})
		t.Check(resp.StatusCode == 200,
			"200 OK", fmt.Sprintf("Expected 200, got %d", resp.StatusCode))
		t.Check(resp.HasListField("products"),
			"products[] present", fmt.Sprintf("products[] missing, keys=%s", keysOf(resp)))
	})

	t.Run("API 6 - POST /api/searchProduct without parameter returns error (negative)", func(t *T) {
		resp := t.PostForm(searchProductPath, url.Values{})
		t.Check(statusIn(resp, 200, 400),
			fmt.Sprintf("HTTP %d", resp.StatusCode), fmt.Sprintf("Unexpected http %d", resp.StatusCode))
		t.Check(resp.ResponseCode() == 400 || resp.ContainsText("missing"),
			"400 missing param", fmt.Sprintf("Expected missing param error, got %s", resp.Text()))
	})
}
