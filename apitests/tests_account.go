package apitests

import (
	"fmt"
	"net/url"
)

// DoAccountLifecycleTests runs the stateful account checks against the user
// generated for this run: create, verify login (valid, wrong password,
// missing email), the method-negative check, detail lookup, update, and the
// final delete that cleans the account off the shared service.
//
// The case names keep the numbering of the published API list, which is why
// they appear out of numeric order here; the execution order is what matters.
func DoAccountLifecycleTests(t *T) {
	t.Run("API 11 - POST /api/createAccount creates user", func(t *T) {
		resp := t.PostForm(createAccountPath, t.User().RegistrationForm())
		t.Check(statusIn(resp, 201, 200),
			fmt.Sprintf("HTTP %d", resp.StatusCode), fmt.Sprintf("Expected 201/200, got %d", resp.StatusCode))
		t.Check(resp.ResponseCode() == 201 || resp.ResponseCode() == 200 || resp.ContainsText("created"),
			"User created", fmt.Sprintf("Expected created, got %s", resp.Text()))
	})

	t.Run("API 7 - POST /api/verifyLogin valid credentials", func(t *T) {
		resp := t.PostForm(verifyLoginPath, t.User().Credentials())
		t.Check(resp.StatusCode == 200,
			"200 OK", fmt.Sprintf("Expected 200, got %d", resp.StatusCode))
		t.Check(resp.ResponseCode() == 200 || resp.ContainsText("exists"),
			"User exists", fmt.Sprintf("Expected user exists, got %s", resp.Text()))
	})

	t.Run("API 10 - POST /api/verifyLogin invalid credentials (negative)", func(t *T) {
		form := url.Values{"email": {t.User().Email}, "password": {"wrong_password"}}
		resp := t.PostForm(verifyLoginPath, form)
		t.Check(statusIn(resp, 200, 404),
			fmt.Sprintf("HTTP %d", resp.StatusCode), fmt.Sprintf("Unexpected http %d", resp.StatusCode))
		t.Check(resp.ResponseCode() == 404 || resp.ContainsText("not found"),
			"User not found", fmt.Sprintf("Expected user not found, got %s", resp.Text()))
	})

	t.Run("API 8 - POST /api/verifyLogin missing email (negative)", func(t *T) {
		form := url.Values{"password": {t.User().Password}}
		resp := t.PostForm(verifyLoginPath, form)
		t.Check(statusIn(resp, 200, 400),
			fmt.Sprintf("HTTP %d", resp.StatusCode), fmt.Sprintf("Unexpected http %d", resp.StatusCode))
		t.Check(resp.ResponseCode() == 400 || resp.ContainsText("missing"),
			"400 missing param", fmt.Sprintf("Expected missing param error, got %s", resp.Text()))
	})

	t.Run("API 9 - DELETE /api/verifyLogin not supported (negative)", func(t *T) {
		resp := t.DeleteForm(verifyLoginPath, nil)
		t.Check(statusIn(resp, 200, 405),
			fmt.Sprintf("HTTP %d", resp.StatusCode), fmt.Sprintf("Unexpected http %d", resp.StatusCode))
		t.Check(resp.ResponseCode() == 405 || resp.ContainsText("not supported"),
			"405 not supported", fmt.Sprintf("Expected not supported, got %s", resp.Text()))
	})

	t.Run("API 14 - GET /api/getUserDetailByEmail returns details", func(t *T) {
		resp := t.Get(getUserDetailPath, url.Values{"email": {t.User().Email}})
		t.Check(resp.StatusCode == 200,
			"200 OK", fmt.Sprintf("Expected 200, got %d", resp.StatusCode))
		// The user detail structure varies; accept the responseCode, a top-level
		// user object, or any mention of the email field.
		t.Check(resp.ResponseCode() == 200 || !resp.Field("user").IsNull() || resp.ContainsText("email"),
			"User detail present", fmt.Sprintf("Expected user detail, got %s", resp.Text()))
	})

	t.Run("API 13 - PUT /api/updateAccount updates user", func(t *T) {
		form := t.User().RegistrationForm()
		form.Set("company", "BTEC_UPDATED")
		resp := t.PutForm(updateAccountPath, form)
		t.Check(statusIn(resp, 200, 201),
			fmt.Sprintf("HTTP %d", resp.StatusCode), fmt.Sprintf("Expected 200, got %d", resp.StatusCode))
		t.Check(resp.ResponseCode() == 200 || resp.ContainsText("updated"),
			"User updated", fmt.Sprintf("Expected updated, got %s", resp.Text()))
	})

	t.Run("API 12 - DELETE /api/deleteAccount deletes user (cleanup)", func(t *T) {
		resp := t.DeleteForm(deleteAccountPath, t.User().Credentials())
		t.Check(resp.StatusCode == 200,
			"200 OK", fmt.Sprintf("Expected 200, got %d", resp.StatusCode))
		t.Check(resp.ResponseCode() == 200 || resp.ContainsText("deleted"),
			"Account deleted", fmt.Sprintf("Expected deleted, got %s", resp.Text()))
	})
}
