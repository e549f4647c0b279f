package apitests

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var emailRegex = regexp.MustCompile(`^fazli_test_[0-9a-f]{8}@example\.com$`)
var passwordRegex = regexp.MustCompile(`^TestPwd_[0-9a-f]{8}!$`)

func TestNewUniqueUserGeneratesDistinctIdentities(t *testing.T) {
	u1 := NewUniqueUser()
	u2 := NewUniqueUser()

	assert.Regexp(t, emailRegex, u1.Email)
	assert.Regexp(t, passwordRegex, u1.Password)
	assert.NotEqual(t, u1.Email, u2.Email)
	assert.NotEqual(t, u1.Password, u2.Password)
}

func TestRegistrationFormContainsAllAccountFields(t *testing.T) {
	u := NewUniqueUser()
	form := u.RegistrationForm()

	for _, key := range []string{
		"name", "email", "password", "title", "birth_date", "birth_month",
		"birth_year", "firstname", "lastname", "company", "address1",
		"address2", "country", "zipcode", "state", "city", "mobile_number",
	} {
		assert.NotEmpty(t, form.Get(key), "missing form field %q", key)
	}
	assert.Equal(t, u.Email, form.Get("email"))
	assert.Equal(t, u.Password, form.Get("password"))
	assert.Equal(t, "BTEC", form.Get("company"))
}

func TestCredentialsFormHoldsOnlyEmailAndPassword(t *testing.T) {
	u := NewUniqueUser()
	form := u.Credentials()

	assert.Len(t, form, 2)
	assert.Equal(t, u.Email, form.Get("email"))
	assert.Equal(t, u.Password, form.Get("password"))
}
