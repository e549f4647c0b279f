package apitests

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// User holds the registration fields for the account created during a run.
// The email and password embed a random identifier so that a run never
// collides with accounts left on the shared remote service by earlier runs.
type User struct {
	Name         string
	Email        string
	Password     string
	Title        string
	BirthDate    string
	BirthMonth   string
	BirthYear    string
	FirstName    string
	LastName     string
	Company      string
	Address1     string
	Address2     string
	Country      string
	Zipcode      string
	State        string
	City         string
	MobileNumber string
}

// NewUniqueUser generates the account payload for one run.
func NewUniqueUser() *User {
	uniq := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return &User{
		Name:         "Fazli Test",
		Email:        fmt.Sprintf("fazli_test_%s@example.com", uniq),
		Password:     fmt.Sprintf("TestPwd_%s!", uniq),
		Title:        "Mr",
		BirthDate:    "12",
		BirthMonth:   "01",
		BirthYear:    "2005",
		FirstName:    "Fazli",
		LastName:     "Usmonov",
		Company:      "BTEC",
		Address1:     "Tashkent",
		Address2:     "N/A",
		Country:      "Uzbekistan",
		Zipcode:      "100000",
		State:        "Tashkent",
		City:         "Tashkent",
		MobileNumber: "+998900000000",
	}
}

// RegistrationForm returns the full createAccount/updateAccount form body.
func (u *User) RegistrationForm() url.Values {
	return url.Values{
		"name":          {u.Name},
		"email":         {u.Email},
		"password":      {u.Password},
		"title":         {u.Title},
		"birth_date":    {u.BirthDate},
		"birth_month":   {u.BirthMonth},
		"birth_year":    {u.BirthYear},
		"firstname":     {u.FirstName},
		"lastname":      {u.LastName},
		"company":       {u.Company},
		"address1":      {u.Address1},
		"address2":      {u.Address2},
		"country":       {u.Country},
		"zipcode":       {u.Zipcode},
		"state":         {u.State},
		"city":          {u.City},
		"mobile_number": {u.MobileNumber},
	}
}

// Credentials returns the verifyLogin/deleteAccount form body.
func (u *User) Credentials() url.Values {
	return url.Values{
		"email":    {u.Email},
		"password": {u.Password},
	}
}
