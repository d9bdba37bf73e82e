package validation

import "github.com/nyaruka/phonenumbers"

// regionAgnostic makes the parser accept any country's numbers as long as
// they carry an international prefix.
const regionAgnostic = "ZZ"

// PhoneValidator validates phone numbers by parsing them in a country-agnostic
// mode. It is stateless; construct one at process start and share it.
type PhoneValidator struct{}

// NewPhoneValidator creates a PhoneValidator.
func NewPhoneValidator() *PhoneValidator {
	return &PhoneValidator{}
}

// Valid reports whether the number parses as a valid international phone
// number. Empty numbers are always considered valid; phone is an optional
// field.
func (v *PhoneValidator) Valid(number string) bool {
	if number == "" {
		return true
	}
	parsed, err := phonenumbers.Parse(number, regionAgnostic)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(parsed)
}
