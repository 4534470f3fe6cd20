// Package validator checks the structure of login and registration input.
// All functions are pure: every applicable rule is evaluated and every
// violation is reported, keyed by field name.
package validator

import (
	"regexp"
	"strings"
)

// MaxPasswordBytes is the longest password bcrypt will hash.
const MaxPasswordBytes = 72

// Field keys used in the returned error maps.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

var emailRe = regexp.MustCompile(`^([0-9a-zA-Z]([-.\w]*[0-9a-zA-Z])*@([0-9a-zA-Z][-\w]*[0-9a-zA-Z]\.)+[a-zA-Z]{2,9})$`)

// Errors maps a field name to a human readable message.
type Errors map[string]string

// ValidateRegisterInput checks registration fields.
func ValidateRegisterInput(username, email, password, confirmPassword string) (Errors, bool) {
	errs := Errors{}

	if strings.TrimSpace(username) == "" {
		errs[FieldUsername] = "Username must not be empty"
	}

	if strings.TrimSpace(email) == "" {
		errs[FieldEmail] = "Email must not be empty"
	} else if !emailRe.MatchString(strings.TrimSpace(email)) {
		errs[FieldEmail] = "Email must be a valid email address"
	}

	if strings.TrimSpace(password) == "" {
		errs[FieldPassword] = "Password must not be empty"
	} else {
		if len(password) > MaxPasswordBytes {
			errs[FieldPassword] = "Password must be at most 72 bytes long"
		}
		if password != confirmPassword {
			errs[FieldConfirmPassword] = "Passwords must match"
		}
	}

	return errs, len(errs) == 0
}

// ValidateLoginInput checks login fields.
func ValidateLoginInput(username, password string) (Errors, bool) {
	errs := Errors{}

	if strings.TrimSpace(username) == "" {
		errs[FieldUsername] = "Username must not be empty"
	}
	if strings.TrimSpace(password) == "" {
		errs[FieldPassword] = "Password must not be empty"
	}

	return errs, len(errs) == 0
}
