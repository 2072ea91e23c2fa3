package service

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minPasswordLength = 6
	minPhoneLength    = 8
	minUsernameLength = 2
)

const (
	msgRequired         = "This field is required."
	msgPasswordTooShort = "Password should be greater than 6 characters"
	msgPhoneNotNumeric  = "Phone numbers must all contain numbers"
	msgPhoneTooShort    = "Phone number should be greater than 8 characters"
	msgUsernameTooShort = "Username should be greater than 2 characters"
	msgInvalidEmail     = "Invalid Email Inputed"
	msgPasswordMismatch = "Oops! Sorry. The passwords you inputted are not the same."
)

// RegistrationInput is the raw signup form.
type RegistrationInput struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
	PhoneNumber     string
	FirstName       string
	LastName        string
}

// Normalize trims leading whitespace from email, username, phone number and
// the password confirmation, and lowercases the email. The password itself
// is left untouched.
func (in RegistrationInput) Normalize() RegistrationInput {
	in.Email = strings.ToLower(trimLeft(in.Email))
	in.Username = trimLeft(in.Username)
	in.PhoneNumber = trimLeft(in.PhoneNumber)
	in.ConfirmPassword = trimLeft(in.ConfirmPassword)
	return in
}

// Validate runs the field checks in order and returns the first failure as
// a *ValidationError. Lengths are counted in characters.
func (in RegistrationInput) Validate() error {
	switch {
	case in.Email == "", in.Password == "", in.PhoneNumber == "", in.Username == "":
		return invalid(msgRequired)
	case utf8.RuneCountInString(in.Password) < minPasswordLength:
		return invalid(msgPasswordTooShort)
	case !allDigits(in.PhoneNumber):
		return invalid(msgPhoneNotNumeric)
	case utf8.RuneCountInString(in.PhoneNumber) < minPhoneLength:
		return invalid(msgPhoneTooShort)
	case utf8.RuneCountInString(in.Username) < minUsernameLength:
		return invalid(msgUsernameTooShort)
	case !validEmail(in.Email):
		return invalid(msgInvalidEmail)
	case in.Password != in.ConfirmPassword:
		return invalid(msgPasswordMismatch)
	}
	return nil
}

func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// validEmail accepts a bare addr-spec. Display names, angle brackets and
// trailing text are rejected.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && at < len(s)-1
}
