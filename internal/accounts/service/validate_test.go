package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validInput() RegistrationInput {
	return RegistrationInput{
		Email:           "a@x.io",
		Username:        "ada",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		PhoneNumber:     "0123456789",
	}
}

func TestNormalize(t *testing.T) {
	in := RegistrationInput{
		Email:           "  \tAda@Example.COM ",
		Username:        "  ada ",
		Password:        "  pw  ",
		ConfirmPassword: "  pw  ",
		PhoneNumber:     " 0123456789",
	}.Normalize()

	require.Equal(t, "ada@example.com ", in.Email)
	require.Equal(t, "ada ", in.Username)
	require.Equal(t, "  pw  ", in.Password, "password is taken verbatim")
	require.Equal(t, "pw  ", in.ConfirmPassword)
	require.Equal(t, "0123456789", in.PhoneNumber)
}

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RegistrationInput)
		want   string
	}{
		{"empty email", func(in *RegistrationInput) { in.Email = "" }, msgRequired},
		{"empty password", func(in *RegistrationInput) { in.Password = "" }, msgRequired},
		{"empty phone", func(in *RegistrationInput) { in.PhoneNumber = "" }, msgRequired},
		{"empty username", func(in *RegistrationInput) { in.Username = "" }, msgRequired},
		{"required beats short password", func(in *RegistrationInput) {
			in.Username = ""
			in.Password = "abc"
		}, msgRequired},
		{"short password", func(in *RegistrationInput) {
			in.Password = "abc"
			in.ConfirmPassword = "abc"
		}, msgPasswordTooShort},
		{"short password beats letters in phone", func(in *RegistrationInput) {
			in.Password = "abc"
			in.PhoneNumber = "abc"
		}, msgPasswordTooShort},
		{"letters in phone", func(in *RegistrationInput) { in.PhoneNumber = "0123abc89" }, msgPhoneNotNumeric},
		{"letters beat short phone", func(in *RegistrationInput) { in.PhoneNumber = "12a" }, msgPhoneNotNumeric},
		{"short phone", func(in *RegistrationInput) { in.PhoneNumber = "1234567" }, msgPhoneTooShort},
		{"short username", func(in *RegistrationInput) { in.Username = "a" }, msgUsernameTooShort},
		{"short username beats bad email", func(in *RegistrationInput) {
			in.Username = "a"
			in.Email = "example"
		}, msgUsernameTooShort},
		{"bad email", func(in *RegistrationInput) { in.Email = "example" }, msgInvalidEmail},
		{"bad email beats mismatch", func(in *RegistrationInput) {
			in.Email = "example"
			in.ConfirmPassword = "other1"
		}, msgInvalidEmail},
		{"mismatch", func(in *RegistrationInput) { in.ConfirmPassword = "secret2" }, msgPasswordMismatch},
		{"missing confirmation", func(in *RegistrationInput) { in.ConfirmPassword = "" }, msgPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.modify(&in)

			err := in.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.want, verr.Message)
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	in := validInput()
	in.Password = "123456"
	in.ConfirmPassword = "123456"
	in.PhoneNumber = "12345678"
	in.Username = "ab"
	require.NoError(t, in.Validate())

	// Lengths are counted in characters, not bytes.
	in.Password = "ééééé"
	in.ConfirmPassword = "ééééé"
	require.Error(t, in.Validate())
}

func TestValidEmail(t *testing.T) {
	for _, s := range []string{"a@x.io", "first.last+tag@example.co.uk", "user@localhost"} {
		require.True(t, validEmail(s), s)
	}
	for _, s := range []string{"example", "@x.io", "a@", "Ada <a@x.io>", "a@x.io trailing", "a@@x.io"} {
		require.False(t, validEmail(s), s)
	}
}
