package http

// Client facing messages. Their wording is part of the API.
const (
	msgRegistered      = "You registered successfully."
	msgLoggedIn        = "Welcome! You are now logged in."
	msgEmailPhoneTaken = "Email or phone number is already been used by an existing user. Please try again."
	msgUsernameTaken   = "username is already been used by another user."
	msgBadCredentials  = "Invalid credentials, Please try again."
	msgInvalidForm     = "Invalid form data"
)
