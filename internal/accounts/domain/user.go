package domain

import "time"

type User struct {
	ID           string
	Email        string // stored lowercased
	Username     string
	FirstName    string // optional
	LastName     string // optional
	PhoneNumber  string
	PasswordHash string // bcrypt or argon2 encoded
	RegisteredOn time.Time
}
