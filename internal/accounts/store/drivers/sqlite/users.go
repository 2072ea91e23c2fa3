package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const userColumns = `id, email, username, firstname, lastname, password_hash, phone_number, registered_on`

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		u.Username,
		mapStringNull(u.FirstName),
		mapStringNull(u.LastName),
		u.PasswordHash,
		u.PhoneNumber,
		u.RegisteredOn.UTC(),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
	}
	return err
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? LIMIT 1`, email)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmailAndPhone(ctx context.Context, email, phone string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? AND phone_number = ? LIMIT 1`, email, phone)
	return scanUser(row)
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		firstName sql.NullString
		lastName  sql.NullString
	)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&firstName,
		&lastName,
		&u.PasswordHash,
		&u.PhoneNumber,
		&u.RegisteredOn,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.FirstName = mapNullString(firstName)
	u.LastName = mapNullString(lastName)
	return u, nil
}

func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
