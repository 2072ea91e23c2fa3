package postgres

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	userInsert = `INSERT INTO users (
		id, email, username, firstname, lastname, password_hash, phone_number, registered_on
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	userSelect             = `SELECT id, email, username, firstname, lastname, password_hash, phone_number, registered_on FROM users`
	userSelectByEmail      = userSelect + ` WHERE email = $1 LIMIT 1`
	userSelectByEmailPhone = userSelect + ` WHERE email = $1 AND phone_number = $2 LIMIT 1`
)

type usersRepo struct {
	pool *pgxpool.Pool
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.pool.Exec(ctx, userInsert,
		u.ID,
		u.Email,
		u.Username,
		nullable(u.FirstName),
		nullable(u.LastName),
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
	return scanUser(r.pool.QueryRow(ctx, userSelectByEmail, email))
}

func (r *usersRepo) GetUserByEmailAndPhone(ctx context.Context, email, phone string) (domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, userSelectByEmailPhone, email, phone))
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u         domain.User
		firstName *string
		lastName  *string
	)
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&firstName,
		&lastName,
		&u.PasswordHash,
		&u.PhoneNumber,
		&u.RegisteredOn,
	); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	if firstName != nil {
		u.FirstName = *firstName
	}
	if lastName != nil {
		u.LastName = *lastName
	}
	return u, nil
}
