package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this and expose sub-repositories per table.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Any unique constraint violation is reported as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail is used during login. The match is exact.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByEmailAndPhone is the signup duplicate pre-check; both columns
	// must match the same row.
	GetUserByEmailAndPhone(ctx context.Context, email, phone string) (domain.User, error)
}
