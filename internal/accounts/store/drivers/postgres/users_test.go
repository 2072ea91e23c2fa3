package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/postgres"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMigrateURL(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@db:5432/accounts?sslmode=disable":   "pgx5://u:p@db:5432/accounts?sslmode=disable",
		"postgresql://u:p@db:5432/accounts?sslmode=disable": "pgx5://u:p@db:5432/accounts?sslmode=disable",
		"pgx5://u:p@db/accounts":                            "pgx5://u:p@db/accounts",
	}
	for in, want := range tests {
		require.Equal(t, want, postgres.MigrateURL(in), in)
	}
}

// setupPostgres starts a throwaway PostgreSQL container and returns a
// migrated store connected to it.
func setupPostgres(t *testing.T) *postgres.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL container test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "accounts",
				"POSTGRES_PASSWORD": "accounts",
				"POSTGRES_DB":       "accounts",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://accounts:accounts@%s:%s/accounts?sslmode=disable", host, port.Port())
	st, err := postgres.NewStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func testUser(email, username, phone string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Username:     username,
		PhoneNumber:  phone,
		PasswordHash: "$2a$10$hash",
		RegisteredOn: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPostgresUsers(t *testing.T) {
	st := setupPostgres(t)
	ctx := t.Context()

	require.NoError(t, st.ApplyMigrations(), "second run is a no-op")

	u := testUser("a@x.io", "ada", "01234567")
	u.LastName = "Lovelace"
	require.NoError(t, st.Users().CreateUser(ctx, u))

	got, err := st.Users().GetUserByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Empty(t, got.FirstName)
	require.Equal(t, "Lovelace", got.LastName)
	require.True(t, u.RegisteredOn.Equal(got.RegisteredOn))

	_, err = st.Users().GetUserByEmailAndPhone(ctx, "a@x.io", "01234567")
	require.NoError(t, err)

	_, err = st.Users().GetUserByEmailAndPhone(ctx, "a@x.io", "99999999")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = st.Users().CreateUser(ctx, testUser("b@x.io", "ada", "22222222"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	require.NoError(t, st.Ping(ctx))
}
