package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fixture struct {
	register *service.RegistrationService
	login    *service.LoginService
	verifier *jwtx.HS256Verifier
	clock    *time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	signer, err := jwtx.NewHS256Signer(testSecret, 0, now)
	require.NoError(t, err)
	verifier, err := jwtx.NewHS256Verifier(testSecret, now)
	require.NoError(t, err)

	hasher := cryptox.BcryptHasher{Cost: 4}

	return &fixture{
		register: &service.RegistrationService{Store: st, Hasher: hasher, Tokens: signer, Now: now},
		login:    &service.LoginService{Store: st, Hasher: hasher, Tokens: signer},
		verifier: verifier,
		clock:    &clock,
	}
}

func signupInput() service.RegistrationInput {
	return service.RegistrationInput{
		Email:           "a@x.io",
		Username:        "ada",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		PhoneNumber:     "0123456789",
	}
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := signupInput()
	in.Email = "  A@X.io"
	in.FirstName = "Ada"

	reg, err := f.register.Register(ctx, in)
	require.NoError(t, err)
	require.Equal(t, "a@x.io", reg.User.Email)
	require.Equal(t, "ada", reg.User.Username)
	require.Equal(t, "Ada", reg.User.FirstName)
	require.NotEqual(t, "secret1", reg.User.PasswordHash)
	require.True(t, cryptox.BcryptHasher{}.Verify(reg.User.PasswordHash, "secret1"))
	require.Len(t, reg.User.ID, 26)

	claims, err := f.verifier.Verify(reg.AccessToken)
	require.NoError(t, err)
	require.Equal(t, reg.User.ID, claims.Subject)
}

func TestRegisterValidationError(t *testing.T) {
	f := newFixture(t)

	in := signupInput()
	in.Password = "abc"

	_, err := f.register.Register(context.Background(), in)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Password should be greater than 6 characters", verr.Message)
}

func TestRegisterDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.register.Register(ctx, signupInput())
	require.NoError(t, err)

	t.Run("same email and phone", func(t *testing.T) {
		in := signupInput()
		in.Username = "other"
		_, err := f.register.Register(ctx, in)
		require.ErrorIs(t, err, service.ErrEmailOrPhoneTaken)
	})

	t.Run("same username", func(t *testing.T) {
		in := signupInput()
		in.Email = "b@x.io"
		in.PhoneNumber = "0999999999"
		_, err := f.register.Register(ctx, in)
		require.ErrorIs(t, err, service.ErrUsernameTaken)
	})

	t.Run("same email only", func(t *testing.T) {
		in := signupInput()
		in.Username = "other"
		in.PhoneNumber = "0999999999"
		_, err := f.register.Register(ctx, in)
		require.ErrorIs(t, err, service.ErrUsernameTaken)
	})
}

type failingIssuer struct{}

func (failingIssuer) Issue(string) (string, error) { return "", errors.New("signer offline") }

func TestRegisterTokenFailureIsInternal(t *testing.T) {
	f := newFixture(t)
	f.register.Tokens = failingIssuer{}

	_, err := f.register.Register(context.Background(), signupInput())
	require.Error(t, err)
	require.Contains(t, err.Error(), "signer offline")

	var verr *service.ValidationError
	require.False(t, errors.As(err, &verr))
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.register.Register(ctx, signupInput())
	require.NoError(t, err)

	*f.clock = f.clock.Add(2 * time.Second)

	token, err := f.login.Login(ctx, "  a@x.io", "secret1")
	require.NoError(t, err)
	require.NotEqual(t, reg.AccessToken, token)

	loginClaims, err := f.verifier.Verify(token)
	require.NoError(t, err)
	regClaims, err := f.verifier.Verify(reg.AccessToken)
	require.NoError(t, err)
	require.Equal(t, regClaims.Subject, loginClaims.Subject)
	require.True(t, loginClaims.IssuedAt.After(regClaims.IssuedAt.Time))
}

func TestLoginFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.register.Register(ctx, signupInput())
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.login.Login(ctx, "a@x.io", "wrong-password")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.login.Login(ctx, "nobody@x.io", "secret1")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("email case is kept", func(t *testing.T) {
		_, err := f.login.Login(ctx, "A@X.IO", "secret1")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	for _, tc := range []struct{ email, password string }{{"", "secret1"}, {"a@x.io", ""}, {"   ", "secret1"}} {
		_, err := f.login.Login(ctx, tc.email, tc.password)
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "This field is required.", verr.Message)
	}
}
