package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// TokenIssuer signs an access token for a user id.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// Registration is a newly created account and its first access token.
type Registration struct {
	User        domain.User
	AccessToken string
}

type RegistrationService struct {
	Store  store.Store
	Hasher cryptox.Hasher
	Tokens TokenIssuer

	// Now defaults to time.Now.
	Now func() time.Time
}

// Register validates the signup form, creates the user and issues a token.
//
// A user already holding both the email and the phone number yields
// ErrEmailOrPhoneTaken. Any other unique collision, caught by the database
// at insert time, yields ErrUsernameTaken.
func (s *RegistrationService) Register(ctx context.Context, in RegistrationInput) (Registration, error) {
	log := slogx.FromContext(ctx)

	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return Registration{}, err
	}

	_, err := s.Store.Users().GetUserByEmailAndPhone(ctx, in.Email, in.PhoneNumber)
	switch {
	case err == nil:
		log.Info("signup rejected: email and phone already registered")
		return Registration{}, ErrEmailOrPhoneTaken
	case !errors.Is(err, store.ErrNotFound):
		return Registration{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return Registration{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        in.Email,
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: hash,
		RegisteredOn: s.now(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("signup rejected: unique constraint", slog.Any("error", err))
			return Registration{}, ErrUsernameTaken
		}
		return Registration{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return Registration{}, fmt.Errorf("issue token: %w", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID))

	return Registration{User: user, AccessToken: token}, nil
}

func (s *RegistrationService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
