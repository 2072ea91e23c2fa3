package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

type LoginService struct {
	Store  store.Store
	Hasher cryptox.Hasher
	Tokens TokenIssuer
}

// Login checks email and password and returns a fresh access token. The
// email has leading whitespace trimmed but its case is kept, so it must
// match the stored (lowercased) address exactly.
func (s *LoginService) Login(ctx context.Context, email, password string) (string, error) {
	log := slogx.FromContext(ctx)

	email = trimLeft(email)
	if email == "" || password == "" {
		return "", invalid(msgRequired)
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("login failed: unknown email")
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if !s.Hasher.Verify(user.PasswordHash, password) {
		log.Info("login failed: password mismatch", slog.String("user_id", user.ID))
		return "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return token, nil
}
