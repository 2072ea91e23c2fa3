package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

type LoginHandler struct {
	LoginService *service.LoginService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange email and password for an access token valid for 30 minutes
//	@Description	The email must match the registered (lowercased) address exactly
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email		formData	string						true	"Email address"
//	@Param			password	formData	string						true	"Password"
//	@Success		200			{object}	accountsdk.LoginResponse	"message, access_token"
//	@Failure		400			{object}	accountsdk.MessageResponse	"missing field"
//	@Failure		401			{object}	accountsdk.MessageResponse	"invalid credentials"
//	@Failure		429			{object}	accountsdk.MessageResponse	"rate limited"
//	@Failure		500			{object}	accountsdk.MessageResponse	"internal error"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidForm)
		return
	}

	token, err := h.LoginService.Login(ctx, r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.WriteMessage(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteMessage(w, http.StatusUnauthorized, msgBadCredentials)
		default:
			log.Error("login failed", slog.Any("error", err))
			httpx.WriteMessage(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.LoginResponse{
		Message:     msgLoggedIn,
		AccessToken: token,
	})
}
