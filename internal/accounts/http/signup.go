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

type SignupHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Signup Endpoint
//	@Description	Register a new account and receive an access token valid for 30 minutes
//	@Description	Email is lowercased and leading whitespace is trimmed from email, username, phone_number and confirm_password
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email				formData	string						true	"Email address"
//	@Param			username			formData	string						true	"Username, at least 2 characters"
//	@Param			password			formData	string						true	"Password, at least 6 characters"
//	@Param			confirm_password	formData	string						true	"Must equal password"
//	@Param			phone_number		formData	string						true	"Digits only, at least 8"
//	@Param			firstname			formData	string						false	"First name"
//	@Param			lastname			formData	string						false	"Last name"
//	@Success		201					{object}	accountsdk.SignupResponse	"email, password (hash), username, access_token, message"
//	@Failure		400					{object}	accountsdk.MessageResponse	"validation failure"
//	@Failure		409					{object}	accountsdk.MessageResponse	"email, phone number or username already registered"
//	@Failure		429					{object}	accountsdk.MessageResponse	"rate limited"
//	@Failure		500					{object}	accountsdk.MessageResponse	"internal error"
//	@Router			/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidForm)
		return
	}

	reg, err := h.RegistrationService.Register(ctx, service.RegistrationInput{
		Email:           r.FormValue("email"),
		Username:        r.FormValue("username"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
		PhoneNumber:     r.FormValue("phone_number"),
		FirstName:       r.FormValue("firstname"),
		LastName:        r.FormValue("lastname"),
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.WriteMessage(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, service.ErrEmailOrPhoneTaken):
			httpx.WriteMessage(w, http.StatusConflict, msgEmailPhoneTaken)
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteMessage(w, http.StatusConflict, msgUsernameTaken)
		default:
			log.Error("signup failed", slog.Any("error", err))
			httpx.WriteMessage(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.SignupResponse{
		Email:       reg.User.Email,
		Password:    reg.User.PasswordHash,
		Username:    reg.User.Username,
		AccessToken: reg.AccessToken,
		Message:     msgRegistered,
	})
}
