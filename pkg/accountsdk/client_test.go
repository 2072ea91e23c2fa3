package accountsdk_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/stretchr/testify/require"
)

func TestSignupSendsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/signup", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "a@x.io", r.PostForm.Get("email"))
		require.Equal(t, "secret1", r.PostForm.Get("confirm_password"))
		require.Equal(t, "Ada", r.PostForm.Get("firstname"))
		_, hasLast := r.PostForm["lastname"]
		require.False(t, hasLast)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"email":"a@x.io","password":"$2a$10$x","username":"ada","access_token":"tok","message":"You registered successfully."}`))
	}))
	defer srv.Close()

	client := accountsdk.NewSDKClient(srv.URL + "/")
	client.PathPrefix = "/api"

	out, err := client.Signup(context.Background(), accountsdk.SignupRequest{
		Email:           "a@x.io",
		Username:        "ada",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		PhoneNumber:     "0123456789",
		FirstName:       "Ada",
	})
	require.NoError(t, err)
	require.Equal(t, "tok", out.AccessToken)
	require.Equal(t, "You registered successfully.", out.Message)
}

func TestLoginErrorBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials, Please try again."}`))
	}))
	defer srv.Close()

	_, err := accountsdk.NewSDKClient(srv.URL).Login(context.Background(), "a@x.io", "nope")
	require.Error(t, err)

	var apiErr *accountsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Invalid credentials, Please try again.", apiErr.Message)
}

func TestNonJSONErrorBodyIsKept(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := accountsdk.NewSDKClient(srv.URL).GetLiveness(context.Background())

	var apiErr *accountsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "bad gateway", apiErr.Message)
}
