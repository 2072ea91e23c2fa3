package app

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	dir := t.TempDir()
	return Config{
		Secret:              "app-test-secret",
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        filepath.Join(dir, "accounts.db"),
		PasswordHasher:      HasherArgon2,
		PepperFile:          filepath.Join(dir, "pepper"),
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Secret = ""

	_, err := New(cfg)
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestApplicationServesSignup(t *testing.T) {
	cfg := testConfig(t)

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	require.FileExists(t, cfg.PepperFile)

	form := url.Values{
		"email":            {"a@x.io"},
		"username":         {"ada"},
		"password":         {"secret1"},
		"confirm_password": {"secret1"},
		"phone_number":     {"0123456789"},
	}
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), `"password":"$argon2id$`)

	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenLifetimeIsFixed(t *testing.T) {
	t.Setenv("TOKEN_TTL", "5m")

	app, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	require.Equal(t, 30*time.Minute, app.signer.TTL())
}

func TestTrustProxyHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")

	for trust, want := range map[bool]string{false: "10.0.0.1", true: "203.0.113.7"} {
		cfg := testConfig(t)
		cfg.TrustProxyHeaders = trust

		app, err := New(cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = app.db.Close() })

		require.Equal(t, want, app.router.ClientIP(req))
	}
}
