package accountsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

var formHeaders = map[string]string{"Content-Type": "application/x-www-form-urlencoded"}

// Signup registers a new user.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	data := url.Values{
		"email":            {req.Email},
		"username":         {req.Username},
		"password":         {req.Password},
		"confirm_password": {req.ConfirmPassword},
		"phone_number":     {req.PhoneNumber},
	}
	if req.FirstName != "" {
		data.Set("firstname", req.FirstName)
	}
	if req.LastName != "" {
		data.Set("lastname", req.LastName)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.PathPrefix+"/auth/signup",
		strings.NewReader(data.Encode()), formHeaders)
	if err != nil {
		return nil, err
	}

	var out SignupResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges email and password for an access token.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	data := url.Values{
		"email":    {email},
		"password": {password},
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.PathPrefix+"/auth/login",
		strings.NewReader(data.Encode()), formHeaders)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
