package accountsdk

// SignupRequest is the signup form.
type SignupRequest struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
	PhoneNumber     string
	FirstName       string
	LastName        string
}

// SignupResponse is returned with 201 Created. Password holds the stored
// hash, never the plaintext.
type SignupResponse struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

// LoginResponse is returned with 200 OK.
type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// MessageResponse is the body of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by /livez and /readyz. Checks is only set on
// /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports each dependency as "ok" or "error: ...".
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
