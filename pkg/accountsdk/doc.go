/*
Package accountsdk is a client for the accounts service.

It covers every public endpoint: signup, login and the health probes.

	client := accountsdk.NewSDKClient("http://localhost:8080")

	reg, err := client.Signup(ctx, accountsdk.SignupRequest{
		Email:           "ada@example.com",
		Username:        "ada",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		PhoneNumber:     "0123456789",
	})

	login, err := client.Login(ctx, "ada@example.com", "secret1")

Non-success responses are returned as *APIError carrying the status code and
the server's message:

	var apiErr *accountsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		fmt.Println(apiErr.Message)
	}
*/
package accountsdk
