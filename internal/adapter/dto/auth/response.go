package auth

// UserResponse represents user information in responses
type UserResponse struct {
	Username string `json:"username"`
	ID       uint   `json:"id"`
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
