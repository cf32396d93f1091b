package auth

// LoginRequest is the OAuth2-style password form posted to /token
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
