package presenter

import (
	authDTO "github.com/johnquangdev/meeting-analyzer/internal/adapter/dto/auth"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}
	return &authDTO.UserResponse{
		Username: u.Username,
		ID:       u.ID,
	}
}

// ToTokenResponse converts the usecase login result to TokenResponse DTO
func ToTokenResponse(r *auth.LoginResponse) *authDTO.TokenResponse {
	if r == nil {
		return nil
	}
	return &authDTO.TokenResponse{
		AccessToken: r.AccessToken,
		TokenType:   r.TokenType,
	}
}
