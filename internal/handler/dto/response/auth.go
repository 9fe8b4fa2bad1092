package response

import (
	"parkhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.Token,
		UserID:      r.UserID,
		Email:       r.Email,
		Role:        r.Role,
	}
}
