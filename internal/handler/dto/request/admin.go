package request

import "parkhub/internal/usecase/commands"

type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

func (r UpdateProfileRequest) ToParams() commands.UpdateProfileParams {
	return commands.UpdateProfileParams{
		Name:  r.Name,
		Email: r.Email,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
