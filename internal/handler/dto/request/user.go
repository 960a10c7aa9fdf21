package request

import "shareit/internal/usecase/commands"

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"required,email,max=255"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
}

func (r *CreateUserRequest) ToInput() commands.CreateUserInput {
	return commands.CreateUserInput{Name: r.Name, Email: r.Email}
}

func (r *UpdateUserRequest) ToInput() commands.UpdateUserInput {
	return commands.UpdateUserInput{Name: r.Name, Email: r.Email}
}
