package response

import (
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func FromUserView(v *readmodel.UserView) *UserResponse {
	var res UserResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromUserViews(vs []*readmodel.UserView) []*UserResponse {
	res := make([]*UserResponse, len(vs))
	for i, v := range vs {
		res[i] = FromUserView(v)
	}
	return res
}
