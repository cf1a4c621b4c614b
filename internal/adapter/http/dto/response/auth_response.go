package response

import (
	"time"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase"
)

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	CenterID string `json:"center_id,omitempty"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Role:     string(u.Role),
		CenterID: u.CenterID.String(),
	}
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func FromLogin(out usecase.LoginOutput) LoginResponse {
	return LoginResponse{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		User:      FromUser(out.User),
	}
}
