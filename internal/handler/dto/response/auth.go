package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        *queries.UserView `json:"user"`
}

type RegisterResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
