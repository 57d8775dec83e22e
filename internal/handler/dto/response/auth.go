package response

import (
	"github.com/google/uuid"

	"marketplace-moderation/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken  string                      `json:"access_token"`
	RefreshToken string                      `json:"refresh_token"`
	User         *queries.AuthorizedUserView `json:"user,omitempty"`
}

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
