package response

import (
	"github.com/google/uuid"

	"marketplace-moderation/internal/usecase/commands"
)

type CreateListingResponse struct {
	ListingID uuid.UUID `json:"listing_id"`
	PublicID  string    `json:"public_id"`
}

func FromCreateListingResult(r *commands.CreateListingResult) *CreateListingResponse {
	return &CreateListingResponse{
		ListingID: r.ListingID,
		PublicID:  r.PublicID,
	}
}
