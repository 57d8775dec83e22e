package commands

import (
	"context"

	"marketplace-moderation/internal/domain/actor"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/domain/vendor"

	"github.com/google/uuid"
)

// VendorWriteService propagates an approved status decision to the vendor
// listing. Failures after a committed decision are retryable; the decision
// itself is never rolled back.
type VendorWriteService interface {
	ApplyStatus(ctx context.Context, vendorID uuid.UUID, status vendor.Status, act actor.Actor) error
}

// UserDirectory grants the vendor role once a role application is approved.
type UserDirectory interface {
	UpdateRole(ctx context.Context, userID uuid.UUID, role user.Role) error
}
