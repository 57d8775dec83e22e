package shared

import (
	"time"

	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/domain/vendor"

	"github.com/google/uuid"
)

type VendorSnapshot struct {
	ID          uuid.UUID
	PublicID    string
	OwnerUserID uuid.UUID
	Name        string
	Status      vendor.Status
}

type UserSnapshot struct {
	ID    uuid.UUID
	Email string
	Role  user.Role
}

type StatusApplicationSnapshot struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	RequestType statusapp.RequestType
	Decision    statusapp.Decision
	CreatedAt   time.Time
}

type RoleApplicationSnapshot struct {
	ID              uuid.UUID
	ApplicantUserID uuid.UUID
	Status          roleapp.Status
	UpdatedAt       time.Time
}
