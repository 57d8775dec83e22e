//go:build unit || e2e

package builder

import (
	"time"

	domvendor "marketplace-moderation/internal/domain/vendor"
	reqdto "marketplace-moderation/internal/handler/dto/request"
	"marketplace-moderation/internal/usecase/queries"

	"github.com/google/uuid"
)

type VendorBuilder struct {
	ID          uuid.UUID
	PublicID    string
	OwnerUserID uuid.UUID
	Name        string
	Description string
	Status      domvendor.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewVendorBuilder() *VendorBuilder {
	now := time.Now()
	return &VendorBuilder{
		ID:          uuid.New(),
		PublicID:    "vnd-test0001",
		OwnerUserID: uuid.New(),
		Name:        "Test Vendor",
		Description: "A test vendor listing",
		Status:      domvendor.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (v *VendorBuilder) With(mutate func(*VendorBuilder)) *VendorBuilder {
	mutate(v)
	return v
}

// Build methods
func (v *VendorBuilder) BuildDomain() *domvendor.Listing {
	return domvendor.Reconstruct(
		v.ID,
		v.PublicID,
		v.OwnerUserID,
		v.Name,
		v.Description,
		v.Status,
		v.CreatedAt,
		v.UpdatedAt,
	)
}

func (v *VendorBuilder) BuildView() *queries.VendorView {
	return &queries.VendorView{
		ID:          v.ID,
		PublicID:    v.PublicID,
		OwnerUserID: v.OwnerUserID,
		Name:        v.Name,
		Description: v.Description,
		Status:      v.Status.String(),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (v *VendorBuilder) BuildCreateRequestDTO() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Name:        v.Name,
		Description: v.Description,
	}
}

func (v *VendorBuilder) BuildUpdateRequestDTO() reqdto.UpdateListingContentRequest {
	return reqdto.UpdateListingContentRequest{
		Name:        v.Name,
		Description: v.Description,
	}
}

// Fluent builder methods
func (v *VendorBuilder) WithID(id uuid.UUID) *VendorBuilder {
	v.ID = id
	return v
}

func (v *VendorBuilder) WithPublicID(publicID string) *VendorBuilder {
	v.PublicID = publicID
	return v
}

func (v *VendorBuilder) WithOwner(ownerUserID uuid.UUID) *VendorBuilder {
	v.OwnerUserID = ownerUserID
	return v
}

func (v *VendorBuilder) WithName(name string) *VendorBuilder {
	v.Name = name
	return v
}

func (v *VendorBuilder) WithDescription(description string) *VendorBuilder {
	v.Description = description
	return v
}

func (v *VendorBuilder) WithStatus(status domvendor.Status) *VendorBuilder {
	v.Status = status
	return v
}

func (v *VendorBuilder) AsActive() *VendorBuilder {
	v.Status = domvendor.StatusActive
	return v
}

func (v *VendorBuilder) AsHidden() *VendorBuilder {
	v.Status = domvendor.StatusHidden
	return v
}

func (v *VendorBuilder) AsArchived() *VendorBuilder {
	v.Status = domvendor.StatusArchived
	return v
}
