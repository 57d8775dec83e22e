package repository

import (
	"context"
	"time"

	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/infra/db"

	"github.com/google/uuid"
)

type VendorRepository struct{}

func NewVendorRepository() *VendorRepository {
	return &VendorRepository{}
}

func (r *VendorRepository) Create(ctx context.Context, dbtx db.DBTX, listing *vendor.Listing) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO vendors (id, public_id, owner_user_id, name, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		listing.ID(), listing.PublicID(), listing.OwnerUserID(), listing.Name(),
		listing.Description(), listing.Status().String(), listing.CreatedAt(), listing.UpdatedAt(),
	)
	if err != nil {
		return wrapPgErr("failed to create vendor listing", err)
	}
	return nil
}

func (r *VendorRepository) Update(ctx context.Context, dbtx db.DBTX, listing *vendor.Listing) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE vendors
		SET name = $2, description = $3, status = $4, updated_at = $5
		WHERE id = $1`,
		listing.ID(), listing.Name(), listing.Description(), listing.Status().String(), listing.UpdatedAt(),
	)
	if err != nil {
		return wrapPgErr("failed to update vendor listing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vendor listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VendorRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*vendor.Listing, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, public_id, owner_user_id, name, description, status, created_at, updated_at
		FROM vendors
		WHERE id = $1
		FOR UPDATE`, id)

	var (
		listingID, ownerUserID         uuid.UUID
		publicID, name, description, status string
		createdAt, updatedAt           time.Time
	)
	if err := row.Scan(&listingID, &publicID, &ownerUserID, &name, &description, &status, &createdAt, &updatedAt); err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vendor listing", err)
	}

	return vendor.Reconstruct(listingID, publicID, ownerUserID, name, description,
		vendor.Status(status), createdAt, updatedAt), nil
}
