package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/infra/db"
	"marketplace-moderation/internal/usecase/queries"
)

type VendorReadStore struct {
	db db.DBTX
}

func NewVendorReadStore(dbtx db.DBTX) *VendorReadStore {
	return &VendorReadStore{db: dbtx}
}

type vendorRow struct {
	ID          uuid.UUID
	PublicID    string
	OwnerUserID uuid.UUID
	Name        string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *VendorReadStore) FindByPublicID(ctx context.Context, publicID string) (*queries.VendorView, error) {
	return r.find(ctx, "public_id", publicID)
}

func (r *VendorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VendorView, error) {
	return r.find(ctx, "id", id)
}

func (r *VendorReadStore) find(ctx context.Context, column string, key any) (*queries.VendorView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, public_id, owner_user_id, name, description, status, created_at, updated_at
		FROM vendors
		WHERE `+column+` = $1`, key)

	var v vendorRow
	if err := row.Scan(&v.ID, &v.PublicID, &v.OwnerUserID, &v.Name, &v.Description, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vendor", err)
	}

	view := &queries.VendorView{}
	if err := copier.Copy(view, &v); err != nil {
		return nil, infra.WrapRepoErr("failed to map vendor row", err)
	}
	return view, nil
}
