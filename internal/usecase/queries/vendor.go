package queries

import (
	"context"

	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/pkg/errs"
)

var ErrVendorNotFound = errs.New("vendor not found")

type VendorQueries interface {
	GetByPublicID(ctx context.Context, publicID string) (*VendorView, error)
}

type VendorReadStore interface {
	FindByPublicID(ctx context.Context, publicID string) (*VendorView, error)
}

type vendorQueriesImpl struct {
	readStore VendorReadStore
}

func NewVendorQueries(readStore VendorReadStore) VendorQueries {
	return &vendorQueriesImpl{readStore: readStore}
}

// GetByPublicID is the public storefront lookup; no authentication needed.
func (q *vendorQueriesImpl) GetByPublicID(ctx context.Context, publicID string) (*VendorView, error) {
	view, err := q.readStore.FindByPublicID(ctx, publicID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return view, nil
}
