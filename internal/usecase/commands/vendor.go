package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"marketplace-moderation/internal/domain/actor"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/pkg/clock"
	"marketplace-moderation/internal/pkg/errs"
	"marketplace-moderation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrVendorRoleRequired = errs.New("vendor role required")

type CreateListingRequest struct {
	Name        string
	Description string
}

type CreateListingResult struct {
	ListingID uuid.UUID
	PublicID  string
}

type UpdateListingContentRequest struct {
	Name        string
	Description string
}

type VendorCommands interface {
	CreateListing(ctx context.Context, act actor.Actor, req CreateListingRequest) (*CreateListingResult, error)
	UpdateContent(ctx context.Context, act actor.Actor, vendorPublicID string, req UpdateListingContentRequest) error
}

type vendorUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVendorUseCase(uow shared.UnitOfWork, clk clock.Clock) VendorCommands {
	return &vendorUseCaseImpl{uow: uow, clock: clk}
}

// CreateListing registers a new storefront in pending state; it goes live
// only through an approved activate application.
func (uc *vendorUseCaseImpl) CreateListing(
	ctx context.Context,
	act actor.Actor,
	req CreateListingRequest,
) (*CreateListingResult, error) {
	if !act.IsAuthenticated || (act.Role != user.RoleVendor && act.Role != user.RoleAdmin) {
		return nil, errs.Mark(errs.ErrPermissionDenied, ErrVendorRoleRequired)
	}

	publicID, err := newPublicID(req.Name)
	if err != nil {
		return nil, err
	}

	var result CreateListingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		listing, derr := vendor.NewListing(publicID, act.UserID, vendor.ContentInput{
			Name:        req.Name,
			Description: req.Description,
		}, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr := tx.Vendors().Create(ctx, tx.DB(), listing); derr != nil {
			return derr
		}
		result = CreateListingResult{ListingID: listing.ID(), PublicID: listing.PublicID()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateContent edits the listing when moderation rules allow it. An active
// listing drops to hidden so the edit is re-reviewed; a pending status
// application or an archived listing blocks the edit entirely.
func (uc *vendorUseCaseImpl) UpdateContent(
	ctx context.Context,
	act actor.Actor,
	vendorPublicID string,
	req UpdateListingContentRequest,
) error {
	if !act.IsAuthenticated {
		return errs.ErrPermissionDenied
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().VendorByPublicID(ctx, vendorPublicID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrVendorNotFound)
			}
			return err
		}
		if snap.OwnerUserID != act.UserID && !act.IsAdmin() {
			return ErrNotVendorOwner
		}

		listing, err := tx.Vendors().FindByIDForUpdate(ctx, tx.DB(), snap.ID)
		if err != nil {
			return err
		}

		hasPending := false
		if _, err := tx.Reads().PendingStatusApplication(ctx, snap.ID); err == nil {
			hasPending = true
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		if err := listing.UpdateContent(vendor.ContentInput{
			Name:        req.Name,
			Description: req.Description,
		}, hasPending, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Vendors().Update(ctx, tx.DB(), listing)
	})
}

// newPublicID derives a URL-safe listing handle from the name plus a short
// random suffix to keep handles unique without coordinating on the name.
func newPublicID(name string) (string, error) {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > 32 {
		slug = slug[:32]
	}
	if slug == "" {
		slug = "vendor"
	}

	var suffix [4]byte
	if _, err := rand.Read(suffix[:]); err != nil {
		return "", errs.Wrap(err, "failed to generate listing handle")
	}
	return slug + "-" + hex.EncodeToString(suffix[:]), nil
}
