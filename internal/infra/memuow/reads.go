package memuow

import (
	"context"

	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/usecase/shared"

	"github.com/google/uuid"
)

// txReads serves command reads inside a memory transaction.
type txReads struct {
	state *state
}

func (r *txReads) VendorByID(_ context.Context, id uuid.UUID) (*shared.VendorSnapshot, error) {
	listing, ok := r.state.vendors[id]
	if !ok {
		return nil, notFound("vendor not found")
	}
	return &shared.VendorSnapshot{
		ID:          listing.ID(),
		PublicID:    listing.PublicID(),
		OwnerUserID: listing.OwnerUserID(),
		Name:        listing.Name(),
		Status:      listing.Status(),
	}, nil
}

func (r *txReads) VendorByPublicID(_ context.Context, publicID string) (*shared.VendorSnapshot, error) {
	for _, listing := range r.state.vendors {
		if listing.PublicID() == publicID {
			return &shared.VendorSnapshot{
				ID:          listing.ID(),
				PublicID:    listing.PublicID(),
				OwnerUserID: listing.OwnerUserID(),
				Name:        listing.Name(),
				Status:      listing.Status(),
			}, nil
		}
	}
	return nil, notFound("vendor not found")
}

func (r *txReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	usr, ok := r.state.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return &shared.UserSnapshot{ID: usr.ID, Email: usr.Email, Role: usr.Role}, nil
}

func (r *txReads) PendingStatusApplication(_ context.Context, vendorID uuid.UUID) (*shared.StatusApplicationSnapshot, error) {
	for _, app := range r.state.statusApps {
		if app.VendorID() == vendorID && app.Decision() == statusapp.DecisionPending {
			return &shared.StatusApplicationSnapshot{
				ID:          app.ID(),
				VendorID:    app.VendorID(),
				RequestType: app.RequestType(),
				Decision:    app.Decision(),
				CreatedAt:   app.CreatedAt(),
			}, nil
		}
	}
	return nil, notFound("status application not found")
}

func (r *txReads) RoleApplicationByApplicant(_ context.Context, applicantUserID uuid.UUID) (*shared.RoleApplicationSnapshot, error) {
	for _, app := range r.state.roleApps {
		if app.ApplicantUserID() == applicantUserID {
			return &shared.RoleApplicationSnapshot{
				ID:              app.ID(),
				ApplicantUserID: app.ApplicantUserID(),
				Status:          app.Status(),
				UpdatedAt:       app.UpdatedAt(),
			}, nil
		}
	}
	return nil, notFound("role application not found")
}

// commandReads serves reads outside a transaction, against committed state.
type commandReads struct {
	uow *MemoryUoW
}

func (r *commandReads) VendorByID(ctx context.Context, id uuid.UUID) (*shared.VendorSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return (&txReads{state: r.uow.state}).VendorByID(ctx, id)
}

func (r *commandReads) VendorByPublicID(ctx context.Context, publicID string) (*shared.VendorSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return (&txReads{state: r.uow.state}).VendorByPublicID(ctx, publicID)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return (&txReads{state: r.uow.state}).UserByID(ctx, id)
}

func (r *commandReads) PendingStatusApplication(ctx context.Context, vendorID uuid.UUID) (*shared.StatusApplicationSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return (&txReads{state: r.uow.state}).PendingStatusApplication(ctx, vendorID)
}

func (r *commandReads) RoleApplicationByApplicant(ctx context.Context, applicantUserID uuid.UUID) (*shared.RoleApplicationSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return (&txReads{state: r.uow.state}).RoleApplicationByApplicant(ctx, applicantUserID)
}
