package memuow

import (
	"context"

	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/infra/db"
	"marketplace-moderation/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	state *state
}

func (t *memTx) DB() db.DBTX { return nil }

func (t *memTx) StatusApplications() shared.StatusApplicationRepository {
	return &statusAppRepo{state: t.state}
}
func (t *memTx) StatusEvents() shared.StatusEventRepository {
	return &statusEventRepo{state: t.state}
}
func (t *memTx) RoleApplications() shared.RoleApplicationRepository {
	return &roleAppRepo{state: t.state}
}
func (t *memTx) RoleEvents() shared.RoleEventRepository {
	return &roleEventRepo{state: t.state}
}
func (t *memTx) Vendors() shared.VendorRepository {
	return &vendorRepo{state: t.state}
}
func (t *memTx) Users() shared.UserRepository {
	return &userRepo{state: t.state}
}
func (t *memTx) Reads() shared.CommandReads {
	return &txReads{state: t.state}
}

type statusAppRepo struct{ state *state }

func (r *statusAppRepo) Create(_ context.Context, _ db.DBTX, app *statusapp.Application) error {
	for _, existing := range r.state.statusApps {
		if existing.VendorID() == app.VendorID() {
			return infra.WrapRepoErr("status application already exists for vendor", nil, infra.KindDuplicateKey)
		}
	}
	r.state.statusApps[app.ID()] = cloneStatusApp(app)
	return nil
}

func (r *statusAppRepo) Update(_ context.Context, _ db.DBTX, app *statusapp.Application) error {
	if _, ok := r.state.statusApps[app.ID()]; !ok {
		return notFound("status application not found")
	}
	r.state.statusApps[app.ID()] = cloneStatusApp(app)
	return nil
}

func (r *statusAppRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*statusapp.Application, error) {
	app, ok := r.state.statusApps[id]
	if !ok {
		return nil, notFound("status application not found")
	}
	return cloneStatusApp(app), nil
}

func (r *statusAppRepo) FindByVendorIDForUpdate(_ context.Context, _ db.DBTX, vendorID uuid.UUID) (*statusapp.Application, error) {
	for _, app := range r.state.statusApps {
		if app.VendorID() == vendorID {
			return cloneStatusApp(app), nil
		}
	}
	return nil, notFound("status application not found")
}

type statusEventRepo struct{ state *state }

func (r *statusEventRepo) Append(_ context.Context, _ db.DBTX, event *statusapp.Event) error {
	var maxSeq int64
	for _, e := range r.state.statusEvents {
		if e.ApplicationID == event.ApplicationID && e.Seq > maxSeq {
			maxSeq = e.Seq
		}
	}
	event.Seq = maxSeq + 1
	r.state.statusEvents = append(r.state.statusEvents, *event)
	return nil
}

type roleAppRepo struct{ state *state }

func (r *roleAppRepo) Create(_ context.Context, _ db.DBTX, app *roleapp.Application) error {
	for _, existing := range r.state.roleApps {
		if existing.ApplicantUserID() == app.ApplicantUserID() {
			return infra.WrapRepoErr("role application already exists for applicant", nil, infra.KindDuplicateKey)
		}
	}
	r.state.roleApps[app.ID()] = cloneRoleApp(app)
	return nil
}

func (r *roleAppRepo) Update(_ context.Context, _ db.DBTX, app *roleapp.Application) error {
	if _, ok := r.state.roleApps[app.ID()]; !ok {
		return notFound("role application not found")
	}
	r.state.roleApps[app.ID()] = cloneRoleApp(app)
	return nil
}

func (r *roleAppRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*roleapp.Application, error) {
	app, ok := r.state.roleApps[id]
	if !ok {
		return nil, notFound("role application not found")
	}
	return cloneRoleApp(app), nil
}

func (r *roleAppRepo) FindByApplicantForUpdate(_ context.Context, _ db.DBTX, applicantUserID uuid.UUID) (*roleapp.Application, error) {
	for _, app := range r.state.roleApps {
		if app.ApplicantUserID() == applicantUserID {
			return cloneRoleApp(app), nil
		}
	}
	return nil, notFound("role application not found")
}

type roleEventRepo struct{ state *state }

func (r *roleEventRepo) Append(_ context.Context, _ db.DBTX, event *roleapp.Event) error {
	var maxSeq int64
	for _, e := range r.state.roleEvents {
		if e.ApplicationID == event.ApplicationID && e.Seq > maxSeq {
			maxSeq = e.Seq
		}
	}
	event.Seq = maxSeq + 1
	r.state.roleEvents = append(r.state.roleEvents, *event)
	return nil
}

type vendorRepo struct{ state *state }

func (r *vendorRepo) Create(_ context.Context, _ db.DBTX, listing *vendor.Listing) error {
	for _, existing := range r.state.vendors {
		if existing.PublicID() == listing.PublicID() {
			return infra.WrapRepoErr("vendor public id taken", nil, infra.KindDuplicateKey)
		}
	}
	r.state.vendors[listing.ID()] = cloneListing(listing)
	return nil
}

func (r *vendorRepo) Update(_ context.Context, _ db.DBTX, listing *vendor.Listing) error {
	if _, ok := r.state.vendors[listing.ID()]; !ok {
		return notFound("vendor listing not found")
	}
	r.state.vendors[listing.ID()] = cloneListing(listing)
	return nil
}

func (r *vendorRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*vendor.Listing, error) {
	listing, ok := r.state.vendors[id]
	if !ok {
		return nil, notFound("vendor listing not found")
	}
	return cloneListing(listing), nil
}

type userRepo struct{ state *state }

func (r *userRepo) Create(_ context.Context, _ db.DBTX, params shared.CreateUserParams) (uuid.UUID, error) {
	for _, existing := range r.state.users {
		if existing.Email == params.Email {
			return uuid.Nil, infra.WrapRepoErr("email taken", nil, infra.KindDuplicateKey)
		}
	}
	id := uuid.New()
	r.state.users[id] = &User{
		ID:           id,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
		IsActive:     true,
	}
	return id, nil
}

func (r *userRepo) UpdateRole(_ context.Context, _ db.DBTX, userID uuid.UUID, role user.Role) error {
	usr, ok := r.state.users[userID]
	if !ok {
		return notFound("user not found")
	}
	usr.Role = role
	return nil
}

func (r *userRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	if _, ok := r.state.users[userID]; !ok {
		return notFound("user not found")
	}
	return nil
}
