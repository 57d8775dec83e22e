package memuow

import (
	"context"
	"sync"
	"time"

	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/infra/db"
	"marketplace-moderation/internal/usecase/shared"

	"github.com/google/uuid"
)

// MemoryUoW is an in-memory unit of work with the same transactional contract
// as the Postgres one: operations run serialized, and a failed function leaves
// no partial mutation behind. It backs the command unit tests.
type MemoryUoW struct {
	mu    sync.Mutex
	state *state
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         user.Role
	IsActive     bool
	LastLogin    *time.Time
}

type state struct {
	statusApps   map[uuid.UUID]*statusapp.Application
	statusEvents []statusapp.Event
	roleApps     map[uuid.UUID]*roleapp.Application
	roleEvents   []roleapp.Event
	vendors      map[uuid.UUID]*vendor.Listing
	users        map[uuid.UUID]*User
}

func New() *MemoryUoW {
	return &MemoryUoW{state: &state{
		statusApps: make(map[uuid.UUID]*statusapp.Application),
		roleApps:   make(map[uuid.UUID]*roleapp.Application),
		vendors:    make(map[uuid.UUID]*vendor.Listing),
		users:      make(map[uuid.UUID]*User),
	}}
}

// Within runs fn against a clone of the state and swaps it in on success.
func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	working := u.state.clone()
	tx := &memTx{state: working}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	u.state = working
	return nil
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, nil)
}

func (u *MemoryUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *MemoryUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u}
}

// Seed helpers for tests.

func (u *MemoryUoW) SeedUser(usr User) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.users[usr.ID] = &usr
}

func (u *MemoryUoW) SeedVendor(listing *vendor.Listing) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.vendors[listing.ID()] = cloneListing(listing)
}

func (u *MemoryUoW) SeedStatusApplication(app *statusapp.Application) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.statusApps[app.ID()] = cloneStatusApp(app)
}

func (u *MemoryUoW) SeedRoleApplication(app *roleapp.Application) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.roleApps[app.ID()] = cloneRoleApp(app)
}

// Inspection helpers for tests.

func (u *MemoryUoW) StatusApplicationByVendor(vendorID uuid.UUID) *statusapp.Application {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, app := range u.state.statusApps {
		if app.VendorID() == vendorID {
			return cloneStatusApp(app)
		}
	}
	return nil
}

func (u *MemoryUoW) RoleApplicationByApplicant(applicantUserID uuid.UUID) *roleapp.Application {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, app := range u.state.roleApps {
		if app.ApplicantUserID() == applicantUserID {
			return cloneRoleApp(app)
		}
	}
	return nil
}

func (u *MemoryUoW) StatusEvents(applicationID uuid.UUID) []statusapp.Event {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []statusapp.Event
	for _, e := range u.state.statusEvents {
		if e.ApplicationID == applicationID {
			out = append(out, e)
		}
	}
	return out
}

func (u *MemoryUoW) RoleEvents(applicationID uuid.UUID) []roleapp.Event {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []roleapp.Event
	for _, e := range u.state.roleEvents {
		if e.ApplicationID == applicationID {
			out = append(out, e)
		}
	}
	return out
}

func (u *MemoryUoW) Vendor(id uuid.UUID) *vendor.Listing {
	u.mu.Lock()
	defer u.mu.Unlock()
	listing, ok := u.state.vendors[id]
	if !ok {
		return nil
	}
	return cloneListing(listing)
}

func (u *MemoryUoW) User(id uuid.UUID) *User {
	u.mu.Lock()
	defer u.mu.Unlock()
	usr, ok := u.state.users[id]
	if !ok {
		return nil
	}
	copied := *usr
	return &copied
}

func (s *state) clone() *state {
	next := &state{
		statusApps:   make(map[uuid.UUID]*statusapp.Application, len(s.statusApps)),
		statusEvents: append([]statusapp.Event(nil), s.statusEvents...),
		roleApps:     make(map[uuid.UUID]*roleapp.Application, len(s.roleApps)),
		roleEvents:   append([]roleapp.Event(nil), s.roleEvents...),
		vendors:      make(map[uuid.UUID]*vendor.Listing, len(s.vendors)),
		users:        make(map[uuid.UUID]*User, len(s.users)),
	}
	for id, app := range s.statusApps {
		next.statusApps[id] = cloneStatusApp(app)
	}
	for id, app := range s.roleApps {
		next.roleApps[id] = cloneRoleApp(app)
	}
	for id, listing := range s.vendors {
		next.vendors[id] = cloneListing(listing)
	}
	for id, usr := range s.users {
		copied := *usr
		next.users[id] = &copied
	}
	return next
}

func cloneStatusApp(app *statusapp.Application) *statusapp.Application {
	return statusapp.Reconstruct(
		app.ID(), app.VendorID(), app.VendorPublicID(), app.ApplicantUserID(),
		app.RequestType(), app.CurrentStatusAtSubmission(),
		app.Message(), app.TermsVersion(), app.AgreedAt(),
		app.Decision(), app.ReviewedBy(), app.ReviewedAt(), app.RejectionReason(),
		app.CreatedAt(), app.UpdatedAt(),
	)
}

func cloneRoleApp(app *roleapp.Application) *roleapp.Application {
	return roleapp.Reconstruct(
		app.ID(), app.ApplicantUserID(),
		app.CurrentRole(), app.RequestedRole(),
		app.Profile(),
		app.BrandName(), app.BrandCategory(), app.MessageToAdmin(),
		app.Evidence(),
		app.TermsVersion(), app.ConfirmsAuthority(), app.ConfirmsRights(), app.ConfirmedAt(),
		app.Status(), app.Decision(),
		app.CreatedAt(), app.UpdatedAt(),
	)
}

func cloneListing(listing *vendor.Listing) *vendor.Listing {
	return vendor.Reconstruct(
		listing.ID(), listing.PublicID(), listing.OwnerUserID(),
		listing.Name(), listing.Description(), listing.Status(),
		listing.CreatedAt(), listing.UpdatedAt(),
	)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}
