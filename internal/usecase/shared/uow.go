package shared

import (
	"context"

	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	StatusApplications() StatusApplicationRepository
	StatusEvents() StatusEventRepository
	RoleApplications() RoleApplicationRepository
	RoleEvents() RoleEventRepository
	Vendors() VendorRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	VendorByID(ctx context.Context, id uuid.UUID) (*VendorSnapshot, error)
	VendorByPublicID(ctx context.Context, publicID string) (*VendorSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	PendingStatusApplication(ctx context.Context, vendorID uuid.UUID) (*StatusApplicationSnapshot, error)
	RoleApplicationByApplicant(ctx context.Context, applicantUserID uuid.UUID) (*RoleApplicationSnapshot, error)
}

// A vendor keeps at most one status application row; submissions overwrite it.
type StatusApplicationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, app *statusapp.Application) error
	Update(ctx context.Context, dbtx db.DBTX, app *statusapp.Application) error
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*statusapp.Application, error)
	FindByVendorIDForUpdate(ctx context.Context, dbtx db.DBTX, vendorID uuid.UUID) (*statusapp.Application, error)
}

type StatusEventRepository interface {
	// Append inserts the event and assigns the next per-application seq.
	Append(ctx context.Context, dbtx db.DBTX, event *statusapp.Event) error
}

type RoleApplicationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, app *roleapp.Application) error
	Update(ctx context.Context, dbtx db.DBTX, app *roleapp.Application) error
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*roleapp.Application, error)
	FindByApplicantForUpdate(ctx context.Context, dbtx db.DBTX, applicantUserID uuid.UUID) (*roleapp.Application, error)
}

type RoleEventRepository interface {
	Append(ctx context.Context, dbtx db.DBTX, event *roleapp.Event) error
}

type VendorRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, listing *vendor.Listing) error
	Update(ctx context.Context, dbtx db.DBTX, listing *vendor.Listing) error
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*vendor.Listing, error)
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	Role         user.Role
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, params CreateUserParams) (uuid.UUID, error)
	UpdateRole(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, role user.Role) error
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
