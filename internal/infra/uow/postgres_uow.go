package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/internal/infra/db"
	"marketplace-moderation/internal/infra/readstore"
	"marketplace-moderation/internal/infra/repository"
	"marketplace-moderation/internal/pkg/errs"
	"marketplace-moderation/internal/usecase/queries"
	"marketplace-moderation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes; the
// duplicate guards rely on FOR UPDATE row locks, not serializable isolation.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the high bit so the value stays positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- safe after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	statusAppRepo   *repository.StatusApplicationRepository
	statusEventRepo *repository.StatusEventRepository
	roleAppRepo     *repository.RoleApplicationRepository
	roleEventRepo   *repository.RoleEventRepository
	vendorRepo      *repository.VendorRepository
	userRepo        *repository.UserRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) StatusApplications() shared.StatusApplicationRepository {
	if t.statusAppRepo == nil {
		t.statusAppRepo = repository.NewStatusApplicationRepository()
	}
	return t.statusAppRepo
}

func (t *pgTx) StatusEvents() shared.StatusEventRepository {
	if t.statusEventRepo == nil {
		t.statusEventRepo = repository.NewStatusEventRepository()
	}
	return t.statusEventRepo
}

func (t *pgTx) RoleApplications() shared.RoleApplicationRepository {
	if t.roleAppRepo == nil {
		t.roleAppRepo = repository.NewRoleApplicationRepository()
	}
	return t.roleAppRepo
}

func (t *pgTx) RoleEvents() shared.RoleEventRepository {
	if t.roleEventRepo == nil {
		t.roleEventRepo = repository.NewRoleEventRepository()
	}
	return t.roleEventRepo
}

func (t *pgTx) Vendors() shared.VendorRepository {
	if t.vendorRepo == nil {
		t.vendorRepo = repository.NewVendorRepository()
	}
	return t.vendorRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	vendorStore    *readstore.VendorReadStore
	statusAppStore *readstore.StatusApplicationReadStore
	roleAppStore   *readstore.RoleApplicationReadStore
	userStore      *readstore.UserReadStore
}

func (r *commandReads) VendorByID(ctx context.Context, id uuid.UUID) (*shared.VendorSnapshot, error) {
	if r.vendorStore == nil {
		r.vendorStore = readstore.NewVendorReadStore(r.dbtx)
	}
	view, err := r.vendorStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toVendorSnapshot(view), nil
}

func (r *commandReads) VendorByPublicID(ctx context.Context, publicID string) (*shared.VendorSnapshot, error) {
	if r.vendorStore == nil {
		r.vendorStore = readstore.NewVendorReadStore(r.dbtx)
	}
	view, err := r.vendorStore.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return toVendorSnapshot(view), nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}
	view, err := r.userStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{
		ID:    view.ID,
		Email: view.Email,
		Role:  user.Role(view.Role),
	}, nil
}

func (r *commandReads) PendingStatusApplication(ctx context.Context, vendorID uuid.UUID) (*shared.StatusApplicationSnapshot, error) {
	if r.statusAppStore == nil {
		r.statusAppStore = readstore.NewStatusApplicationReadStore(r.dbtx)
	}
	view, err := r.statusAppStore.FindPendingByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return &shared.StatusApplicationSnapshot{
		ID:          view.ID,
		VendorID:    view.VendorID,
		RequestType: statusapp.RequestType(view.RequestType),
		Decision:    statusapp.Decision(view.Decision),
		CreatedAt:   view.CreatedAt,
	}, nil
}

func (r *commandReads) RoleApplicationByApplicant(ctx context.Context, applicantUserID uuid.UUID) (*shared.RoleApplicationSnapshot, error) {
	if r.roleAppStore == nil {
		r.roleAppStore = readstore.NewRoleApplicationReadStore(r.dbtx)
	}
	view, err := r.roleAppStore.FindByApplicant(ctx, applicantUserID)
	if err != nil {
		return nil, err
	}
	return &shared.RoleApplicationSnapshot{
		ID:              view.ID,
		ApplicantUserID: view.ApplicantUserID,
		Status:          roleapp.Status(view.Status),
		UpdatedAt:       view.UpdatedAt,
	}, nil
}

func toVendorSnapshot(view *queries.VendorView) *shared.VendorSnapshot {
	return &shared.VendorSnapshot{
		ID:          view.ID,
		PublicID:    view.PublicID,
		OwnerUserID: view.OwnerUserID,
		Name:        view.Name,
		Status:      vendor.Status(view.Status),
	}
}
