package repository

import (
	"context"
	"time"

	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/infra/db"

	"github.com/google/uuid"
)

// StatusApplicationRepository is the single writer of the one-row-per-vendor
// status application snapshot.
type StatusApplicationRepository struct{}

func NewStatusApplicationRepository() *StatusApplicationRepository {
	return &StatusApplicationRepository{}
}

const statusApplicationColumns = `
	id, vendor_id, vendor_public_id, applicant_user_id, request_type,
	current_status_at_submission, message, terms_version, agreed_at,
	decision, reviewed_by, reviewed_at, rejection_reason, created_at, updated_at`

func (r *StatusApplicationRepository) Create(ctx context.Context, dbtx db.DBTX, app *statusapp.Application) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO vendor_status_applications (`+statusApplicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		app.ID(), app.VendorID(), app.VendorPublicID(), app.ApplicantUserID(), app.RequestType().String(),
		app.CurrentStatusAtSubmission().String(), app.Message(), app.TermsVersion(), app.AgreedAt(),
		app.Decision().String(), app.ReviewedBy(), app.ReviewedAt(), app.RejectionReason(),
		app.CreatedAt(), app.UpdatedAt(),
	)
	if err != nil {
		return wrapPgErr("failed to create status application", err)
	}
	return nil
}

func (r *StatusApplicationRepository) Update(ctx context.Context, dbtx db.DBTX, app *statusapp.Application) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE vendor_status_applications
		SET request_type = $2,
		    current_status_at_submission = $3,
		    message = $4,
		    terms_version = $5,
		    agreed_at = $6,
		    decision = $7,
		    reviewed_by = $8,
		    reviewed_at = $9,
		    rejection_reason = $10,
		    updated_at = $11
		WHERE id = $1`,
		app.ID(), app.RequestType().String(), app.CurrentStatusAtSubmission().String(),
		app.Message(), app.TermsVersion(), app.AgreedAt(), app.Decision().String(),
		app.ReviewedBy(), app.ReviewedAt(), app.RejectionReason(), app.UpdatedAt(),
	)
	if err != nil {
		return wrapPgErr("failed to update status application", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("status application not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *StatusApplicationRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*statusapp.Application, error) {
	return r.findForUpdate(ctx, dbtx, "id", id)
}

func (r *StatusApplicationRepository) FindByVendorIDForUpdate(ctx context.Context, dbtx db.DBTX, vendorID uuid.UUID) (*statusapp.Application, error) {
	return r.findForUpdate(ctx, dbtx, "vendor_id", vendorID)
}

func (r *StatusApplicationRepository) findForUpdate(ctx context.Context, dbtx db.DBTX, column string, key uuid.UUID) (*statusapp.Application, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT `+statusApplicationColumns+`
		FROM vendor_status_applications
		WHERE `+column+` = $1
		FOR UPDATE`, key)

	var (
		id, vendorID, applicantUserID          uuid.UUID
		vendorPublicID, requestType            string
		currentStatus, termsVersion, decision  string
		message, rejectionReason               *string
		reviewedBy                             *uuid.UUID
		agreedAt, createdAt, updatedAt         time.Time
		reviewedAt                             *time.Time
	)
	err := row.Scan(
		&id, &vendorID, &vendorPublicID, &applicantUserID, &requestType,
		&currentStatus, &message, &termsVersion, &agreedAt,
		&decision, &reviewedBy, &reviewedAt, &rejectionReason, &createdAt, &updatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("status application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find status application", err)
	}

	return statusapp.Reconstruct(
		id, vendorID, vendorPublicID, applicantUserID,
		statusapp.RequestType(requestType), vendor.Status(currentStatus),
		message, termsVersion, agreedAt,
		statusapp.Decision(decision), reviewedBy, reviewedAt, rejectionReason,
		createdAt, updatedAt,
	), nil
}
