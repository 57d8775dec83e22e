package repository

import (
	"context"
	"time"

	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/infra/db"

	"github.com/google/uuid"
)

// RoleApplicationRepository is the single writer of the one-row-per-applicant
// role application snapshot and its evidence child rows.
type RoleApplicationRepository struct{}

func NewRoleApplicationRepository() *RoleApplicationRepository {
	return &RoleApplicationRepository{}
}

const roleApplicationColumns = `
	id, applicant_user_id, current_role, requested_role,
	display_name, contact_email, bio,
	brand_name, brand_category, message_to_admin,
	terms_version, confirms_authority, confirms_rights, confirmed_at,
	status, decision_reviewer_id, decision_decided_at, decision_result,
	decision_rejection_category, decision_comment, created_at, updated_at`

func (r *RoleApplicationRepository) Create(ctx context.Context, dbtx db.DBTX, app *roleapp.Application) error {
	args := snapshotArgs(app)
	_, err := dbtx.Exec(ctx, `
		INSERT INTO role_applications (`+roleApplicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		args...,
	)
	if err != nil {
		return wrapPgErr("failed to create role application", err)
	}
	return r.replaceEvidence(ctx, dbtx, app)
}

func (r *RoleApplicationRepository) Update(ctx context.Context, dbtx db.DBTX, app *roleapp.Application) error {
	args := snapshotArgs(app)
	tag, err := dbtx.Exec(ctx, `
		UPDATE role_applications
		SET current_role = $3, requested_role = $4,
		    display_name = $5, contact_email = $6, bio = $7,
		    brand_name = $8, brand_category = $9, message_to_admin = $10,
		    terms_version = $11, confirms_authority = $12, confirms_rights = $13, confirmed_at = $14,
		    status = $15, decision_reviewer_id = $16, decision_decided_at = $17, decision_result = $18,
		    decision_rejection_category = $19, decision_comment = $20, updated_at = $22
		WHERE id = $1`,
		args...,
	)
	if err != nil {
		return wrapPgErr("failed to update role application", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("role application not found", nil, infra.KindNotFound)
	}
	return r.replaceEvidence(ctx, dbtx, app)
}

// replaceEvidence rewrites the child rows to mirror the aggregate. Item IDs
// are stable across rewrites, so history queries keep working.
func (r *RoleApplicationRepository) replaceEvidence(ctx context.Context, dbtx db.DBTX, app *roleapp.Application) error {
	if _, err := dbtx.Exec(ctx, `DELETE FROM role_application_evidence WHERE application_id = $1`, app.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear evidence", err)
	}
	for _, item := range app.Evidence() {
		_, err := dbtx.Exec(ctx, `
			INSERT INTO role_application_evidence (
				id, application_id, method, status, submitted_at, verified_at,
				reviewed_by_user_id, review_note, email_hint, url, channel_url, verification_code
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			item.ID, app.ID(), string(item.Method), string(item.Status), item.SubmittedAt, item.VerifiedAt,
			item.ReviewedByUserID, item.ReviewNote, item.EmailHint, item.URL, item.ChannelURL, item.VerificationCode,
		)
		if err != nil {
			return wrapPgErr("failed to write evidence item", err)
		}
	}
	return nil
}

func (r *RoleApplicationRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*roleapp.Application, error) {
	return r.findForUpdate(ctx, dbtx, "id", id)
}

func (r *RoleApplicationRepository) FindByApplicantForUpdate(ctx context.Context, dbtx db.DBTX, applicantUserID uuid.UUID) (*roleapp.Application, error) {
	return r.findForUpdate(ctx, dbtx, "applicant_user_id", applicantUserID)
}

func (r *RoleApplicationRepository) findForUpdate(ctx context.Context, dbtx db.DBTX, column string, key uuid.UUID) (*roleapp.Application, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT `+roleApplicationColumns+`
		FROM role_applications
		WHERE `+column+` = $1
		FOR UPDATE`, key)

	var (
		id, applicantUserID                         uuid.UUID
		currentRole, requestedRole, status          string
		displayName, contactEmail, bio              string
		brandName, brandCategory, messageToAdmin    *string
		termsVersion                                string
		confirmsAuthority, confirmsRights           bool
		confirmedAt, decisionDecidedAt              *time.Time
		decisionReviewerID                          *uuid.UUID
		decisionResult, decisionCategory, decisionComment *string
		createdAt, updatedAt                        time.Time
	)
	err := row.Scan(
		&id, &applicantUserID, &currentRole, &requestedRole,
		&displayName, &contactEmail, &bio,
		&brandName, &brandCategory, &messageToAdmin,
		&termsVersion, &confirmsAuthority, &confirmsRights, &confirmedAt,
		&status, &decisionReviewerID, &decisionDecidedAt, &decisionResult,
		&decisionCategory, &decisionComment, &createdAt, &updatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("role application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find role application", err)
	}

	evidence, err := r.loadEvidence(ctx, dbtx, id)
	if err != nil {
		return nil, err
	}

	var decision *roleapp.DecisionRecord
	if decisionReviewerID != nil && decisionDecidedAt != nil && decisionResult != nil {
		decision = &roleapp.DecisionRecord{
			ReviewerUserID:    *decisionReviewerID,
			DecidedAt:         *decisionDecidedAt,
			Result:            roleapp.DecisionResult(*decisionResult),
			RejectionCategory: decisionCategory,
			Comment:           decisionComment,
		}
	}

	return roleapp.Reconstruct(
		id, applicantUserID,
		user.Role(currentRole), user.Role(requestedRole),
		roleapp.Profile{DisplayName: displayName, ContactEmail: contactEmail, Bio: bio},
		brandName, brandCategory, messageToAdmin,
		evidence,
		termsVersion, confirmsAuthority, confirmsRights, confirmedAt,
		roleapp.Status(status), decision,
		createdAt, updatedAt,
	), nil
}

func (r *RoleApplicationRepository) loadEvidence(ctx context.Context, dbtx db.DBTX, applicationID uuid.UUID) ([]roleapp.EvidenceItem, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT id, method, status, submitted_at, verified_at,
		       reviewed_by_user_id, review_note, email_hint, url, channel_url, verification_code
		FROM role_application_evidence
		WHERE application_id = $1
		ORDER BY submitted_at ASC NULLS LAST, id ASC`, applicationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load evidence", err)
	}
	defer rows.Close()

	var items []roleapp.EvidenceItem
	for rows.Next() {
		var (
			item           roleapp.EvidenceItem
			method, status string
		)
		if err := rows.Scan(
			&item.ID, &method, &status, &item.SubmittedAt, &item.VerifiedAt,
			&item.ReviewedByUserID, &item.ReviewNote, &item.EmailHint, &item.URL,
			&item.ChannelURL, &item.VerificationCode,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan evidence item", err)
		}
		item.Method = roleapp.EvidenceMethod(method)
		item.Status = roleapp.EvidenceStatus(status)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate evidence", err)
	}
	return items, nil
}

func snapshotArgs(app *roleapp.Application) []any {
	var (
		reviewerID *uuid.UUID
		decidedAt  *time.Time
		result     *string
		category   *string
		comment    *string
	)
	if d := app.Decision(); d != nil {
		reviewerID = &d.ReviewerUserID
		decidedAt = &d.DecidedAt
		res := string(d.Result)
		result = &res
		category = d.RejectionCategory
		comment = d.Comment
	}
	profile := app.Profile()
	return []any{
		app.ID(), app.ApplicantUserID(), app.CurrentRole().String(), app.RequestedRole().String(),
		profile.DisplayName, profile.ContactEmail, profile.Bio,
		app.BrandName(), app.BrandCategory(), app.MessageToAdmin(),
		app.TermsVersion(), app.ConfirmsAuthority(), app.ConfirmsRights(), app.ConfirmedAt(),
		app.Status().String(), reviewerID, decidedAt, result,
		category, comment, app.CreatedAt(), app.UpdatedAt(),
	}
}
