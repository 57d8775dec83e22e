package readstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/infra/db"
	"marketplace-moderation/internal/usecase/queries"
)

type RoleApplicationReadStore struct {
	db db.DBTX
}

func NewRoleApplicationReadStore(dbtx db.DBTX) *RoleApplicationReadStore {
	return &RoleApplicationReadStore{db: dbtx}
}

type roleApplicationRow struct {
	ID                uuid.UUID
	ApplicantUserID   uuid.UUID
	CurrentRole       string
	RequestedRole     string
	DisplayName       string
	ContactEmail      string
	Bio               string
	BrandName         *string
	BrandCategory     *string
	MessageToAdmin    *string
	TermsVersion      string
	ConfirmsAuthority bool
	ConfirmsRights    bool
	ConfirmedAt       *time.Time
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	decisionReviewerID *uuid.UUID
	decisionDecidedAt  *time.Time
	decisionResult     *string
	decisionCategory   *string
	decisionComment    *string
}

const roleApplicationSelect = `
	SELECT id, applicant_user_id, current_role, requested_role,
	       display_name, contact_email, bio,
	       brand_name, brand_category, message_to_admin,
	       terms_version, confirms_authority, confirms_rights, confirmed_at,
	       status, decision_reviewer_id, decision_decided_at, decision_result,
	       decision_rejection_category, decision_comment, created_at, updated_at
	FROM role_applications`

func (r *RoleApplicationReadStore) FindByApplicant(ctx context.Context, applicantUserID uuid.UUID) (*queries.RoleApplicationView, error) {
	return r.find(ctx, roleApplicationSelect+` WHERE applicant_user_id = $1`, applicantUserID)
}

func (r *RoleApplicationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoleApplicationView, error) {
	return r.find(ctx, roleApplicationSelect+` WHERE id = $1`, id)
}

func (r *RoleApplicationReadStore) find(ctx context.Context, query string, key any) (*queries.RoleApplicationView, error) {
	row := r.db.QueryRow(ctx, query, key)

	var a roleApplicationRow
	err := row.Scan(
		&a.ID, &a.ApplicantUserID, &a.CurrentRole, &a.RequestedRole,
		&a.DisplayName, &a.ContactEmail, &a.Bio,
		&a.BrandName, &a.BrandCategory, &a.MessageToAdmin,
		&a.TermsVersion, &a.ConfirmsAuthority, &a.ConfirmsRights, &a.ConfirmedAt,
		&a.Status, &a.decisionReviewerID, &a.decisionDecidedAt, &a.decisionResult,
		&a.decisionCategory, &a.decisionComment, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("role application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find role application", err)
	}

	view := &queries.RoleApplicationView{}
	if err := copier.Copy(view, &a); err != nil {
		return nil, infra.WrapRepoErr("failed to map role application row", err)
	}
	view.Profile = roleapp.Profile{DisplayName: a.DisplayName, ContactEmail: a.ContactEmail, Bio: a.Bio}
	if a.decisionReviewerID != nil && a.decisionDecidedAt != nil && a.decisionResult != nil {
		view.Decision = &queries.DecisionView{
			ReviewerUserID:    *a.decisionReviewerID,
			DecidedAt:         *a.decisionDecidedAt,
			Result:            *a.decisionResult,
			RejectionCategory: a.decisionCategory,
			Comment:           a.decisionComment,
		}
	}

	evidence, err := r.findEvidence(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	view.Evidence = evidence
	return view, nil
}

func (r *RoleApplicationReadStore) findEvidence(ctx context.Context, applicationID uuid.UUID) ([]queries.EvidenceView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, method, status, submitted_at, verified_at,
		       reviewed_by_user_id, review_note, email_hint, url, channel_url, verification_code
		FROM role_application_evidence
		WHERE application_id = $1
		ORDER BY submitted_at ASC NULLS LAST, id ASC`, applicationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list evidence", err)
	}
	defer rows.Close()

	views := []queries.EvidenceView{}
	for rows.Next() {
		var v queries.EvidenceView
		if err := rows.Scan(
			&v.ID, &v.Method, &v.Status, &v.SubmittedAt, &v.VerifiedAt,
			&v.ReviewedByUserID, &v.ReviewNote, &v.EmailHint, &v.URL, &v.ChannelURL, &v.VerificationCode,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan evidence", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate evidence", err)
	}
	return views, nil
}

func (r *RoleApplicationReadStore) FindEvents(ctx context.Context, applicationID uuid.UUID, afterSeq int64, limit int32) ([]*queries.RoleEventView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, application_id, seq, type, actor_user_id, actor_role,
		       occurred_at, prev_status, new_status, payload
		FROM role_application_events
		WHERE application_id = $1 AND seq > $2
		ORDER BY seq ASC
		LIMIT $3`, applicationID, afterSeq, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list role events", err)
	}
	defer rows.Close()

	var views []*queries.RoleEventView
	for rows.Next() {
		var (
			v       queries.RoleEventView
			payload []byte
		)
		if err := rows.Scan(&v.ID, &v.ApplicationID, &v.Seq, &v.Type, &v.ActorUserID, &v.ActorRole,
			&v.OccurredAt, &v.PrevStatus, &v.NewStatus, &payload); err != nil {
			return nil, infra.WrapRepoErr("failed to scan role event", err)
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &v.Payload); err != nil {
				return nil, infra.WrapRepoErr("failed to decode event payload", err)
			}
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate role events", err)
	}
	return views, nil
}

func (r *RoleApplicationReadStore) FindPending(ctx context.Context, after time.Time, afterID uuid.UUID, limit int32) ([]*queries.RoleApplicationListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.applicant_user_id, u.email, a.brand_name, a.status, a.created_at, a.updated_at
		FROM role_applications a
		JOIN users u ON u.id = a.applicant_user_id
		WHERE a.status = 'pending' AND (a.updated_at, a.id) > ($1, $2)
		ORDER BY a.updated_at ASC, a.id ASC
		LIMIT $3`, after, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending role applications", err)
	}
	defer rows.Close()

	var items []*queries.RoleApplicationListItem
	for rows.Next() {
		var item queries.RoleApplicationListItem
		if err := rows.Scan(&item.ID, &item.ApplicantUserID, &item.ApplicantEmail, &item.BrandName, &item.Status, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending role application", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pending role applications", err)
	}
	return items, nil
}
