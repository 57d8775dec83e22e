package readstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/infra/db"
	"marketplace-moderation/internal/usecase/queries"
)

type StatusApplicationReadStore struct {
	db db.DBTX
}

func NewStatusApplicationReadStore(dbtx db.DBTX) *StatusApplicationReadStore {
	return &StatusApplicationReadStore{db: dbtx}
}

type statusApplicationRow struct {
	ID                        uuid.UUID
	VendorID                  uuid.UUID
	VendorPublicID            string
	ApplicantUserID           uuid.UUID
	RequestType               string
	CurrentStatusAtSubmission string
	Message                   *string
	TermsVersion              string
	AgreedAt                  time.Time
	Decision                  string
	ReviewedBy                *uuid.UUID
	ReviewedAt                *time.Time
	RejectionReason           *string
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
	ListingStatus             string
}

const statusApplicationSelect = `
	SELECT a.id, a.vendor_id, a.vendor_public_id, a.applicant_user_id, a.request_type,
	       a.current_status_at_submission, a.message, a.terms_version, a.agreed_at,
	       a.decision, a.reviewed_by, a.reviewed_at, a.rejection_reason,
	       a.created_at, a.updated_at, v.status AS listing_status
	FROM vendor_status_applications a
	JOIN vendors v ON v.id = a.vendor_id`

func (r *StatusApplicationReadStore) FindByVendorPublicID(ctx context.Context, vendorPublicID string) (*queries.StatusApplicationView, error) {
	return r.find(ctx, statusApplicationSelect+` WHERE a.vendor_public_id = $1`, vendorPublicID)
}

func (r *StatusApplicationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StatusApplicationView, error) {
	return r.find(ctx, statusApplicationSelect+` WHERE a.id = $1`, id)
}

// FindPendingByVendorID backs the command-side duplicate and edit guards.
func (r *StatusApplicationReadStore) FindPendingByVendorID(ctx context.Context, vendorID uuid.UUID) (*queries.StatusApplicationView, error) {
	return r.find(ctx, statusApplicationSelect+` WHERE a.vendor_id = $1 AND a.decision = 'pending'`, vendorID)
}

func (r *StatusApplicationReadStore) find(ctx context.Context, query string, key any) (*queries.StatusApplicationView, error) {
	row := r.db.QueryRow(ctx, query, key)

	var a statusApplicationRow
	err := row.Scan(
		&a.ID, &a.VendorID, &a.VendorPublicID, &a.ApplicantUserID, &a.RequestType,
		&a.CurrentStatusAtSubmission, &a.Message, &a.TermsVersion, &a.AgreedAt,
		&a.Decision, &a.ReviewedBy, &a.ReviewedAt, &a.RejectionReason,
		&a.CreatedAt, &a.UpdatedAt, &a.ListingStatus,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("status application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find status application", err)
	}

	view := &queries.StatusApplicationView{}
	if err := copier.Copy(view, &a); err != nil {
		return nil, infra.WrapRepoErr("failed to map status application row", err)
	}
	return view, nil
}

func (r *StatusApplicationReadStore) FindEvents(ctx context.Context, applicationID uuid.UUID, afterSeq int64, limit int32) ([]*queries.StatusEventView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, application_id, seq, type, actor_user_id, occurred_at, payload
		FROM vendor_status_events
		WHERE application_id = $1 AND seq > $2
		ORDER BY seq ASC
		LIMIT $3`, applicationID, afterSeq, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list status events", err)
	}
	defer rows.Close()

	var views []*queries.StatusEventView
	for rows.Next() {
		var (
			v       queries.StatusEventView
			payload []byte
		)
		if err := rows.Scan(&v.ID, &v.ApplicationID, &v.Seq, &v.Type, &v.ActorUserID, &v.OccurredAt, &payload); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status event", err)
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &v.Payload); err != nil {
				return nil, infra.WrapRepoErr("failed to decode event payload", err)
			}
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate status events", err)
	}
	return views, nil
}

// FindPending feeds the admin queue, keyset-paginated on (updated_at, id).
func (r *StatusApplicationReadStore) FindPending(ctx context.Context, after time.Time, afterID uuid.UUID, limit int32) ([]*queries.StatusApplicationListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.vendor_public_id, v.name, a.request_type, a.decision, a.created_at, a.updated_at
		FROM vendor_status_applications a
		JOIN vendors v ON v.id = a.vendor_id
		WHERE a.decision = 'pending' AND (a.updated_at, a.id) > ($1, $2)
		ORDER BY a.updated_at ASC, a.id ASC
		LIMIT $3`, after, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending status applications", err)
	}
	defer rows.Close()

	var items []*queries.StatusApplicationListItem
	for rows.Next() {
		var item queries.StatusApplicationListItem
		if err := rows.Scan(&item.ID, &item.VendorPublicID, &item.VendorName, &item.RequestType, &item.Decision, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending status application", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pending status applications", err)
	}
	return items, nil
}
