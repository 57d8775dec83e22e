package queries

import (
	"context"
	"time"

	"marketplace-moderation/internal/domain/actor"
	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errs.New("application not found")
	ErrAccessDenied        = errs.New("access denied")
	ErrInvalidCursor       = errs.New("invalid cursor")
)

type StatusApplicationQueries interface {
	GetForVendor(ctx context.Context, act actor.Actor, vendorPublicID string) (*StatusApplicationView, error)
	ListEvents(ctx context.Context, act actor.Actor, applicationID uuid.UUID, after *Cursor, limit int) ([]*StatusEventView, *Cursor, error)
	ListPending(ctx context.Context, act actor.Actor, after *Cursor, limit int) ([]*StatusApplicationListItem, *Cursor, error)
}

type StatusApplicationReadStore interface {
	FindByVendorPublicID(ctx context.Context, vendorPublicID string) (*StatusApplicationView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*StatusApplicationView, error)
	FindEvents(ctx context.Context, applicationID uuid.UUID, afterSeq int64, limit int32) ([]*StatusEventView, error)
	FindPending(ctx context.Context, after time.Time, afterID uuid.UUID, limit int32) ([]*StatusApplicationListItem, error)
}

type statusApplicationQueriesImpl struct {
	readStore StatusApplicationReadStore
}

func NewStatusApplicationQueries(readStore StatusApplicationReadStore) StatusApplicationQueries {
	return &statusApplicationQueriesImpl{readStore: readStore}
}

// GetForVendor returns the vendor's current status application together with
// the actions the caller may take next. Owners see their own vendor; admins
// see everything.
func (q *statusApplicationQueriesImpl) GetForVendor(
	ctx context.Context,
	act actor.Actor,
	vendorPublicID string,
) (*StatusApplicationView, error) {
	view, err := q.readStore.FindByVendorPublicID(ctx, vendorPublicID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if view.ApplicantUserID != act.UserID && !act.IsAdmin() {
		return nil, ErrAccessDenied
	}

	view.Actions = deriveStatusActions(view)
	return view, nil
}

// ListEvents pages through an application's audit log in seq order.
func (q *statusApplicationQueriesImpl) ListEvents(
	ctx context.Context,
	act actor.Actor,
	applicationID uuid.UUID,
	after *Cursor,
	limit int,
) ([]*StatusEventView, *Cursor, error) {
	view, err := q.readStore.FindByID(ctx, applicationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrApplicationNotFound
		}
		return nil, nil, err
	}
	if view.ApplicantUserID != act.UserID && !act.IsAdmin() {
		return nil, nil, ErrAccessDenied
	}

	var afterSeq int64
	if after != nil && after.After != "" {
		afterSeq, err = DecodeSeqCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
	}

	limit = ValidateLimit(limit)
	events, err := q.readStore.FindEvents(ctx, applicationID, afterSeq, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(events) > limit {
		events = events[:limit]
		next = &Cursor{After: EncodeSeqCursor(events[len(events)-1].Seq)}
	}
	return events, next, nil
}

// ListPending is the admin review queue, oldest submissions first.
func (q *statusApplicationQueriesImpl) ListPending(
	ctx context.Context,
	act actor.Actor,
	after *Cursor,
	limit int,
) ([]*StatusApplicationListItem, *Cursor, error) {
	if err := act.RequireAdmin(); err != nil {
		return nil, nil, err
	}

	afterTime := time.Time{}
	afterID := uuid.Nil
	if after != nil && after.After != "" {
		var err error
		afterTime, afterID, err = DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
	}

	limit = ValidateLimit(limit)
	items, err := q.readStore.FindPending(ctx, afterTime, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.UpdatedAt, last.ID)}
	}
	return items, next, nil
}

func deriveStatusActions(view *StatusApplicationView) statusapp.Actions {
	status, err := vendor.NewStatus(view.ListingStatus)
	if err != nil {
		return statusapp.Actions{}
	}
	requestType, err := statusapp.NewRequestType(view.RequestType)
	if err != nil {
		return statusapp.Actions{}
	}
	app := statusapp.Reconstruct(
		view.ID, view.VendorID,
		view.VendorPublicID,
		view.ApplicantUserID,
		requestType,
		vendor.Status(view.CurrentStatusAtSubmission),
		view.Message,
		view.TermsVersion,
		view.AgreedAt,
		statusapp.Decision(view.Decision),
		view.ReviewedBy,
		view.ReviewedAt,
		view.RejectionReason,
		view.CreatedAt, view.UpdatedAt,
	)
	return statusapp.DeriveActions(status, app)
}
