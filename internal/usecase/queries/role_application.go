package queries

import (
	"context"
	"time"

	"marketplace-moderation/internal/domain/actor"
	"marketplace-moderation/internal/domain/rejection"
	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoleApplicationQueries interface {
	GetMine(ctx context.Context, act actor.Actor) (*RoleApplicationView, error)
	GetByID(ctx context.Context, act actor.Actor, applicationID uuid.UUID) (*RoleApplicationView, error)
	ListEvents(ctx context.Context, act actor.Actor, applicationID uuid.UUID, after *Cursor, limit int) ([]*RoleEventView, *Cursor, error)
	ListPending(ctx context.Context, act actor.Actor, after *Cursor, limit int) ([]*RoleApplicationListItem, *Cursor, error)
	ListRejectionTemplates(ctx context.Context, act actor.Actor) ([]*RejectionTemplateView, error)
}

type RoleApplicationReadStore interface {
	FindByApplicant(ctx context.Context, applicantUserID uuid.UUID) (*RoleApplicationView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoleApplicationView, error)
	FindEvents(ctx context.Context, applicationID uuid.UUID, afterSeq int64, limit int32) ([]*RoleEventView, error)
	FindPending(ctx context.Context, after time.Time, afterID uuid.UUID, limit int32) ([]*RoleApplicationListItem, error)
}

type roleApplicationQueriesImpl struct {
	readStore RoleApplicationReadStore
}

func NewRoleApplicationQueries(readStore RoleApplicationReadStore) RoleApplicationQueries {
	return &roleApplicationQueriesImpl{readStore: readStore}
}

// GetMine returns the caller's own application. Verification codes stay
// visible here; the applicant needs them to complete codePost evidence.
func (q *roleApplicationQueriesImpl) GetMine(ctx context.Context, act actor.Actor) (*RoleApplicationView, error) {
	if !act.IsAuthenticated {
		return nil, ErrAccessDenied
	}
	view, err := q.readStore.FindByApplicant(ctx, act.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	view.Actions = roleapp.DeriveActions(roleapp.Status(view.Status))
	return view, nil
}

func (q *roleApplicationQueriesImpl) GetByID(
	ctx context.Context,
	act actor.Actor,
	applicationID uuid.UUID,
) (*RoleApplicationView, error) {
	view, err := q.readStore.FindByID(ctx, applicationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if view.ApplicantUserID != act.UserID && !act.IsAdmin() {
		return nil, ErrAccessDenied
	}
	view.Actions = roleapp.DeriveActions(roleapp.Status(view.Status))
	return view, nil
}

func (q *roleApplicationQueriesImpl) ListEvents(
	ctx context.Context,
	act actor.Actor,
	applicationID uuid.UUID,
	after *Cursor,
	limit int,
) ([]*RoleEventView, *Cursor, error) {
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

// ListPending is the admin review queue for role upgrades.
func (q *roleApplicationQueriesImpl) ListPending(
	ctx context.Context,
	act actor.Actor,
	after *Cursor,
	limit int,
) ([]*RoleApplicationListItem, *Cursor, error) {
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

// ListRejectionTemplates exposes the static catalog admins pick from.
func (q *roleApplicationQueriesImpl) ListRejectionTemplates(_ context.Context, act actor.Actor) ([]*RejectionTemplateView, error) {
	if err := act.RequireAdmin(); err != nil {
		return nil, err
	}
	catalog := rejection.Catalog()
	views := make([]*RejectionTemplateView, 0, len(catalog))
	for _, t := range catalog {
		views = append(views, &RejectionTemplateView{
			ID:                     t.ID,
			Category:               string(t.Category),
			Title:                  t.Title,
			PreviewText:            t.Text,
			RequiresFreeformDetail: t.RequiresFreeformDetail,
		})
	}
	return views, nil
}
