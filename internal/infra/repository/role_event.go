package repository

import (
	"context"
	"encoding/json"

	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/infra/db"
)

// RoleEventRepository appends to the role application audit log.
type RoleEventRepository struct{}

func NewRoleEventRepository() *RoleEventRepository {
	return &RoleEventRepository{}
}

// Append assigns the next per-application seq inside the insert; the caller
// holds the application row lock.
func (r *RoleEventRepository) Append(ctx context.Context, dbtx db.DBTX, event *roleapp.Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode event payload", err)
	}

	var prevStatus, newStatus *string
	if event.PrevStatus != nil {
		s := event.PrevStatus.String()
		prevStatus = &s
	}
	if event.NewStatus != nil {
		s := event.NewStatus.String()
		newStatus = &s
	}

	row := dbtx.QueryRow(ctx, `
		INSERT INTO role_application_events (
			id, application_id, seq, type, actor_user_id, actor_role,
			occurred_at, prev_status, new_status, payload
		)
		VALUES (
			$1, $2,
			COALESCE((SELECT MAX(seq) FROM role_application_events WHERE application_id = $2), 0) + 1,
			$3, $4, $5, $6, $7, $8, $9
		)
		RETURNING seq`,
		event.ID, event.ApplicationID, string(event.Type), event.ActorUserID, event.ActorRole.String(),
		event.OccurredAt, prevStatus, newStatus, payload,
	)
	if err := row.Scan(&event.Seq); err != nil {
		return wrapPgErr("failed to append role event", err)
	}
	return nil
}
