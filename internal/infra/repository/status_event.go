package repository

import (
	"context"
	"encoding/json"

	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/infra/db"
)

// StatusEventRepository appends to the vendor status audit log. Events are
// never updated or deleted; corrections are new compensating events.
type StatusEventRepository struct{}

func NewStatusEventRepository() *StatusEventRepository {
	return &StatusEventRepository{}
}

// Append assigns the next per-application seq inside the insert. The caller
// holds the application row lock, so concurrent appends serialize and the
// UNIQUE(application_id, seq) constraint never trips.
func (r *StatusEventRepository) Append(ctx context.Context, dbtx db.DBTX, event *statusapp.Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode event payload", err)
	}

	row := dbtx.QueryRow(ctx, `
		INSERT INTO vendor_status_events (id, application_id, seq, type, actor_user_id, occurred_at, payload)
		VALUES (
			$1, $2,
			COALESCE((SELECT MAX(seq) FROM vendor_status_events WHERE application_id = $2), 0) + 1,
			$3, $4, $5, $6
		)
		RETURNING seq`,
		event.ID, event.ApplicationID, string(event.Type), event.ActorUserID, event.OccurredAt, payload,
	)
	if err := row.Scan(&event.Seq); err != nil {
		return wrapPgErr("failed to append status event", err)
	}
	return nil
}
