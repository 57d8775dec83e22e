package roleapp

import (
	"time"

	"marketplace-moderation/internal/domain/user"

	"github.com/google/uuid"
)

type EventType string

const (
	EventApplicationCreated  EventType = "applicationCreated"
	EventRegistrationSaved   EventType = "registrationSaved"
	EventEvidenceSubmitted   EventType = "evidenceSubmitted"
	EventResubmissionStarted EventType = "resubmissionStarted"
	EventDecisionMade        EventType = "decisionMade"
	EventStatusChanged       EventType = "statusChanged"
	EventTermsUpdated        EventType = "termsUpdated"
)

// Event is one immutable audit record for a role application. Seq is
// assigned by the event repository inside the write transaction.
type Event struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	Seq           int64
	Type          EventType
	ActorUserID   uuid.UUID
	ActorRole     user.Role
	OccurredAt    time.Time
	PrevStatus    *Status
	NewStatus     *Status
	Payload       map[string]any
}

func newEvent(applicationID uuid.UUID, eventType EventType, actorUserID uuid.UUID, actorRole user.Role, occurredAt time.Time, payload map[string]any) Event {
	return Event{
		ID:            uuid.New(),
		ApplicationID: applicationID,
		Type:          eventType,
		ActorUserID:   actorUserID,
		ActorRole:     actorRole,
		OccurredAt:    occurredAt,
		Payload:       payload,
	}
}

func (e Event) withTransition(prev, next Status) Event {
	e.PrevStatus = &prev
	e.NewStatus = &next
	return e
}

func NewApplicationCreatedEvent(app *Application, actorUserID uuid.UUID, actorRole user.Role, now time.Time) Event {
	return newEvent(app.ID(), EventApplicationCreated, actorUserID, actorRole, now, map[string]any{
		"requestedRole": app.RequestedRole().String(),
	})
}

// NewRegistrationSavedEvent records a diff of field names, not the full
// snapshot, to keep the audit log compact.
func NewRegistrationSavedEvent(app *Application, actorUserID uuid.UUID, actorRole user.Role, changed []string, now time.Time) Event {
	return newEvent(app.ID(), EventRegistrationSaved, actorUserID, actorRole, now, map[string]any{
		"changedFields": changed,
	})
}

func NewEvidenceSubmittedEvent(app *Application, item *EvidenceItem, actorUserID uuid.UUID, actorRole user.Role, prev Status, now time.Time) Event {
	e := newEvent(app.ID(), EventEvidenceSubmitted, actorUserID, actorRole, now, map[string]any{
		"evidenceId": item.ID.String(),
		"method":     item.Method.String(),
	})
	return e.withTransition(prev, app.Status())
}

func NewResubmissionStartedEvent(app *Application, actorUserID uuid.UUID, actorRole user.Role, reset []string, now time.Time) Event {
	return newEvent(app.ID(), EventResubmissionStarted, actorUserID, actorRole, now, map[string]any{
		"reset": reset,
	})
}

func NewDecisionMadeEvent(app *Application, actorUserID uuid.UUID, actorRole user.Role, prev Status, now time.Time) Event {
	payload := map[string]any{}
	if d := app.Decision(); d != nil {
		payload["result"] = string(d.Result)
		if d.RejectionCategory != nil {
			payload["rejectionCategory"] = *d.RejectionCategory
		}
		if d.Comment != nil {
			payload["comment"] = *d.Comment
		}
	}
	e := newEvent(app.ID(), EventDecisionMade, actorUserID, actorRole, now, payload)
	return e.withTransition(prev, app.Status())
}

func NewStatusChangedEvent(app *Application, actorUserID uuid.UUID, actorRole user.Role, prev Status, reason string, now time.Time) Event {
	e := newEvent(app.ID(), EventStatusChanged, actorUserID, actorRole, now, map[string]any{
		"reason": reason,
	})
	return e.withTransition(prev, app.Status())
}

func NewTermsUpdatedEvent(app *Application, actorUserID uuid.UUID, actorRole user.Role, now time.Time) Event {
	return newEvent(app.ID(), EventTermsUpdated, actorUserID, actorRole, now, map[string]any{
		"termsVersion": app.TermsVersion(),
	})
}
