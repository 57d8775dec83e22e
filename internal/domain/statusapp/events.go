package statusapp

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates everything that can happen to a status application.
type EventType string

const (
	EventSubmitted           EventType = "submitted"
	EventResubmitted         EventType = "resubmitted"
	EventDecidedApproved     EventType = "decidedApproved"
	EventDecidedRejected     EventType = "decidedRejected"
	EventVendorStatusApplied EventType = "vendorStatusApplied"
	EventTermsUpdated        EventType = "termsUpdated"
)

// Event is one immutable audit record. Seq is assigned by the event
// repository inside the write transaction; (OccurredAt, Seq) is the
// ordering key, so same-instant events stay unambiguous.
type Event struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	Seq           int64
	Type          EventType
	ActorUserID   uuid.UUID
	OccurredAt    time.Time
	Payload       map[string]any
}

func newEvent(applicationID uuid.UUID, eventType EventType, actorUserID uuid.UUID, occurredAt time.Time, payload map[string]any) Event {
	return Event{
		ID:            uuid.New(),
		ApplicationID: applicationID,
		Type:          eventType,
		ActorUserID:   actorUserID,
		OccurredAt:    occurredAt,
		Payload:       payload,
	}
}

func NewSubmittedEvent(app *Application, actorUserID uuid.UUID, now time.Time) Event {
	return newEvent(app.ID(), EventSubmitted, actorUserID, now, map[string]any{
		"requestType": app.RequestType().String(),
	})
}

func NewResubmittedEvent(app *Application, actorUserID uuid.UUID, now time.Time) Event {
	return newEvent(app.ID(), EventResubmitted, actorUserID, now, map[string]any{
		"requestType": app.RequestType().String(),
	})
}

func NewDecidedEvent(app *Application, reviewerID uuid.UUID, now time.Time) Event {
	eventType := EventDecidedApproved
	payload := map[string]any{
		"requestType": app.RequestType().String(),
	}
	if app.Decision() == DecisionRejected {
		eventType = EventDecidedRejected
		if reason := app.RejectionReason(); reason != nil {
			payload["rejectionReason"] = *reason
		}
	}
	return newEvent(app.ID(), eventType, reviewerID, now, payload)
}

func NewVendorStatusAppliedEvent(app *Application, actorUserID uuid.UUID, now time.Time) Event {
	return newEvent(app.ID(), EventVendorStatusApplied, actorUserID, now, map[string]any{
		"appliedStatus": app.RequestType().TargetStatus().String(),
	})
}

func NewTermsUpdatedEvent(app *Application, actorUserID uuid.UUID, now time.Time) Event {
	return newEvent(app.ID(), EventTermsUpdated, actorUserID, now, map[string]any{
		"termsVersion": app.TermsVersion(),
	})
}
