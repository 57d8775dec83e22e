package response

import (
	"github.com/google/uuid"

	"marketplace-moderation/internal/usecase/commands"
	"marketplace-moderation/internal/usecase/queries"
)

type SaveRegistrationResponse struct {
	ApplicationID uuid.UUID `json:"application_id"`
	Created       bool      `json:"created"`
	ChangedFields []string  `json:"changed_fields"`
}

func FromSaveRegistrationResult(r *commands.SaveRegistrationResult) *SaveRegistrationResponse {
	changed := r.ChangedFields
	if changed == nil {
		changed = []string{}
	}
	return &SaveRegistrationResponse{
		ApplicationID: r.ApplicationID,
		Created:       r.Created,
		ChangedFields: changed,
	}
}

type SubmitEvidenceResponse struct {
	ApplicationID    uuid.UUID `json:"application_id"`
	EvidenceID       uuid.UUID `json:"evidence_id"`
	VerificationCode *string   `json:"verification_code,omitempty"`
	Resubmission     bool      `json:"resubmission"`
}

func FromSubmitEvidenceResult(r *commands.SubmitEvidenceResult) *SubmitEvidenceResponse {
	return &SubmitEvidenceResponse{
		ApplicationID:    r.ApplicationID,
		EvidenceID:       r.EvidenceID,
		VerificationCode: r.VerificationCode,
		Resubmission:     r.Resubmission,
	}
}

type RoleApplicationListResponse struct {
	Items      []*queries.RoleApplicationListItem `json:"items"`
	NextCursor *string                            `json:"next_cursor,omitempty"`
}

func NewRoleApplicationListResponse(items []*queries.RoleApplicationListItem, next *queries.Cursor) *RoleApplicationListResponse {
	if items == nil {
		items = []*queries.RoleApplicationListItem{}
	}
	return &RoleApplicationListResponse{Items: items, NextCursor: cursorString(next)}
}

type RoleEventListResponse struct {
	Items      []*queries.RoleEventView `json:"items"`
	NextCursor *string                  `json:"next_cursor,omitempty"`
}

func NewRoleEventListResponse(items []*queries.RoleEventView, next *queries.Cursor) *RoleEventListResponse {
	if items == nil {
		items = []*queries.RoleEventView{}
	}
	return &RoleEventListResponse{Items: items, NextCursor: cursorString(next)}
}

type RejectionTemplateListResponse struct {
	Items []*queries.RejectionTemplateView `json:"items"`
}
