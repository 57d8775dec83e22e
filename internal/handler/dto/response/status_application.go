package response

import (
	"github.com/google/uuid"

	"marketplace-moderation/internal/usecase/commands"
	"marketplace-moderation/internal/usecase/queries"
)

type SubmitStatusApplicationResponse struct {
	ApplicationID uuid.UUID `json:"application_id"`
	Resubmitted   bool      `json:"resubmitted"`
}

func FromSubmitStatusApplicationResult(r *commands.SubmitStatusApplicationResult) *SubmitStatusApplicationResponse {
	return &SubmitStatusApplicationResponse{
		ApplicationID: r.ApplicationID,
		Resubmitted:   r.Resubmitted,
	}
}

type StatusApplicationListResponse struct {
	Items      []*queries.StatusApplicationListItem `json:"items"`
	NextCursor *string                              `json:"next_cursor,omitempty"`
}

type StatusEventListResponse struct {
	Items      []*queries.StatusEventView `json:"items"`
	NextCursor *string                    `json:"next_cursor,omitempty"`
}

func cursorString(c *queries.Cursor) *string {
	if c == nil {
		return nil
	}
	return &c.After
}

func NewStatusApplicationListResponse(items []*queries.StatusApplicationListItem, next *queries.Cursor) *StatusApplicationListResponse {
	if items == nil {
		items = []*queries.StatusApplicationListItem{}
	}
	return &StatusApplicationListResponse{Items: items, NextCursor: cursorString(next)}
}

func NewStatusEventListResponse(items []*queries.StatusEventView, next *queries.Cursor) *StatusEventListResponse {
	if items == nil {
		items = []*queries.StatusEventView{}
	}
	return &StatusEventListResponse{Items: items, NextCursor: cursorString(next)}
}
