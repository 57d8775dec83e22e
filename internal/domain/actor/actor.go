package actor

import (
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/pkg/errs"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as seen by the moderation workflows.
// Session management supplies it; the workflows only ever read it.
type Actor struct {
	UserID          uuid.UUID
	Role            user.Role
	IsAuthenticated bool
}

func New(userID uuid.UUID, role user.Role) Actor {
	return Actor{
		UserID:          userID,
		Role:            role,
		IsAuthenticated: userID != uuid.Nil,
	}
}

func Anonymous() Actor {
	return Actor{}
}

func (a Actor) IsAdmin() bool {
	return a.IsAuthenticated && a.Role == user.RoleAdmin
}

// RequireAdmin is the decision authority gate. Every admin-facing mutation
// checks it before touching any state.
func (a Actor) RequireAdmin() error {
	if !a.IsAdmin() {
		return errs.ErrPermissionDenied
	}
	return nil
}
