package external

import (
	"context"
	"log/slog"

	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/usecase/commands"
	"marketplace-moderation/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserDirectoryAdapter struct {
	uow shared.UnitOfWork
}

func NewUserDirectoryAdapter(uow shared.UnitOfWork) commands.UserDirectory {
	return &UserDirectoryAdapter{uow: uow}
}

func (a *UserDirectoryAdapter) UpdateRole(ctx context.Context, userID uuid.UUID, role user.Role) error {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateRole(ctx, tx.DB(), userID, role)
	})
	if err != nil {
		return err
	}
	slog.Info("user role updated", "user_id", userID, "role", role.String())
	return nil
}
