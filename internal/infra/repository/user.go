package repository

import (
	"context"

	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/infra/db"
	"marketplace-moderation/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, params shared.CreateUserParams) (uuid.UUID, error) {
	id := uuid.New()
	_, err := dbtx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, now(), now())`,
		id, params.Email, params.PasswordHash, params.Role.String(),
	)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, role user.Role) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE users SET role = $2, updated_at = now() WHERE id = $1`,
		userID, role.String(),
	)
	if err != nil {
		return wrapPgErr("failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, `
		UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
