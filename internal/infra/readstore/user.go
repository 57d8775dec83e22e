package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"marketplace-moderation/internal/infra"
	"marketplace-moderation/internal/infra/db"
	"marketplace-moderation/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

type userRow struct {
	ID           uuid.UUID
	Email        string
	Role         string
	IsActive     bool
	PasswordHash string
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, role, is_active FROM users WHERE id = $1`, id)

	var u userRow
	if err := row.Scan(&u.ID, &u.Email, &u.Role, &u.IsActive); err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	view := &queries.AuthorizedUserView{}
	if err := copier.Copy(view, &u); err != nil {
		return nil, infra.WrapRepoErr("failed to map user row", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, role, is_active, password_hash FROM users WHERE email = $1`, email)

	var u userRow
	if err := row.Scan(&u.ID, &u.Email, &u.Role, &u.IsActive, &u.PasswordHash); err != nil {
		if db.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view := &queries.AuthorizedUserView{}
	if err := copier.Copy(view, &u); err != nil {
		return nil, "", infra.WrapRepoErr("failed to map user row", err)
	}
	return view, u.PasswordHash, nil
}
