package repositories

import (
	"context"
	"time"

	"fitlead/internal/infra"
	"fitlead/internal/models/db_models"
)

type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	// InsertFirstAdmin stores the user as admin when no admin exists yet and
	// as a regular user otherwise, in one statement.
	InsertFirstAdmin(ctx context.Context, user *db_models.User) (*db_models.User, error)
	// InsertIfAbsent stores the user with its own role unless the email is taken.
	InsertIfAbsent(ctx context.Context, user *db_models.User) (bool, error)
}

type accountRepository struct {
	gw infra.Gateway
}

func NewAccountRepository(gw infra.Gateway) AccountRepository {
	return &accountRepository{gw: gw}
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	found, err := a.gw.FetchOne(ctx, &user,
		`SELECT id, email, password_hash, role, created_at FROM users WHERE email = ? LIMIT 1`, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

func (a *accountRepository) InsertFirstAdmin(ctx context.Context, user *db_models.User) (*db_models.User, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	var created db_models.User
	_, err := a.gw.FetchOne(ctx, &created, `
		INSERT INTO users (id, email, password_hash, role, created_at)
		VALUES (?, ?, ?,
			CASE WHEN EXISTS (SELECT 1 FROM users WHERE role = ?) THEN ? ELSE ? END,
			?)
		RETURNING id, email, password_hash, role, created_at`,
		user.ID, user.Email, user.PasswordHash,
		db_models.RoleAdmin, db_models.RoleUser, db_models.RoleAdmin,
		user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *accountRepository) InsertIfAbsent(ctx context.Context, user *db_models.User) (bool, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	res, err := a.gw.Execute(ctx, `
		INSERT INTO users (id, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (email) DO NOTHING`,
		user.ID, user.Email, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		return false, err
	}
	return res.RowsAffected > 0, nil
}
