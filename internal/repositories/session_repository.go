package repositories

import (
	"context"
	"time"

	"fitlead/internal/infra"
	"fitlead/internal/models/db_models"
)

// SessionRepository is the server-side session store. Find returns nil, nil
// for unknown or expired tokens.
type SessionRepository interface {
	Create(ctx context.Context, session *db_models.Session) error
	Find(ctx context.Context, token string, now time.Time) (*db_models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepository struct {
	gw infra.Gateway
}

func NewSessionRepository(gw infra.Gateway) SessionRepository {
	return &sessionRepository{gw: gw}
}

func (s *sessionRepository) Create(ctx context.Context, session *db_models.Session) error {
	_, err := s.gw.Execute(ctx, `
		INSERT INTO sessions (token, user_id, email, role, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		session.Token, session.UserID, session.Email, session.Role, session.CreatedAt, session.ExpiresAt)
	return err
}

func (s *sessionRepository) Find(ctx context.Context, token string, now time.Time) (*db_models.Session, error) {
	var session db_models.Session
	found, err := s.gw.FetchOne(ctx, &session, `
		SELECT token, user_id, email, role, created_at, expires_at
		FROM sessions
		WHERE token = ? AND expires_at > ?
		LIMIT 1`, token, now)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

func (s *sessionRepository) Delete(ctx context.Context, token string) error {
	_, err := s.gw.Execute(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}

func (s *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.gw.Execute(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}
