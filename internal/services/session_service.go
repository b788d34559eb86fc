package services

import (
	"context"
	"errors"
	"time"

	"fitlead/internal/models/db_models"
	"fitlead/internal/models/response_models"
	"fitlead/internal/repositories"
	"fitlead/pkg/utils"
)

const sessionTokenBytes = 32

type SessionServiceInterface interface {
	// Establish replaces whatever session previousCookie names with a new one
	// for user and returns the signed cookie value.
	Establish(ctx context.Context, previousCookie string, user *db_models.User) (string, error)
	Resolve(ctx context.Context, cookie string) (*response_models.SessionUser, error)
	Destroy(ctx context.Context, cookie string) error
	PurgeExpired(ctx context.Context) (int64, error)
	TTL() time.Duration
}

type SessionService struct {
	repo   repositories.SessionRepository
	signer *utils.CookieSigner
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionService(repo repositories.SessionRepository, signer *utils.CookieSigner, ttl time.Duration) *SessionService {
	return &SessionService{
		repo:   repo,
		signer: signer,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

func (s *SessionService) Establish(ctx context.Context, previousCookie string, user *db_models.User) (string, error) {
	if err := s.Destroy(ctx, previousCookie); err != nil {
		return "", err
	}

	token, err := utils.GenerateSecureToken(sessionTokenBytes)
	if err != nil {
		return "", err
	}

	now := s.now()
	session := &db_models.Session{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return "", err
	}

	return s.signer.Sign(token, session.ExpiresAt)
}

func (s *SessionService) Resolve(ctx context.Context, cookie string) (*response_models.SessionUser, error) {
	if cookie == "" {
		return nil, utils.ErrUnauthenticated
	}
	token, err := s.signer.Verify(cookie)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	session, err := s.repo.Find(ctx, token, s.now())
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, utils.ErrUnauthenticated
	}

	return &response_models.SessionUser{
		ID:    session.UserID,
		Email: session.Email,
		Role:  session.Role,
	}, nil
}

// Destroy is a no-op for an empty or forged cookie.
func (s *SessionService) Destroy(ctx context.Context, cookie string) error {
	if cookie == "" {
		return nil
	}
	token, err := s.signer.Verify(cookie)
	if errors.Is(err, utils.ErrInvalidCookie) {
		return nil
	}
	return s.repo.Delete(ctx, token)
}

func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, s.now())
}
