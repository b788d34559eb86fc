// pkg/memcache/sessions.go
package mem

import (
	"context"
	"sync"
	"time"

	"fitlead/internal/models/db_models"
)

// SessionCache is a process-local session store. Everything in it is lost on
// restart, which logs every user out.
type SessionCache struct {
	mu   sync.RWMutex
	data map[string]db_models.Session
}

func NewSessionCache() *SessionCache {
	return &SessionCache{
		data: make(map[string]db_models.Session),
	}
}

func (s *SessionCache) Create(_ context.Context, session *db_models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.Token] = *session
	return nil
}

func (s *SessionCache) Find(_ context.Context, token string, now time.Time) (*db_models.Session, error) {
	s.mu.RLock()
	e, ok := s.data[token]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if e.Expired(now) {
		s.mu.Lock()
		delete(s.data, token) // cleanup expired
		s.mu.Unlock()
		return nil, nil
	}
	return &e, nil
}

func (s *SessionCache) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, token)
	return nil
}

func (s *SessionCache) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for token, e := range s.data {
		if e.Expired(now) {
			delete(s.data, token)
			n++
		}
	}
	return n, nil
}

func (s *SessionCache) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
