package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fitlead/internal/models/db_models"
	"fitlead/internal/models/response_models"
	"fitlead/pkg/utils"
)

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*db_models.User)
	return user, args.Error(1)
}

func (m *mockAccountRepository) InsertFirstAdmin(ctx context.Context, user *db_models.User) (*db_models.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*db_models.User)
	return created, args.Error(1)
}

func (m *mockAccountRepository) InsertIfAbsent(ctx context.Context, user *db_models.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

// fakeAccountRepository mirrors the SQL semantics of the real repository in memory.
type fakeAccountRepository struct {
	mu    sync.Mutex
	users map[string]db_models.User
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{users: make(map[string]db_models.User)}
}

func (f *fakeAccountRepository) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeAccountRepository) InsertFirstAdmin(_ context.Context, user *db_models.User) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return nil, fmt.Errorf("%w: %w", utils.ErrStorage, gorm.ErrDuplicatedKey)
	}

	role := db_models.RoleAdmin
	for _, u := range f.users {
		if u.Role == db_models.RoleAdmin {
			role = db_models.RoleUser
			break
		}
	}
	created := *user
	created.Role = role
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}
	f.users[created.Email] = created
	return &created, nil
}

func (f *fakeAccountRepository) InsertIfAbsent(_ context.Context, user *db_models.User) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Email]; ok {
		return false, nil
	}
	f.users[user.Email] = *user
	return true, nil
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(ctx context.Context, session *db_models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepository) Find(ctx context.Context, token string, now time.Time) (*db_models.Session, error) {
	args := m.Called(ctx, token, now)
	session, _ := args.Get(0).(*db_models.Session)
	return session, args.Error(1)
}

func (m *mockSessionRepository) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type mockSubmissionRepository struct {
	mock.Mock
}

func (m *mockSubmissionRepository) Create(ctx context.Context, submission *db_models.Submission) (*db_models.Submission, error) {
	args := m.Called(ctx, submission)
	created, _ := args.Get(0).(*db_models.Submission)
	return created, args.Error(1)
}

func (m *mockSubmissionRepository) List(ctx context.Context) ([]db_models.Submission, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]db_models.Submission)
	return list, args.Error(1)
}

func (m *mockSubmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Submission, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*db_models.Submission)
	return s, args.Error(1)
}

func (m *mockSubmissionRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}, now time.Time) (*db_models.Submission, error) {
	args := m.Called(ctx, id, fields, now)
	s, _ := args.Get(0).(*db_models.Submission)
	return s, args.Error(1)
}

func (m *mockSubmissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// fakeSubmissionRepository keeps rows in memory and applies the same
// updated_at rule as the SQL statement.
type fakeSubmissionRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]db_models.Submission
}

func newFakeSubmissionRepository() *fakeSubmissionRepository {
	return &fakeSubmissionRepository{rows: make(map[uuid.UUID]db_models.Submission)}
}

func (f *fakeSubmissionRepository) Create(_ context.Context, s *db_models.Submission) (*db_models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[s.ID] = *s
	created := *s
	return &created, nil
}

func (f *fakeSubmissionRepository) List(_ context.Context) ([]db_models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]db_models.Submission, 0, len(f.rows))
	for _, s := range f.rows {
		list = append(list, s)
	}
	return list, nil
}

func (f *fakeSubmissionRepository) FindByID(_ context.Context, id uuid.UUID) (*db_models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSubmissionRepository) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}, now time.Time) (*db_models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}

	str := func(v interface{}) *string {
		if v == nil {
			return nil
		}
		x := v.(string)
		return &x
	}
	for column, v := range fields {
		switch column {
		case "name":
			s.Name = v.(string)
		case "phone":
			s.Phone = v.(string)
		case "goal":
			s.Goal = v.(string)
		case "status":
			s.Status = v.(string)
		case "email":
			s.Email = str(v)
		case "message":
			s.Message = str(v)
		case "trainer":
			s.Trainer = str(v)
		case "plan":
			s.Plan = str(v)
		case "intent":
			s.Intent = str(v)
		}
	}

	next := s.UpdatedAt.Add(time.Microsecond)
	if now.After(next) {
		next = now
	}
	s.UpdatedAt = next
	f.rows[id] = s
	return &s, nil
}

func (f *fakeSubmissionRepository) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

type mockVisitRepository struct {
	mock.Mock
}

func (m *mockVisitRepository) Insert(ctx context.Context, visit *db_models.Visit) error {
	return m.Called(ctx, visit).Error(0)
}

func (m *mockVisitRepository) Recent(ctx context.Context, limit int) ([]db_models.Visit, error) {
	args := m.Called(ctx, limit)
	visits, _ := args.Get(0).([]db_models.Visit)
	return visits, args.Error(1)
}

func (m *mockVisitRepository) Stats(ctx context.Context) (response_models.VisitStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(response_models.VisitStats), args.Error(1)
}
