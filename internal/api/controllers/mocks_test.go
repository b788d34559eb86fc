package controllers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fitlead/internal/infra"
	"fitlead/internal/models/db_models"
	"fitlead/internal/models/request_models"
	"fitlead/internal/models/response_models"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) Register(ctx context.Context, request request_models.SignUpRequest, currentCookie string) (*response_models.UserResponse, string, error) {
	args := m.Called(ctx, request, currentCookie)
	user, _ := args.Get(0).(*response_models.UserResponse)
	return user, args.String(1), args.Error(2)
}

func (m *mockAccountService) Login(ctx context.Context, request request_models.LoginRequest, currentCookie string) (*response_models.SessionUser, string, error) {
	args := m.Called(ctx, request, currentCookie)
	user, _ := args.Get(0).(*response_models.SessionUser)
	return user, args.String(1), args.Error(2)
}

func (m *mockAccountService) Logout(ctx context.Context, cookie string) error {
	return m.Called(ctx, cookie).Error(0)
}

func (m *mockAccountService) CurrentUser(ctx context.Context, cookie string) (*response_models.SessionUser, error) {
	args := m.Called(ctx, cookie)
	user, _ := args.Get(0).(*response_models.SessionUser)
	return user, args.Error(1)
}

func (m *mockAccountService) EnsureBootstrapAdmin(ctx context.Context, email, password string) (bool, error) {
	args := m.Called(ctx, email, password)
	return args.Bool(0), args.Error(1)
}

type mockSessionService struct {
	mock.Mock
}

func (m *mockSessionService) Establish(ctx context.Context, previousCookie string, user *db_models.User) (string, error) {
	args := m.Called(ctx, previousCookie, user)
	return args.String(0), args.Error(1)
}

func (m *mockSessionService) Resolve(ctx context.Context, cookie string) (*response_models.SessionUser, error) {
	args := m.Called(ctx, cookie)
	user, _ := args.Get(0).(*response_models.SessionUser)
	return user, args.Error(1)
}

func (m *mockSessionService) Destroy(ctx context.Context, cookie string) error {
	return m.Called(ctx, cookie).Error(0)
}

func (m *mockSessionService) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSessionService) TTL() time.Duration {
	return 24 * time.Hour
}

type mockSubmissionService struct {
	mock.Mock
}

func (m *mockSubmissionService) Create(ctx context.Context, request request_models.CreateSubmissionRequest) (*db_models.Submission, error) {
	args := m.Called(ctx, request)
	s, _ := args.Get(0).(*db_models.Submission)
	return s, args.Error(1)
}

func (m *mockSubmissionService) List(ctx context.Context) ([]db_models.Submission, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]db_models.Submission)
	return list, args.Error(1)
}

func (m *mockSubmissionService) Get(ctx context.Context, id string) (*db_models.Submission, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*db_models.Submission)
	return s, args.Error(1)
}

func (m *mockSubmissionService) Update(ctx context.Context, id string, patch request_models.UpdateSubmissionRequest) (*db_models.Submission, error) {
	args := m.Called(ctx, id, patch)
	s, _ := args.Get(0).(*db_models.Submission)
	return s, args.Error(1)
}

func (m *mockSubmissionService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockVisitService struct {
	mock.Mock
}

func (m *mockVisitService) Report(ctx context.Context) (*response_models.VisitReport, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).(*response_models.VisitReport)
	return r, args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) FetchOne(ctx context.Context, dest interface{}, query string, args ...interface{}) (bool, error) {
	ret := m.Called(ctx, dest, query, args)
	return ret.Bool(0), ret.Error(1)
}

func (m *mockGateway) FetchAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return m.Called(ctx, dest, query, args).Error(0)
}

func (m *mockGateway) Execute(ctx context.Context, query string, args ...interface{}) (infra.ExecResult, error) {
	ret := m.Called(ctx, query, args)
	return ret.Get(0).(infra.ExecResult), ret.Error(1)
}

func (m *mockGateway) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
