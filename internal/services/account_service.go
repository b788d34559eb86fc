package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitlead/internal/models/db_models"
	"fitlead/internal/models/request_models"
	"fitlead/internal/models/response_models"
	"fitlead/internal/repositories"
	"fitlead/pkg/utils"
)

const msgCredentialsRequired = "Email and password required"

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest, currentCookie string) (*response_models.UserResponse, string, error)
	Login(ctx context.Context, request request_models.LoginRequest, currentCookie string) (*response_models.SessionUser, string, error)
	Logout(ctx context.Context, cookie string) error
	CurrentUser(ctx context.Context, cookie string) (*response_models.SessionUser, error)
	EnsureBootstrapAdmin(ctx context.Context, email, password string) (bool, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	sessions    SessionServiceInterface
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, sessions SessionServiceInterface, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		sessions:    sessions,
		logger:      logger,
	}
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest, currentCookie string) (*response_models.UserResponse, string, error) {
	email := normalizeEmail(request.Email)
	if email == "" || request.Password == "" {
		return nil, "", utils.ValidationError(msgCredentialsRequired)
	}

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", utils.NewServiceError(utils.ErrConflict, "User already exists")
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, "", err
	}

	user, err := a.accountRepo.InsertFirstAdmin(ctx, &db_models.User{
		BaseModel:    db_models.BaseModel{ID: db_models.NewID()},
		Email:        email,
		PasswordHash: hashedPassword,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, "", utils.NewServiceError(utils.ErrConflict, "User already exists")
	}
	if err != nil {
		return nil, "", err
	}

	if user.IsAdmin() {
		a.logger.Info("registered first administrator", zap.String("email", user.Email))
	}

	cookie, err := a.sessions.Establish(ctx, currentCookie, user)
	if err != nil {
		return nil, "", err
	}

	return &response_models.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, cookie, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest, currentCookie string) (*response_models.SessionUser, string, error) {
	email := normalizeEmail(request.Email)
	if email == "" || request.Password == "" {
		return nil, "", utils.ValidationError(msgCredentialsRequired)
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if account == nil {
		utils.BurnPasswordCheck(request.Password)
		return nil, "", utils.ErrAuth
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, "", utils.ErrAuth
	}

	cookie, err := a.sessions.Establish(ctx, currentCookie, account)
	if err != nil {
		return nil, "", err
	}

	return &response_models.SessionUser{
		ID:    account.ID,
		Email: account.Email,
		Role:  account.Role,
	}, cookie, nil
}

func (a *AccountService) Logout(ctx context.Context, cookie string) error {
	return a.sessions.Destroy(ctx, cookie)
}

func (a *AccountService) CurrentUser(ctx context.Context, cookie string) (*response_models.SessionUser, error) {
	return a.sessions.Resolve(ctx, cookie)
}

// EnsureBootstrapAdmin creates the operator-provisioned admin unless the email is already registered.
func (a *AccountService) EnsureBootstrapAdmin(ctx context.Context, email, password string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return false, utils.ValidationError(msgCredentialsRequired)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return false, err
	}

	created, err := a.accountRepo.InsertIfAbsent(ctx, &db_models.User{
		BaseModel:    db_models.BaseModel{ID: db_models.NewID()},
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	if created {
		a.logger.Info("created initial admin", zap.String("email", email))
	}
	return created, nil
}
