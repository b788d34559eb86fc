package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fitlead/internal/models/db_models"
	"fitlead/internal/models/request_models"
	"fitlead/internal/repositories"
	"fitlead/pkg/utils"
)

type SubmissionServiceInterface interface {
	Create(ctx context.Context, request request_models.CreateSubmissionRequest) (*db_models.Submission, error)
	List(ctx context.Context) ([]db_models.Submission, error)
	Get(ctx context.Context, id string) (*db_models.Submission, error)
	Update(ctx context.Context, id string, patch request_models.UpdateSubmissionRequest) (*db_models.Submission, error)
	Delete(ctx context.Context, id string) error
}

type SubmissionService struct {
	repo repositories.SubmissionRepositoryInterface
	now  func() time.Time
}

func NewSubmissionService(repo repositories.SubmissionRepositoryInterface) SubmissionServiceInterface {
	return &SubmissionService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func submissionNotFound() error {
	return utils.NewServiceError(utils.ErrNotFound, "Submission not found")
}

// optional maps an absent or empty value to NULL.
func optional(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func (s *SubmissionService) Create(ctx context.Context, request request_models.CreateSubmissionRequest) (*db_models.Submission, error) {
	if request.Name == "" || request.Phone == "" || request.Goal == "" {
		return nil, utils.ValidationError("Required fields: name, phone, goal")
	}

	now := s.now()
	submission := &db_models.Submission{
		BaseModel: db_models.BaseModel{ID: db_models.NewID(), CreatedAt: now},
		Name:      request.Name,
		Phone:     request.Phone,
		Email:     optional(request.Email),
		Goal:      request.Goal,
		Message:   optional(request.Message),
		Trainer:   optional(request.Trainer),
		Plan:      optional(request.Plan),
		Intent:    optional(request.Intent),
		Status:    db_models.SubmissionStatusNew,
		UpdatedAt: now,
	}

	return s.repo.Create(ctx, submission)
}

func (s *SubmissionService) List(ctx context.Context) ([]db_models.Submission, error) {
	return s.repo.List(ctx)
}

func (s *SubmissionService) Get(ctx context.Context, id string) (*db_models.Submission, error) {
	submissionID, err := uuid.Parse(id)
	if err != nil {
		return nil, submissionNotFound()
	}

	submission, err := s.repo.FindByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, submissionNotFound()
	}
	return submission, nil
}

func (s *SubmissionService) Update(ctx context.Context, id string, patch request_models.UpdateSubmissionRequest) (*db_models.Submission, error) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil, utils.ValidationError("No fields to update")
	}

	submissionID, err := uuid.Parse(id)
	if err != nil {
		return nil, submissionNotFound()
	}

	updated, err := s.repo.Update(ctx, submissionID, fields, s.now())
	if repositories.IsEmptyPatch(err) {
		return nil, utils.ValidationError("No fields to update")
	}
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, submissionNotFound()
	}
	return updated, nil
}

// Delete succeeds whether or not the submission existed.
func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	submissionID, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	return s.repo.Delete(ctx, submissionID)
}
