package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fitlead/internal/infra"
	"fitlead/internal/models/db_models"
)

// SubmissionMutableFields are the columns an administrator may patch.
var SubmissionMutableFields = []string{
	"name", "phone", "email", "goal", "message", "trainer", "plan", "intent", "status",
}

type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, submission *db_models.Submission) (*db_models.Submission, error)
	List(ctx context.Context) ([]db_models.Submission, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Submission, error)
	// Update returns nil, nil when no row has the id.
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}, now time.Time) (*db_models.Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SubmissionRepository struct {
	gw infra.Gateway
}

func NewSubmissionRepository(gw infra.Gateway) *SubmissionRepository {
	return &SubmissionRepository{gw: gw}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *db_models.Submission) (*db_models.Submission, error) {
	var created db_models.Submission
	_, err := r.gw.FetchOne(ctx, &created, `
		INSERT INTO submissions (id, name, phone, email, goal, message, trainer, plan, intent, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING *`,
		s.ID, s.Name, s.Phone, s.Email, s.Goal, s.Message, s.Trainer, s.Plan, s.Intent, s.Status, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *SubmissionRepository) List(ctx context.Context) ([]db_models.Submission, error) {
	submissions := make([]db_models.Submission, 0)
	err := r.gw.FetchAll(ctx, &submissions, `SELECT * FROM submissions ORDER BY created_at DESC`)
	return submissions, err
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Submission, error) {
	var submission db_models.Submission
	found, err := r.gw.FetchOne(ctx, &submission, `SELECT * FROM submissions WHERE id = ? LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &submission, nil
}

func (r *SubmissionRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}, now time.Time) (*db_models.Submission, error) {
	query, args, err := NewUpdateBuilder("submissions", SubmissionMutableFields...).
		Always("updated_at = GREATEST(?, updated_at + interval '1 microsecond')", now).
		Build(fields, "id = ?", id)
	if err != nil {
		return nil, err
	}

	var updated db_models.Submission
	found, err := r.gw.FetchOne(ctx, &updated, query, args...)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &updated, nil
}

func (r *SubmissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.gw.Execute(ctx, `DELETE FROM submissions WHERE id = ?`, id)
	return err
}

// IsEmptyPatch reports whether err came from a patch without usable fields.
func IsEmptyPatch(err error) bool {
	return errors.Is(err, ErrEmptyPatch)
}
