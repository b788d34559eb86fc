package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fitlead/internal/models/db_models"
	"fitlead/internal/models/request_models"
	"fitlead/pkg/utils"
)

func strPtr(s string) *string { return &s }

func newTestSubmissionService(now time.Time) (*SubmissionService, *fakeSubmissionRepository) {
	repo := newFakeSubmissionRepository()
	svc := NewSubmissionService(repo).(*SubmissionService)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestSubmissionService_CreateAndGet(t *testing.T) {
	now := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestSubmissionService(now)
	ctx := context.Background()

	created, err := svc.Create(ctx, request_models.CreateSubmissionRequest{
		Name:    "Ann",
		Phone:   "+100",
		Goal:    "run a marathon",
		Email:   strPtr(""),
		Trainer: strPtr("Max"),
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.SubmissionStatusNew, created.Status)
	assert.Nil(t, created.Email)
	require.NotNil(t, created.Trainer)
	assert.Equal(t, "Max", *created.Trainer)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.UpdatedAt)

	got, err := svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestSubmissionService_CreateRequiresFields(t *testing.T) {
	svc, _ := newTestSubmissionService(time.Now())

	_, err := svc.Create(context.Background(), request_models.CreateSubmissionRequest{Name: "Ann", Phone: "+100"})
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, "Required fields: name, phone, goal", utils.PublicMessage(err, ""))
}

func TestSubmissionService_UpdateStatusAdvancesUpdatedAt(t *testing.T) {
	now := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	// clock does not move between create and update
	svc, _ := newTestSubmissionService(now)
	ctx := context.Background()

	created, err := svc.Create(ctx, request_models.CreateSubmissionRequest{Name: "Ann", Phone: "+100", Goal: "strength"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID.String(), request_models.UpdateSubmissionRequest{Status: strPtr("contacted")})
	require.NoError(t, err)
	assert.Equal(t, "contacted", updated.Status)
	assert.Equal(t, "Ann", updated.Name)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestSubmissionService_UpdateClearsOptionalField(t *testing.T) {
	svc, _ := newTestSubmissionService(time.Now().UTC())
	ctx := context.Background()

	created, err := svc.Create(ctx, request_models.CreateSubmissionRequest{Name: "Ann", Phone: "+1", Goal: "g", Plan: strPtr("gold")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID.String(), request_models.UpdateSubmissionRequest{Plan: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.Plan)
}

func TestSubmissionService_EmptyPatchRejected(t *testing.T) {
	repo := new(mockSubmissionRepository)
	svc := NewSubmissionService(repo)

	_, err := svc.Update(context.Background(), db_models.NewID().String(), request_models.UpdateSubmissionRequest{})
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, "No fields to update", utils.PublicMessage(err, ""))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmissionService_UpdateMissing(t *testing.T) {
	svc, _ := newTestSubmissionService(time.Now())

	_, err := svc.Update(context.Background(), db_models.NewID().String(), request_models.UpdateSubmissionRequest{Status: strPtr("won")})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.Update(context.Background(), "not-a-uuid", request_models.UpdateSubmissionRequest{Status: strPtr("won")})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestSubmissionService_GetInvalidIDSkipsStore(t *testing.T) {
	repo := new(mockSubmissionRepository)
	svc := NewSubmissionService(repo)

	_, err := svc.Get(context.Background(), "42")
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Equal(t, "Submission not found", utils.PublicMessage(err, ""))
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestSubmissionService_DeleteIsIdempotent(t *testing.T) {
	svc, repo := newTestSubmissionService(time.Now())
	ctx := context.Background()

	created, err := svc.Create(ctx, request_models.CreateSubmissionRequest{Name: "Ann", Phone: "+1", Goal: "g"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.String()))
	assert.Empty(t, repo.rows)

	assert.NoError(t, svc.Delete(ctx, created.ID.String()))
	assert.NoError(t, svc.Delete(ctx, db_models.NewID().String()))
	assert.NoError(t, svc.Delete(ctx, "not-a-uuid"))

	_, err = svc.Get(ctx, created.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestSubmissionService_ListPassesThrough(t *testing.T) {
	repo := new(mockSubmissionRepository)
	svc := NewSubmissionService(repo)
	rows := []db_models.Submission{{Name: "newest"}, {Name: "older"}}

	repo.On("List", mock.Anything).Return(rows, nil)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, list)
}
