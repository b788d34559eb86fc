package repositories

import (
	"context"

	"fitlead/internal/infra"
	"fitlead/internal/models/db_models"
	"fitlead/internal/models/response_models"
)

type VisitRepository interface {
	Insert(ctx context.Context, visit *db_models.Visit) error
	Recent(ctx context.Context, limit int) ([]db_models.Visit, error)
	Stats(ctx context.Context) (response_models.VisitStats, error)
}

type visitRepository struct {
	gw infra.Gateway
}

func NewVisitRepository(gw infra.Gateway) VisitRepository {
	return &visitRepository{gw: gw}
}

type visitStatsRow struct {
	TotalVisits    int64 `gorm:"column:total_visits"`
	UniqueVisitors int64 `gorm:"column:unique_visitors"`
}

func (r *visitRepository) Insert(ctx context.Context, visit *db_models.Visit) error {
	_, err := r.gw.Execute(ctx, `
		INSERT INTO visits (id, ip, path, user_agent, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		visit.ID, visit.IP, visit.Path, visit.UserAgent, visit.CreatedAt)
	return err
}

func (r *visitRepository) Recent(ctx context.Context, limit int) ([]db_models.Visit, error) {
	visits := make([]db_models.Visit, 0, limit)
	err := r.gw.FetchAll(ctx, &visits, `
		SELECT id, ip, path, user_agent, created_at
		FROM visits
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	return visits, err
}

func (r *visitRepository) Stats(ctx context.Context) (response_models.VisitStats, error) {
	var row visitStatsRow
	_, err := r.gw.FetchOne(ctx, &row, `
		SELECT COUNT(*) AS total_visits, COUNT(DISTINCT ip) AS unique_visitors
		FROM visits`)
	if err != nil {
		return response_models.VisitStats{}, err
	}
	return response_models.VisitStats{
		TotalVisits:    row.TotalVisits,
		UniqueVisitors: row.UniqueVisitors,
	}, nil
}
