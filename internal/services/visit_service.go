package services

import (
	"context"
	"path"
	"strings"

	"fitlead/internal/models/response_models"
	"fitlead/internal/repositories"
)

const (
	IndexPagePath   = "/index.html"
	recentVisitsMax = 100
)

// IsPageView decides whether a request is a page document rather than an
// API call or a static asset.
func IsPageView(method, urlPath string) bool {
	if method != "GET" {
		return false
	}
	if urlPath == "/api" || strings.HasPrefix(urlPath, "/api/") {
		return false
	}
	switch strings.ToLower(path.Ext(urlPath)) {
	case "", ".html", ".htm":
		return true
	default:
		return false
	}
}

func NormalizePagePath(urlPath string) string {
	if urlPath == "" || urlPath == "/" {
		return IndexPagePath
	}
	return urlPath
}

type VisitServiceInterface interface {
	Report(ctx context.Context) (*response_models.VisitReport, error)
}

type VisitService struct {
	repo repositories.VisitRepository
}

func NewVisitService(repo repositories.VisitRepository) VisitServiceInterface {
	return &VisitService{repo: repo}
}

func (s *VisitService) Report(ctx context.Context) (*response_models.VisitReport, error) {
	visits, err := s.repo.Recent(ctx, recentVisitsMax)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &response_models.VisitReport{
		Visits: visits,
		Stats:  stats,
	}, nil
}
