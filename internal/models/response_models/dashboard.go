package response_models

import "fitlead/internal/models/db_models"

type VisitStats struct {
	TotalVisits    int64 `json:"totalVisits"`
	UniqueVisitors int64 `json:"uniqueVisitors"`
}

type VisitReport struct {
	Visits []db_models.Visit `json:"visits"`
	Stats  VisitStats        `json:"stats"`
}
