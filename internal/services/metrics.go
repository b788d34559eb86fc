package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	visitsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlead_visits_recorded_total",
		Help: "Page views written to the store",
	})

	visitsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlead_visits_dropped_total",
		Help: "Page views dropped because the queue was full",
	})

	visitWriteErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlead_visit_write_errors_total",
		Help: "Page views that failed to insert",
	})

	sessionsPurged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitlead_sessions_purged_total",
		Help: "Expired sessions removed by the janitor",
	})
)
