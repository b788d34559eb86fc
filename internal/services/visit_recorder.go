package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"fitlead/internal/models/db_models"
	"fitlead/internal/repositories"
)

const visitWriteTimeout = 5 * time.Second

type VisitEvent struct {
	IP        string
	Path      string
	UserAgent string
	At        time.Time
}

// VisitRecorder writes page views off the request path. Observe never
// blocks: when the queue is full the event is dropped. Write failures are
// logged and discarded.
type VisitRecorder struct {
	repo    repositories.VisitRepository
	logger  *zap.Logger
	queue   chan VisitEvent
	workers int

	wg       sync.WaitGroup
	mu       sync.RWMutex
	closed   bool
	stopOnce sync.Once
}

func NewVisitRecorder(repo repositories.VisitRepository, logger *zap.Logger, queueSize, workers int) *VisitRecorder {
	if queueSize < 1 {
		queueSize = 1
	}
	if workers < 1 {
		workers = 1
	}
	return &VisitRecorder{
		repo:    repo,
		logger:  logger,
		queue:   make(chan VisitEvent, queueSize),
		workers: workers,
	}
}

func (r *VisitRecorder) Start() {
	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.run()
	}
}

// Stop closes the queue and waits for the workers to drain it or for ctx to end.
func (r *VisitRecorder) Stop(ctx context.Context) error {
	r.stopOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		close(r.queue)
		r.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Observe reports whether the event was queued.
func (r *VisitRecorder) Observe(event VisitEvent) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return false
	}

	select {
	case r.queue <- event:
		return true
	default:
		visitsDropped.Inc()
		r.logger.Warn("visit queue full, dropping page view", zap.String("path", event.Path))
		return false
	}
}

func (r *VisitRecorder) run() {
	defer r.wg.Done()
	for event := range r.queue {
		r.write(event)
	}
}

func (r *VisitRecorder) write(event VisitEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), visitWriteTimeout)
	defer cancel()

	at := event.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	visit := &db_models.Visit{
		BaseModel: db_models.BaseModel{ID: db_models.NewID(), CreatedAt: at},
		IP:        event.IP,
		Path:      NormalizePagePath(event.Path),
		UserAgent: event.UserAgent,
	}

	if err := r.repo.Insert(ctx, visit); err != nil {
		visitWriteErrors.Inc()
		r.logger.Error("failed to log visit", zap.Error(err), zap.String("path", visit.Path))
		return
	}
	visitsRecorded.Inc()
}
