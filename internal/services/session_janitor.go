package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const purgeTimeout = 30 * time.Second

// SessionJanitor periodically deletes expired sessions. A non-positive
// interval disables it.
type SessionJanitor struct {
	sessions SessionServiceInterface
	interval time.Duration
	logger   *zap.Logger

	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewSessionJanitor(sessions SessionServiceInterface, interval time.Duration, logger *zap.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

func (j *SessionJanitor) Start() {
	if j.interval <= 0 {
		return
	}
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.Sweep()
			case <-j.stop:
				return
			}
		}
	}()
}

func (j *SessionJanitor) Stop() {
	j.once.Do(func() { close(j.stop) })
	j.wg.Wait()
}

// Sweep runs one purge pass.
func (j *SessionJanitor) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	n, err := j.sessions.PurgeExpired(ctx)
	if err != nil {
		j.logger.Warn("failed to purge expired sessions", zap.Error(err))
		return
	}
	if n > 0 {
		sessionsPurged.Add(float64(n))
		j.logger.Info("purged expired sessions", zap.Int64("count", n))
	}
}
