package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	apperrors "dad-circles-backend/internal/errors"
	"dad-circles-backend/internal/logger"
	"dad-circles-backend/internal/service"
)

// DefaultPassTimeout bounds one scheduled pass
const DefaultPassTimeout = 10 * time.Minute

// MatchScheduler runs a full matching pass on a fixed interval
type MatchScheduler struct {
	runner   service.MatchingServiceInterface
	interval time.Duration
	timeout  time.Duration
	log      *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMatchScheduler creates a scheduler. A non-positive interval disables it.
func NewMatchScheduler(runner service.MatchingServiceInterface, interval time.Duration) *MatchScheduler {
	return &MatchScheduler{
		runner:   runner,
		interval: interval,
		timeout:  DefaultPassTimeout,
		log:      logger.New().WithField("component", "match_scheduler"),
	}
}

// Enabled reports whether Start will run anything
func (s *MatchScheduler) Enabled() bool {
	return s.interval > 0
}

// Start begins the background loop; it is a no-op when disabled
func (s *MatchScheduler) Start(ctx context.Context) {
	if !s.Enabled() {
		s.log.Info("match scheduler disabled")
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.run(ctx)
	s.log.WithField("interval", s.interval.String()).Info("match scheduler started")
}

// Stop cancels the loop, including an in-flight pass, and waits for it to exit
func (s *MatchScheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.log.Info("match scheduler stopped")
}

func (s *MatchScheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *MatchScheduler) tick(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	summary, err := s.runner.RunPass(ctx, &service.RunPassRequest{})
	switch {
	case errors.Is(err, apperrors.ErrMatchingRunInProgress):
		s.log.Info("matching pass already running; skipped tick")
	case err != nil:
		s.log.WithError(err).Error("scheduled matching pass failed")
	default:
		s.log.WithFields(map[string]interface{}{
			"run_id": summary.RunID,
			"groups": len(summary.Groups),
		}).Debug("scheduled matching pass done")
	}
}
