package worker

import (
	"context"
	"time"

	"cryptostats-service/internal/application"
	infraconfig "cryptostats-service/internal/infrastructure/config"

	"go.uber.org/zap"
)

var _ application.Worker = (*Scheduler)(nil)

// Scheduler runs an import cycle on a fixed wall-clock cadence: ticks land on
// multiples of Interval since the Unix epoch (UTC).
type Scheduler struct {
	Importer application.QuoteImporter

	Interval     time.Duration
	CycleTimeout time.Duration
	RunOnStart   bool
	Log          *zap.Logger

	now func() time.Time
}

func (s *Scheduler) Start(ctx context.Context) {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	if s.Interval <= 0 {
		s.Interval = infraconfig.DefaultFetchInterval
	}
	if s.CycleTimeout <= 0 {
		s.CycleTimeout = infraconfig.DefaultFetchTimeout
	}
	now := s.now
	if now == nil {
		now = time.Now
	}

	if s.RunOnStart {
		s.runCycle(ctx, log)
	}

	next := nextTick(now(), s.Interval)
	t := time.NewTimer(next.Sub(now()))
	defer t.Stop()

	log.Info("scheduler_started", zap.Duration("interval", s.Interval), zap.Time("next_run", next))
	for {
		select {
		case <-ctx.Done():
			log.Info("scheduler_stopped")
			return
		case <-t.C:
			s.runCycle(ctx, log)
			next = nextTick(now(), s.Interval)
			t.Reset(next.Sub(now()))
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context, log *zap.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("scheduler.panic", zap.Any("r", r))
		}
	}()
	c, cancel := context.WithTimeout(ctx, s.CycleTimeout)
	defer cancel()

	start := time.Now()
	log.Info("scheduler.tick")
	saved, err := s.Importer.ImportAll(c)
	if err != nil {
		log.Error("scheduler.tick_failed", zap.Error(err), zap.Duration("took", time.Since(start)))
		return
	}
	log.Info("scheduler.tick_done", zap.Int("saved", len(saved)), zap.Duration("took", time.Since(start)))
}

// nextTick returns the first instant strictly after now that is a whole
// multiple of every since the Unix epoch, in UTC.
func nextTick(now time.Time, every time.Duration) time.Time {
	n, e := now.UnixNano(), int64(every)
	if e <= 0 {
		return now
	}
	k := n / e
	if n < 0 && n%e != 0 {
		k--
	}
	return time.Unix(0, (k+1)*e).UTC()
}
