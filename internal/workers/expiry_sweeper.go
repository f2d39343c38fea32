package workers

import (
	"context"
	"log/slog"
	"time"
)

type HazardExpirer interface {
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}

// ExpirySweeper flips overdue active hazards to expired on a fixed
// interval. The scoring snapshot is invalidated whenever a sweep
// actually expired something.
type ExpirySweeper struct {
	repo     HazardExpirer
	cache    SnapshotInvalidator
	logger   *slog.Logger
	interval time.Duration
}

func NewExpirySweeper(repo HazardExpirer, cache SnapshotInvalidator, logger *slog.Logger, interval time.Duration) *ExpirySweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ExpirySweeper{
		repo:     repo,
		cache:    cache,
		logger:   logger,
		interval: interval,
	}
}

func (w *ExpirySweeper) Run(ctx context.Context) {
	w.logger.Info("expirySweeper STARTED", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("expirySweeper STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ExpirySweeper) sweep(ctx context.Context) {
	expired, err := w.repo.ExpireDue(ctx, time.Now().UTC())
	if err != nil {
		w.logger.Error("expiry sweep failed", slog.Any("error", err))
		return
	}
	if expired == 0 {
		return
	}

	w.logger.Info("hazards expired", slog.Int64("count", expired))

	if w.cache != nil {
		if err := w.cache.Invalidate(ctx); err != nil {
			w.logger.Warn("snapshot invalidation failed", slog.Any("error", err))
		}
	}
}
