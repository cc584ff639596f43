// internal/maintenance/retention.go
package maintenance

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Pruner trims a store down to its newest keep entries.
type Pruner interface {
	Prune(keep int) int
}

// RunAuditRetention blocks until ctx is done, pruning p to the latest keepN
// entries every day at hour:minute in tzName. An unknown zone falls back to
// local time.
func RunAuditRetention(ctx context.Context, p Pruner, keepN, hour, minute int, tzName string, logger *zap.Logger) error {
	if keepN <= 0 {
		keepN = 1000
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		logger.Warn("retention: unknown timezone, using local", zap.String("tz", tzName), zap.Error(err))
		loc = time.Local
	}

	for {
		next := NextRun(time.Now(), hour, minute, loc)
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			n := p.Prune(keepN)
			logger.Info("retention: audit log pruned", zap.Int("removed", n), zap.Int("keep", keepN))
		}
	}
}

// NextRun is the first hour:minute in loc strictly after now.
func NextRun(now time.Time, hour, minute int, loc *time.Location) time.Time {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
