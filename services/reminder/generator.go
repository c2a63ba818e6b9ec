package reminder

import (
	"context"
	"fmt"
	"time"

	"beacon/database/repository/events"
	"beacon/database/repository/notifications"
	"beacon/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Generator runs one reminder pass over upcoming events.
type Generator interface {
	Run(ctx context.Context) error
}

// DefaultGenerator is the production implementation. Now is swappable
// so tests can pin the window.
type DefaultGenerator struct {
	Events        eventsRepo.EventRepository
	Notifications notificationsRepo.NotificationRepository
	Now           func() time.Time
}

// Run selects events starting in [now+1h, now+2h], flags them as
// reminded in one atomic batch, and creates the fan-out notification
// records as independent concurrent writes. The flag batch and the
// creations are joined before returning; a failed creation surfaces in
// the run error but rolls nothing back.
func (g *DefaultGenerator) Run(ctx context.Context) error {
	logger := utils.GetLogger()

	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}

	events, err := g.Events.ListStartingBetween(ctx, now.Add(windowOffset), now.Add(windowOffset+windowWidth))
	if err != nil {
		return fmt.Errorf("reminder run: list events: %w", err)
	}

	plan := BuildPlan(now, events)
	if len(plan.FlagEventIDs) == 0 {
		logger.Debug("reminder run: nothing to do", zap.Int("eventsInWindow", len(events)))
		return nil
	}

	// Plain errgroup, no derived context: one failed write must not
	// cancel its siblings mid-flight.
	var grp errgroup.Group

	grp.Go(func() error {
		if err := g.Events.MarkReminded(ctx, plan.FlagEventIDs); err != nil {
			return fmt.Errorf("flag batch: %w", err)
		}
		return nil
	})

	for _, planned := range plan.Notifications {
		planned := planned
		grp.Go(func() error {
			if _, err := g.Notifications.Create(ctx, planned.Collection, planned.Record); err != nil {
				return fmt.Errorf("create notification for %s: %w", planned.Record.RecipientID, err)
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return fmt.Errorf("reminder run: %w", err)
	}

	logger.Info("reminder run complete",
		zap.Int("eventsFlagged", len(plan.FlagEventIDs)),
		zap.Int("notificationsCreated", len(plan.Notifications)))
	return nil
}
