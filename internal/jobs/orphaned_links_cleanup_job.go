package jobs

import (
	"context"
	"fmt"

	"orderdesk/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type OrphanedLinksRemover interface {
	Handle(ctx context.Context, cmd commands.RemoveOrphanedProductLinksCommand) (int64, error)
}

// OrphanedLinksCleanupJob deletes association rows whose order or product is gone.
type OrphanedLinksCleanupJob struct {
	handler  OrphanedLinksRemover
	purged   prometheus.Counter
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewOrphanedLinksCleanupJob(
	handler OrphanedLinksRemover, purged prometheus.Counter, schedule string, logger *zap.Logger,
) *OrphanedLinksCleanupJob {
	return &OrphanedLinksCleanupJob{
		handler:  handler,
		purged:   purged,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "orphaned_links_cleanup_job")),
	}
}

// Run performs one cleanup pass.
func (j *OrphanedLinksCleanupJob) Run(ctx context.Context) {
	removed, err := j.handler.Handle(ctx, commands.NewRemoveOrphanedProductLinksCommand())
	if err != nil {
		j.logger.Error("Orphaned product links cleanup failed", zap.Error(err))
		return
	}
	if removed == 0 {
		return
	}

	j.purged.Add(float64(removed))
	j.logger.Info("Orphaned product links removed", zap.Int64("count", removed))
}

func (j *OrphanedLinksCleanupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Orphaned product links cleanup job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running pass to finish.
func (j *OrphanedLinksCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Orphaned product links cleanup job stopped")
}
