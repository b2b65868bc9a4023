package jobs

import (
	"fmt"

	"orderdesk/internal/pkg/metrics"

	"go.uber.org/zap"
)

// Schedules holds six-field cron expressions (seconds first).
type Schedules struct {
	OrphanCleanup string
	OrderStats    string
}

var DefaultSchedules = Schedules{
	OrphanCleanup: "0 * * * * *",
	OrderStats:    "*/30 * * * * *",
}

// JobManager starts and stops every scheduled job.
type JobManager struct {
	orphanedLinksCleanupJob *OrphanedLinksCleanupJob
	orderStatsJob           *OrderStatsJob
}

func NewJobManager(
	removeOrphanedLinksHandler OrphanedLinksRemover,
	orderStatsHandler OrderStatsReader,
	m *metrics.Metrics,
	schedules Schedules,
	logger *zap.Logger,
) *JobManager {
	if schedules.OrphanCleanup == "" {
		schedules.OrphanCleanup = DefaultSchedules.OrphanCleanup
	}
	if schedules.OrderStats == "" {
		schedules.OrderStats = DefaultSchedules.OrderStats
	}

	return &JobManager{
		orphanedLinksCleanupJob: NewOrphanedLinksCleanupJob(
			removeOrphanedLinksHandler, m.OrphanedLinksPurged, schedules.OrphanCleanup, logger),
		orderStatsJob: NewOrderStatsJob(
			orderStatsHandler, m.OrdersTotal, m.ProductLinksTotal, schedules.OrderStats, logger),
	}
}

// StartAll starts every job. A failed start stops the jobs already running.
func (jm *JobManager) StartAll() error {
	if err := jm.orphanedLinksCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start orphaned links cleanup job: %w", err)
	}

	if err := jm.orderStatsJob.Start(); err != nil {
		jm.orphanedLinksCleanupJob.Stop()
		return fmt.Errorf("failed to start order stats job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
	jm.orphanedLinksCleanupJob.Stop()
}
