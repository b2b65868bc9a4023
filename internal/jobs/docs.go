// Package jobs provides scheduled background tasks for the order desk service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// 1. OrphanedLinksCleanupJob - removes order_product_map rows whose order or product no longer
// exists and adds the count to the orphaned links counter
// 2. OrderStatsJob - publishes the number of orders and associations as gauges
//
// # Usage
//
//	jobManager := jobs.NewJobManager(removeOrphansHandler, statsHandler, m, jobs.DefaultSchedules, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failures of a single run are logged and the job keeps its schedule.
// A job that cannot be scheduled stops the jobs already started.
package jobs
