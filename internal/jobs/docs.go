// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatch.
//
// # Available Jobs
//
// 1. RedispatchJob - Runs every 30 seconds to re-offer orders stuck in
// Created status to the current driver pool.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(redispatchHandler, 30*time.Second, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The redispatch sweep isolates failures per order: a version conflict on
// one order (for example a driver accepting it mid-sweep) is logged and the
// sweep continues with the rest of the batch.
package jobs
