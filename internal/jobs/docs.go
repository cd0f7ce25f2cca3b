// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field form with a leading seconds column.
//
// # Available Jobs
//
// TransitionReportJob lists parcels whose launch or arrival date has passed,
// logs each one and publishes the count per status as a gauge. It runs
// hourly unless TRANSITION_REPORT_SCHEDULE says otherwise.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(awaitingHandler, collector, config.TransitionReportSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and retried on the next tick. An invalid cron
// expression fails StartAll.
package jobs
