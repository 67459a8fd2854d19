// Package jobs provides scheduled background tasks for the forwarding service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules and
// never take part in request handling.
//
// # Available Jobs
//
// CarrierDocumentExpiryJob runs daily by default ("0 0 6 * * *") and logs a
// warning for every carrier whose insurance or licence runs out within the
// configured window, already expired documents included.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&checkHandler, cfg.CarrierExpirySchedule, cfg.CarrierExpiryWindow, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An invalid schedule makes StartAll fail. Errors of a single run are logged
// and the next run proceeds as scheduled.
package jobs
