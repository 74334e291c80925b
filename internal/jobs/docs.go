// Package jobs provides scheduled background tasks for the fleet service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
// None of them is part of the assignment path: the engine itself does all of
// its work synchronously inside requests.
//
// # Available Jobs
//
// CapacityAuditJob reads a consistent snapshot of all vehicles and their
// active orders and logs per-vehicle utilization. An over-capacity vehicle
// is a consistency bug and is logged at error level.
//
// # Usage
//
//	audit := jobs.NewCapacityAuditJob(getAllVehiclesHandler, cfg.AuditSchedule, logger)
//	jobManager := jobs.NewJobManager(audit)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
