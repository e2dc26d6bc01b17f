// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3. Both
// jobs repair or report state that the request path leaves inconsistent.
//
// # Available Jobs
//
// 1. PaymentReconciliationJob - reports parcels whose payment status disagrees with the payment records
// 2. RiderRoleReconciliationJob - promotes users whose rider application was approved but whose role was not updated
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(mismatchFinder, roleReconciler, "@every 5m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule is a standard five-field cron expression or a descriptor such as
// "@every 5m". It comes from RECONCILE_SCHEDULE.
//
// # Error Handling
//
// - A failed run is logged and retried at the next tick
// - Failed job starts will stop any already running jobs
package jobs
