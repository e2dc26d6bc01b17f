package jobs

import (
	"fmt"
	"log/slog"
)

// DefaultSchedule runs the reconciliation jobs every five minutes.
const DefaultSchedule = "@every 5m"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentJob   *PaymentReconciliationJob
	riderRoleJob *RiderRoleReconciliationJob
}

// NewJobManager creates both reconciliation jobs on the same schedule. An empty
// schedule means DefaultSchedule.
func NewJobManager(
	finder PaymentMismatchFinder,
	reconciler RiderRoleReconciler,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &JobManager{
		paymentJob:   NewPaymentReconciliationJob(finder, schedule, logger),
		riderRoleJob: NewRiderRoleReconciliationJob(reconciler, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment reconciliation job: %w", err)
	}

	if err := jm.riderRoleJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.paymentJob.Stop()
		return fmt.Errorf("failed to start rider role reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running passes to finish.
func (jm *JobManager) StopAll() {
	jm.riderRoleJob.Stop()
	jm.paymentJob.Stop()
}
