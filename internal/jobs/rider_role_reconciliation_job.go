package jobs

import (
	"context"
	"log/slog"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// RiderRoleReconciler is satisfied by commands.ReconcileRiderRolesCommandHandler.
type RiderRoleReconciler interface {
	Handle(ctx context.Context, command commands.ReconcileRiderRolesCommand) ([]kernel.Email, error)
}

// RiderRoleReconciliationJob retries the role promotion of approved riders whose
// user still has the plain user role.
type RiderRoleReconciliationJob struct {
	reconciler RiderRoleReconciler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewRiderRoleReconciliationJob runs reconciler on every tick of schedule.
func NewRiderRoleReconciliationJob(
	reconciler RiderRoleReconciler,
	schedule string,
	logger *slog.Logger,
) *RiderRoleReconciliationJob {
	return &RiderRoleReconciliationJob{
		reconciler: reconciler,
		schedule:   schedule,
		cron:       cron.New(),
		logger:     logger.With("component", "rider_role_reconciliation_job"),
	}
}

// Start schedules the job. It returns immediately.
func (j *RiderRoleReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider role reconciliation job started", "schedule", j.schedule)
	return nil
}

// Run performs one pass and returns the emails that were promoted.
func (j *RiderRoleReconciliationJob) Run(ctx context.Context) []kernel.Email {
	promoted, err := j.reconciler.Handle(ctx, commands.NewReconcileRiderRolesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Rider role reconciliation failed", "error", err)
		return nil
	}

	for _, email := range promoted {
		j.logger.InfoContext(ctx, "promoted approved rider", "email", email.String())
	}
	return promoted
}

// Stop waits for a running tick to finish.
func (j *RiderRoleReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rider role reconciliation job stopped")
}
