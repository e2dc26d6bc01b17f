package jobs

import (
	"context"
	"log/slog"

	"profast/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PaymentMismatchFinder is satisfied by queries.FindPaymentMismatchesQueryHandler.
type PaymentMismatchFinder interface {
	Handle(ctx context.Context, query queries.FindPaymentMismatchesQuery) ([]queries.PaymentMismatch, error)
}

// PaymentReconciliationJob logs a warning for every parcel whose payment status
// disagrees with the payment records. It never modifies data.
type PaymentReconciliationJob struct {
	finder   PaymentMismatchFinder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPaymentReconciliationJob logs the mismatches found by finder on every tick
// of schedule.
func NewPaymentReconciliationJob(finder PaymentMismatchFinder, schedule string, logger *slog.Logger) *PaymentReconciliationJob {
	return &PaymentReconciliationJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "payment_reconciliation_job"),
	}
}

// Start schedules Run.
func (j *PaymentReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job started", "schedule", j.schedule)
	return nil
}

// Run performs one reconciliation pass and returns the number of mismatches found.
func (j *PaymentReconciliationJob) Run(ctx context.Context) int {
	mismatches, err := j.finder.Handle(ctx, queries.NewFindPaymentMismatchesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment reconciliation failed", "error", err)
		return 0
	}

	for _, m := range mismatches {
		j.logger.WarnContext(ctx, "payment status mismatch",
			"parcel_id", m.ParcelID.String(),
			"tracking_id", m.TrackingID,
			"kind", string(m.Kind),
		)
	}
	return len(mismatches)
}

func (j *PaymentReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job stopped")
}
