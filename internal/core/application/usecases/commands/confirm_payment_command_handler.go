package commands

import (
	"context"

	"profast/internal/core/domain/model/payment"
	"profast/internal/core/ports"
)

// ConfirmPaymentResult reports both writes of a payment confirmation.
type ConfirmPaymentResult struct {
	Payment ports.WriteResult
	Parcel  ports.WriteResult
}

// ConfirmPaymentCommandHandler marks a parcel paid and inserts the Payment record in
// one transaction. Either both rows change or neither does:
//   - unknown parcel: errs.ErrObjectNotFound, no payment row
//   - parcel already paid: errs.ErrConflict, no payment row
//   - payment insert fails: the parcel update is rolled back
type ConfirmPaymentCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmPaymentCommandHandler returns a handler that updates the parcel and
// inserts the payment through one unit of work from uowFactory.
func NewConfirmPaymentCommandHandler(uowFactory UoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{uowFactory: uowFactory}
}

// Handle commits both writes or none. A reused transaction id is errs.ErrConflict.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, command ConfirmPaymentCommand) (ConfirmPaymentResult, error) {
	if err := command.Validate(); err != nil {
		return ConfirmPaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmPaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels := uow.ParcelRepository()
	payments := uow.PaymentRepository()

	p, err := parcels.Get(ctx, command.ParcelID())
	if err != nil {
		return ConfirmPaymentResult{}, err
	}

	if err = p.MarkPaid(command.Email(), command.PaidAt()); err != nil {
		return ConfirmPaymentResult{}, err
	}

	record, err := payment.NewPayment(
		command.PaymentID(),
		p.ID(),
		command.Email(),
		command.Amount(),
		command.Method(),
		command.TransactionID(),
		command.PaidAt(),
	)
	if err != nil {
		return ConfirmPaymentResult{}, err
	}

	parcelRes, err := parcels.CompareAndSwap(ctx, p, p.LoadedState())
	if err != nil {
		return ConfirmPaymentResult{}, err
	}

	if err = payments.Add(ctx, record); err != nil {
		return ConfirmPaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmPaymentResult{}, err
	}

	return ConfirmPaymentResult{
		Payment: ports.WriteResult{InsertedID: record.ID().String()},
		Parcel:  parcelRes,
	}, nil
}
