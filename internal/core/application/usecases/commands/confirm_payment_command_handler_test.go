package commands_test

import (
	"errors"
	"testing"
	"time"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/core/domain/model/payment"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func confirmCommand(t *testing.T, parcelID kernel.UUID) commands.ConfirmPaymentCommand {
	t.Helper()
	amount, err := kernel.MoneyFromString("150")
	require.NoError(t, err)
	cmd, err := commands.NewConfirmPaymentCommand(
		kernel.NewUUID(), parcelID, senderEmail, amount, "card", "pi_3Nk", time.Now(),
	)
	require.NoError(t, err)
	return cmd
}

func TestConfirmPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	p := storedParcel(t, testParcel(t))
	cmd := confirmCommand(t, p.ID())

	parcels := new(MockParcelRepository)
	payments := new(MockPaymentRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcels).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		parcels.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		parcels.On("CompareAndSwap", ctx, p, parcel.State{
			Delivery: parcel.Pending, Payment: parcel.Unpaid, Cashout: parcel.NotCashed,
		}).Return(ports.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once(),
		payments.On("Add", ctx, mock.MatchedBy(func(rec *payment.Payment) bool {
			return rec.ID().IsEqual(cmd.PaymentID()) &&
				rec.ParcelID().IsEqual(p.ID()) &&
				rec.TransactionID() == "pi_3Nk" &&
				rec.Amount().String() == "150.00"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	res, err := commands.NewConfirmPaymentCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cmd.PaymentID().String(), res.Payment.InsertedID)
	assert.Equal(t, int64(1), res.Parcel.ModifiedCount)
	assert.Equal(t, parcel.Paid, p.PaymentStatus())
	parcels.AssertExpectations(t)
	payments.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_UnknownParcel(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd := confirmCommand(t, id)

	parcels := new(MockParcelRepository)
	payments := new(MockPaymentRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcels).Once()
	uow.On("PaymentRepository").Return(payments).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	parcels.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("parcel", id.String())).Once()

	_, err := commands.NewConfirmPaymentCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	payments.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestConfirmPaymentCommandHandler_Handle_AlreadyPaid(t *testing.T) {
	ctx := t.Context()
	paid := testParcel(t)
	require.NoError(t, paid.MarkPaid(senderEmail, time.Now()))
	p := storedParcel(t, paid)
	cmd := confirmCommand(t, p.ID())

	parcels := new(MockParcelRepository)
	payments := new(MockPaymentRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcels).Once()
	uow.On("PaymentRepository").Return(payments).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()

	_, err := commands.NewConfirmPaymentCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	payments.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestConfirmPaymentCommandHandler_Handle_PaymentInsertFailsRollsBack(t *testing.T) {
	ctx := t.Context()
	p := storedParcel(t, testParcel(t))
	cmd := confirmCommand(t, p.ID())

	parcels := new(MockParcelRepository)
	payments := new(MockPaymentRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcels).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		parcels.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		parcels.On("CompareAndSwap", ctx, p, mock.Anything).
			Return(ports.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once(),
		payments.On("Add", ctx, mock.Anything).Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := commands.NewConfirmPaymentCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "insert error")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertCalled(t, "Rollback", ctx)
}

func TestNewConfirmPaymentCommand_Validation(t *testing.T) {
	_, err := commands.NewConfirmPaymentCommand(
		kernel.NewUUID(), kernel.NewUUID(), senderEmail, kernel.ZeroMoney(), "card", " ", time.Time{},
	)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
