// Package http exposes the parcel delivery use cases over REST with echo.
package http

import (
	"context"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/application/usecases/queries"
	"profast/internal/core/domain/model/tracking"
	"profast/internal/core/domain/model/user"
	"profast/internal/core/domain/model/warehouse"
	"profast/internal/core/ports"
)

// Handler is any command or query handler.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f HandlerFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// Handlers are the use cases the server dispatches to.
type Handlers struct {
	CreateParcel        Handler[commands.CreateParcelCommand, ports.WriteResult]
	DeleteParcel        Handler[commands.DeleteParcelCommand, ports.WriteResult]
	AssignRider         Handler[commands.AssignRiderCommand, ports.WriteResult]
	AdvanceDelivery     Handler[commands.AdvanceDeliveryCommand, ports.WriteResult]
	CashoutParcel       Handler[commands.CashoutParcelCommand, ports.WriteResult]
	RecordTrackingEvent Handler[commands.RecordTrackingEventCommand, ports.WriteResult]
	ConfirmPayment      Handler[commands.ConfirmPaymentCommand, commands.ConfirmPaymentResult]
	CreatePaymentIntent Handler[commands.CreatePaymentIntentCommand, ports.PaymentIntent]
	CreateUser          Handler[commands.CreateUserCommand, commands.CreateUserResult]
	ChangeUserRole      Handler[commands.ChangeUserRoleCommand, ports.WriteResult]
	ApplyRider          Handler[commands.ApplyRiderCommand, ports.WriteResult]
	DecideRider         Handler[commands.DecideRiderCommand, commands.DecideRiderResult]

	ListParcels        Handler[queries.ListParcelsQuery, []queries.ParcelView]
	GetParcel          Handler[queries.GetParcelQuery, queries.ParcelView]
	ListRiderParcels   Handler[queries.ListRiderParcelsQuery, []queries.ParcelView]
	RiderEarnings      Handler[queries.RiderEarningsQuery, queries.EarningsView]
	ListTrackingEvents Handler[queries.ListTrackingEventsQuery, []tracking.Event]
	ListPayments       Handler[queries.ListPaymentsQuery, []queries.PaymentView]
	SearchUsers        Handler[queries.SearchUsersQuery, []queries.UserView]
	GetUserRole        Handler[queries.GetUserRoleQuery, user.Role]
	ListRiders         Handler[queries.ListRidersQuery, []queries.RiderView]
	ListWarehouses     Handler[queries.ListWarehousesQuery, []warehouse.Warehouse]
}
