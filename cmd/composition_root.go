package cmd

import (
	"log/slog"

	httpin "profast/internal/adapters/in/http"
	"profast/internal/adapters/out/postgres"
	"profast/internal/adapters/out/postgres/userrepo"
	"profast/internal/core/application/authz"
	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/application/usecases/queries"
	"profast/internal/core/domain/services"
	"profast/internal/core/ports"
	"profast/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	tracking   ports.TrackingRepository
	gateway    ports.PaymentGateway
	verifier   ports.TokenVerifier
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. Parcel status events committed through
// the unit of work go to publisher.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	tracking ports.TrackingRepository,
	gateway ports.PaymentGateway,
	verifier ports.TokenVerifier,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		tracking:   tracking,
		gateway:    gateway,
		verifier:   verifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) riderUoWFactory() commands.RiderUoWFactory {
	return FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// Handlers builds every use case the HTTP adapter dispatches to.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	return httpin.Handlers{
		CreateParcel:        commands.NewCreateParcelCommandHandler(c.parcelUoWFactory()),
		DeleteParcel:        commands.NewDeleteParcelCommandHandler(c.parcelUoWFactory()),
		AssignRider:         commands.NewAssignRiderCommandHandler(c.uoWFactory()),
		AdvanceDelivery:     commands.NewAdvanceDeliveryCommandHandler(c.parcelUoWFactory()),
		CashoutParcel:       commands.NewCashoutParcelCommandHandler(c.parcelUoWFactory()),
		RecordTrackingEvent: commands.NewRecordTrackingEventCommandHandler(c.parcelUoWFactory(), c.tracking),
		ConfirmPayment:      commands.NewConfirmPaymentCommandHandler(c.uoWFactory()),
		CreatePaymentIntent: commands.NewCreatePaymentIntentCommandHandler(c.gateway),
		CreateUser:          commands.NewCreateUserCommandHandler(c.userUoWFactory()),
		ChangeUserRole:      commands.NewChangeUserRoleCommandHandler(c.userUoWFactory()),
		ApplyRider:          commands.NewApplyRiderCommandHandler(c.riderUoWFactory()),
		DecideRider:         commands.NewDecideRiderCommandHandler(c.riderUoWFactory(), c.logger),

		ListParcels:        queries.NewListParcelsQueryHandler(c.gormDB),
		GetParcel:          queries.NewGetParcelQueryHandler(c.gormDB),
		ListRiderParcels:   queries.NewListRiderParcelsQueryHandler(c.gormDB),
		RiderEarnings:      queries.NewRiderEarningsQueryHandler(c.gormDB, services.NewPayoutCalculator()),
		ListTrackingEvents: queries.NewListTrackingEventsQueryHandler(c.tracking),
		ListPayments:       queries.NewListPaymentsQueryHandler(c.gormDB),
		SearchUsers:        queries.NewSearchUsersQueryHandler(c.gormDB),
		GetUserRole:        queries.NewGetUserRoleQueryHandler(c.gormDB),
		ListRiders:         queries.NewListRidersQueryHandler(c.gormDB),
		ListWarehouses:     queries.NewListWarehousesQueryHandler(c.gormDB),
	}
}

// Authorizer resolves callers against the user table outside any transaction.
func (c *CompositionRoot) Authorizer() *authz.Authorizer {
	return authz.NewAuthorizer(c.verifier, userrepo.NewGormUserRepository(c.gormDB))
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewFindPaymentMismatchesQueryHandler(c.gormDB),
		commands.NewReconcileRiderRolesCommandHandler(c.userUoWFactory()),
		c.cfg.ReconcileCron,
		c.logger,
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
