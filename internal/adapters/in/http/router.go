package http

import (
	"log/slog"

	"profast/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig tunes the ambient middleware.
type RouterConfig struct {
	// CORSOrigins lists allowed origins; empty allows any.
	CORSOrigins []string
	// OpenAPISpec, when set, serves /swagger/* from it.
	OpenAPISpec []byte
	// ValidateRequests checks requests against OpenAPISpec after authentication.
	ValidateRequests bool
}

// NewRouter wires every route of the API onto a new echo instance.
func NewRouter(s *Server, auth Authenticator, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))

	var validate []echo.MiddlewareFunc
	if len(cfg.OpenAPISpec) > 0 {
		if err := RegisterDocs(cfg.OpenAPISpec); err != nil {
			return nil, err
		}
		e.GET("/swagger/*", echoSwagger.WrapHandler)

		if cfg.ValidateRequests {
			v, err := OpenAPIValidator(cfg.OpenAPISpec)
			if err != nil {
				return nil, err
			}
			validate = append(validate, v)
		}
	}

	// guarded runs authentication, then the role check, then request validation.
	guarded := func(roles ...user.Role) []echo.MiddlewareFunc {
		chain := []echo.MiddlewareFunc{Authenticate(auth)}
		if len(roles) > 0 {
			chain = append(chain, RequireRole(roles...))
		}
		return append(chain, validate...)
	}
	admin := user.RoleAdmin
	rider := user.RoleRider

	e.GET("/", s.Root)
	e.GET("/health", s.Health)
	e.GET("/warehouses", s.ListWarehouses, validate...)

	e.POST("/parcels", s.CreateParcel, guarded()...)
	e.GET("/parcels", s.ListParcels, guarded()...)
	e.POST("/parcels/track", s.RecordTrackingEvent, guarded()...)
	e.GET("/parcels/:id", s.GetParcel, guarded()...)
	e.DELETE("/parcels/:id", s.DeleteParcel, guarded()...)
	e.PATCH("/parcels/:id", s.AssignRider, guarded(admin)...)
	e.PATCH("/parcels/:id/cashout", s.CashoutParcel, guarded(rider)...)
	e.GET("/parcels/:id/tracking", s.ListTrackingEvents, guarded()...)

	e.GET("/rider/parcels", s.ListActiveRiderParcels, guarded(rider)...)
	e.GET("/rider/completed-parcels", s.ListCompletedRiderParcels, guarded(rider)...)
	e.GET("/rider/earnings", s.RiderEarnings, guarded(rider)...)
	e.PATCH("/rider/parcels/:id", s.AdvanceDelivery, guarded(rider)...)

	e.POST("/payments", s.ConfirmPayment, guarded()...)
	e.GET("/payments", s.ListPayments, guarded()...)
	e.POST("/create-payment-intent", s.CreatePaymentIntent, guarded()...)

	e.POST("/users", s.CreateUser, guarded()...)
	e.GET("/users/search", s.SearchUsers, guarded(admin)...)
	e.PATCH("/users/:id/role", s.ChangeUserRole, guarded(admin)...)
	e.GET("/users/:email/role", s.GetUserRole, guarded()...)

	e.POST("/riders", s.ApplyRider, guarded()...)
	e.GET("/riders/pending", s.ListPendingRiders, guarded(admin)...)
	e.GET("/riders/active", s.ListActiveRiders, guarded(admin)...)
	e.PATCH("/riders/:id", s.DecideRider, guarded(admin)...)

	return e, nil
}
