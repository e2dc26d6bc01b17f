package http

import (
	"net/http"
	"time"

	"profast/internal/core/application/authz"
	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/application/usecases/queries"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/core/domain/model/rider"
	"profast/internal/core/domain/model/user"
	"profast/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server translates HTTP requests into commands and queries. Authentication and
// role checks run as route middleware; Self checks that depend on request data
// run in the handlers.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

func (s *Server) Root(c echo.Context) error {
	return c.String(http.StatusOK, "Parcel Server is Running")
}

func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// CreateParcel handles POST /parcels. The body's created_by must be the caller.
func (s *Server) CreateParcel(c echo.Context) error {
	var req NewParcelRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	p := principal(c)
	if err := authz.RequireSelf(p, req.CreatedBy); err != nil {
		return err
	}

	cost, err := kernel.NewMoney(req.Cost)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), p.Email, parcel.Details{
		Title:  req.Title,
		Kind:   parcel.Kind(req.Type),
		Weight: req.Weight,
		Cost:   cost,
		Sender: parcel.Party{
			Name:          req.SenderName,
			Contact:       req.SenderContact,
			Region:        req.SenderRegion,
			ServiceCenter: req.SenderServiceCenter,
			Address:       req.SenderAddress,
		},
		Receiver: parcel.Party{
			Name:          req.ReceiverName,
			Contact:       req.ReceiverContact,
			Region:        req.ReceiverRegion,
			ServiceCenter: req.ReceiverServiceCenter,
			Address:       req.ReceiverAddress,
		},
	})
	if err != nil {
		return err
	}

	res, err := s.h.CreateParcel.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inserted(res))
}

// ListParcels handles GET /parcels. Only admins may list without an email filter
// or with someone else's email.
func (s *Server) ListParcels(c echo.Context) error {
	email, err := queryParam(c, "email")
	if err != nil {
		return err
	}
	paymentStatus, err := queryParam(c, "payment_status")
	if err != nil {
		return err
	}
	deliveryStatus, err := queryParam(c, "delivery_status")
	if err != nil {
		return err
	}
	if err = requireScope(principal(c), email); err != nil {
		return err
	}

	query, err := queries.NewListParcelsQuery(email, paymentStatus, deliveryStatus)
	if err != nil {
		return err
	}
	views, err := s.h.ListParcels.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parcelResponses(views))
}

func (s *Server) GetParcel(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetParcelQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetParcel.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parcelResponse(view))
}

func (s *Server) DeleteParcel(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	p := principal(c)
	cmd, err := commands.NewDeleteParcelCommand(id, p.Email, p.IsAdmin())
	if err != nil {
		return err
	}
	res, err := s.h.DeleteParcel.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleted(res))
}

// AssignRider handles PATCH /parcels/:id (admin).
func (s *Server) AssignRider(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req AssignRiderRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAssignRiderCommand(id, riderID, principal(c).Email)
	if err != nil {
		return err
	}
	res, err := s.h.AssignRider.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated(res))
}

// CashoutParcel handles PATCH /parcels/:id/cashout (rider).
func (s *Server) CashoutParcel(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewCashoutParcelCommand(id, principal(c).Email)
	if err != nil {
		return err
	}
	res, err := s.h.CashoutParcel.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated(res))
}

func (s *Server) ListTrackingEvents(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewListTrackingEventsQuery(id)
	if err != nil {
		return err
	}
	events, err := s.h.ListTrackingEvents.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trackingResponses(events))
}

// RecordTrackingEvent handles POST /parcels/track. The caller is recorded as the author
// and the entry carries the stored parcel's tracking id.
func (s *Server) RecordTrackingEvent(c echo.Context) error {
	var req TrackingEventRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return err
	}
	p := principal(c)
	cmd, err := commands.NewRecordTrackingEventCommand(
		parcelID, req.Status, req.Location, req.Details, p.Email, p.IsAdmin(),
	)
	if err != nil {
		return err
	}
	res, err := s.h.RecordTrackingEvent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inserted(res))
}

// AdvanceDelivery handles PATCH /rider/parcels/:id (rider).
func (s *Server) AdvanceDelivery(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req AdvanceDeliveryRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewAdvanceDeliveryCommand(id, principal(c).Email, req.Status)
	if err != nil {
		return err
	}
	res, err := s.h.AdvanceDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated(res))
}

func (s *Server) ListActiveRiderParcels(c echo.Context) error {
	return s.listRiderParcels(c, queries.ActiveQueue)
}

func (s *Server) ListCompletedRiderParcels(c echo.Context) error {
	return s.listRiderParcels(c, queries.CompletedQueue)
}

func (s *Server) listRiderParcels(c echo.Context, queue queries.RiderQueue) error {
	email, err := riderEmail(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListRiderParcelsQuery(email, queue)
	if err != nil {
		return err
	}
	views, err := s.h.ListRiderParcels.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parcelResponses(views))
}

func (s *Server) RiderEarnings(c echo.Context) error {
	email, err := riderEmail(c)
	if err != nil {
		return err
	}
	query, err := queries.NewRiderEarningsQuery(email, time.Time{})
	if err != nil {
		return err
	}
	view, err := s.h.RiderEarnings.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, earningsResponse(view))
}

// ConfirmPayment handles POST /payments: the parcel is marked paid and the
// payment recorded in one transaction.
func (s *Server) ConfirmPayment(c echo.Context) error {
	var req PaymentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	p := principal(c)
	if err := authz.RequireSelfOrAdmin(p, req.Email); err != nil {
		return err
	}
	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return err
	}
	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return err
	}
	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return err
	}
	cmd, err := commands.NewConfirmPaymentCommand(
		kernel.NewUUID(), parcelID, email, amount, req.PaymentMethod, req.TransactionID, time.Now(),
	)
	if err != nil {
		return err
	}
	res, err := s.h.ConfirmPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, confirmPaymentResponse(res))
}

func (s *Server) ListPayments(c echo.Context) error {
	email, err := queryParam(c, "email")
	if err != nil {
		return err
	}
	if err = requireScope(principal(c), email); err != nil {
		return err
	}
	query, err := queries.NewListPaymentsQuery(email)
	if err != nil {
		return err
	}
	views, err := s.h.ListPayments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paymentResponses(views))
}

func (s *Server) CreatePaymentIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreatePaymentIntentCommand(amount, req.Currency)
	if err != nil {
		return err
	}
	intent, err := s.h.CreatePaymentIntent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"id": intent.ID, "clientSecret": intent.ClientSecret})
}

// CreateUser handles POST /users. Registering an email twice is not an error.
func (s *Server) CreateUser(c echo.Context) error {
	var req NewUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	p := principal(c)
	if err := authz.RequireSelf(p, req.Email); err != nil {
		return err
	}
	cmd, err := commands.NewCreateUserCommand(kernel.NewUUID(), p.Email, req.Name, req.PhotoURL)
	if err != nil {
		return err
	}
	res, err := s.h.CreateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	if res.AlreadyExists {
		no := false
		return c.JSON(http.StatusOK, WriteResponse{Acknowledged: true, Message: "user already exists", Inserted: &no})
	}
	resp := inserted(res.WriteResult)
	yes := true
	resp.Inserted = &yes
	return c.JSON(http.StatusCreated, resp)
}

// SearchUsers handles GET /users/search (admin).
func (s *Server) SearchUsers(c echo.Context) error {
	var fragment string
	if err := runtime.BindQueryParameter("form", true, true, "email", c.QueryParams(), &fragment); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("email", err)
	}
	query, err := queries.NewSearchUsersQuery(fragment)
	if err != nil {
		return err
	}
	views, err := s.h.SearchUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponses(views))
}

// ChangeUserRole handles PATCH /users/:id/role (admin).
func (s *Server) ChangeUserRole(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req ChangeRoleRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewChangeUserRoleCommand(id, req.Role)
	if err != nil {
		return err
	}
	res, err := s.h.ChangeUserRole.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated(res))
}

// GetUserRole handles GET /users/:email/role. Unknown emails report guest.
func (s *Server) GetUserRole(c echo.Context) error {
	var raw string
	if err := runtime.BindStyledParameterWithOptions("simple", "email", c.Param("email"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true},
	); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if err := authz.RequireSelfOrAdmin(principal(c), raw); err != nil {
		return err
	}
	email, err := kernel.NewEmail(raw)
	if err != nil {
		return err
	}
	query, err := queries.NewGetUserRoleQuery(email)
	if err != nil {
		return err
	}
	role, err := s.h.GetUserRole.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"role": role.String()})
}

// ApplyRider handles POST /riders. Callers apply for themselves only.
func (s *Server) ApplyRider(c echo.Context) error {
	var req RiderApplicationRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	p := principal(c)
	if err := authz.RequireSelf(p, req.Email); err != nil {
		return err
	}
	cmd, err := commands.NewApplyRiderCommand(kernel.NewUUID(), p.Email, rider.Profile{
		Name:             req.Name,
		Phone:            req.Phone,
		Age:              req.Age,
		Region:           req.Region,
		District:         req.District,
		NID:              req.NID,
		BikeBrand:        req.BikeBrand,
		BikeRegistration: req.BikeRegistration,
	})
	if err != nil {
		return err
	}
	res, err := s.h.ApplyRider.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inserted(res))
}

func (s *Server) ListPendingRiders(c echo.Context) error {
	return s.listRiders(c, rider.Pending)
}

func (s *Server) ListActiveRiders(c echo.Context) error {
	return s.listRiders(c, rider.Active)
}

func (s *Server) listRiders(c echo.Context, status rider.Status) error {
	query, err := queries.NewListRidersQuery(status)
	if err != nil {
		return err
	}
	views, err := s.h.ListRiders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, riderResponses(views))
}

// DecideRider handles PATCH /riders/:id (admin). A promotion that could not be
// applied is reported in warnings; the decision itself still stands.
func (s *Server) DecideRider(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req DecideRiderRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewDecideRiderCommand(id, req.Status)
	if err != nil {
		return err
	}
	res, err := s.h.DecideRider.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	resp := updated(res.WriteResult)
	resp.Warnings = res.Warnings
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) ListWarehouses(c echo.Context) error {
	warehouses, err := s.h.ListWarehouses.Handle(c.Request().Context(), queries.NewListWarehousesQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, warehouses)
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return err
	}
	return c.Validate(dst)
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	if err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true},
	); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}

// queryParam returns an optional query parameter, "" when absent.
func queryParam(c echo.Context, name string) (string, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}

// requireScope lets admins read everything and everyone else read their own
// records, which requires naming their email.
func requireScope(p authz.Principal, email string) error {
	if email == "" {
		return authz.RequireRole(p, user.RoleAdmin)
	}
	return authz.RequireSelfOrAdmin(p, email)
}

// riderEmail is the ?email of a rider route, defaulting to the caller. Riders
// only ever see their own queue.
func riderEmail(c echo.Context) (kernel.Email, error) {
	p := principal(c)
	raw, err := queryParam(c, "email")
	if err != nil {
		return kernel.Email{}, err
	}
	if raw == "" {
		return p.Email, nil
	}
	if err = authz.RequireSelf(p, raw); err != nil {
		return kernel.Email{}, err
	}
	return p.Email, nil
}
