package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profast/api"
	httpin "profast/internal/adapters/in/http"
	"profast/internal/core/application/authz"
	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/application/usecases/queries"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userToken  = "user-token"
	riderToken = "rider-token"
	adminToken = "admin-token"
)

type fakeAuthenticator map[string]authz.Principal

func (f fakeAuthenticator) Authenticate(_ context.Context, header string) (authz.Principal, error) {
	p, ok := f[strings.TrimPrefix(header, "Bearer ")]
	if !ok {
		return authz.Principal{}, errs.NewUnauthorizedError("invalid token")
	}
	return p, nil
}

var principals = fakeAuthenticator{
	userToken:  {Subject: "u1", Email: kernel.MustEmail("sender@example.com"), Role: user.RoleUser},
	riderToken: {Subject: "r1", Email: kernel.MustEmail("rider@example.com"), Role: user.RoleRider},
	adminToken: {Subject: "a1", Email: kernel.MustEmail("admin@example.com"), Role: user.RoleAdmin},
}

func newRouter(t *testing.T, h httpin.Handlers, cfg httpin.RouterConfig) *echo.Echo {
	t.Helper()
	e, err := httpin.NewRouter(httpin.NewServer(h), principals, cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return e
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

const parcelBody = `{
	"created_by": "sender@example.com",
	"title": "Books",
	"type": "non-document",
	"weight": 2.5,
	"cost": 150,
	"sender_name": "Alice", "sender_contact": "01700000000", "sender_region": "Dhaka",
	"sender_service_center": "Dhaka", "sender_address": "12 Road",
	"receiver_name": "Bob", "receiver_contact": "01800000000", "receiver_region": "Chattogram",
	"receiver_service_center": "Chattogram", "receiver_address": "3 Hill Lane"
}`

func TestRouter_PublicRoutes(t *testing.T) {
	e := newRouter(t, httpin.Handlers{}, httpin.RouterConfig{})

	rec := do(e, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Parcel Server is Running", rec.Body.String())

	rec = do(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRouter_Authentication(t *testing.T) {
	e := newRouter(t, httpin.Handlers{}, httpin.RouterConfig{})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/parcels?email=sender@example.com", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, decode[httpin.ErrorResponse](t, rec).Message, "invalid token")
	})

	t.Run("user on an admin route is forbidden", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/riders/pending", userToken, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("user on a rider route is forbidden", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/rider/earnings", userToken, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRouter_CreateParcel(t *testing.T) {
	var got commands.CreateParcelCommand
	h := httpin.Handlers{
		CreateParcel: httpin.HandlerFunc[commands.CreateParcelCommand, ports.WriteResult](
			func(_ context.Context, cmd commands.CreateParcelCommand) (ports.WriteResult, error) {
				got = cmd
				return ports.WriteResult{InsertedID: cmd.ParcelID().String()}, nil
			}),
	}
	e := newRouter(t, h, httpin.RouterConfig{})

	t.Run("creates for the caller", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/parcels", userToken, parcelBody)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		resp := decode[httpin.WriteResponse](t, rec)
		assert.True(t, resp.Acknowledged)
		assert.Equal(t, got.ParcelID().String(), resp.InsertedID)
		assert.Equal(t, "sender@example.com", got.CreatedBy().String())
		assert.Equal(t, "150.00", got.Details().Cost.String())
		assert.Equal(t, "Chattogram", got.Details().Receiver.ServiceCenter)
	})

	t.Run("cannot create on behalf of someone else", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/parcels", riderToken, parcelBody)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/parcels", userToken, `{"created_by":"sender@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[httpin.ErrorResponse](t, rec).Message, "sender_name")
	})
}

func TestRouter_ListParcelsScope(t *testing.T) {
	var got queries.ListParcelsQuery
	h := httpin.Handlers{
		ListParcels: httpin.HandlerFunc[queries.ListParcelsQuery, []queries.ParcelView](
			func(_ context.Context, q queries.ListParcelsQuery) ([]queries.ParcelView, error) {
				got = q
				return nil, nil
			}),
	}
	e := newRouter(t, h, httpin.RouterConfig{})

	t.Run("user must name their own email", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do(e, http.MethodGet, "/parcels", userToken, "").Code)
		assert.Equal(t, http.StatusForbidden, do(e, http.MethodGet, "/parcels?email=other@example.com", userToken, "").Code)
	})

	t.Run("own email lists an empty array", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/parcels?email=sender@example.com", userToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		require.NotNil(t, got.CreatedBy())
		assert.Equal(t, "sender@example.com", got.CreatedBy().String())
	})

	t.Run("admin lists everything", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/parcels", adminToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, got.CreatedBy())
	})
}

func TestRouter_PathIDs(t *testing.T) {
	e := newRouter(t, httpin.Handlers{}, httpin.RouterConfig{})

	rec := do(e, http.MethodDelete, "/parcels/not-a-uuid", userToken, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_RiderEarningsDefaultsToCaller(t *testing.T) {
	var got queries.RiderEarningsQuery
	h := httpin.Handlers{
		RiderEarnings: httpin.HandlerFunc[queries.RiderEarningsQuery, queries.EarningsView](
			func(_ context.Context, q queries.RiderEarningsQuery) (queries.EarningsView, error) {
				got = q
				return queries.EarningsView{}, nil
			}),
	}
	e := newRouter(t, h, httpin.RouterConfig{})

	rec := do(e, http.MethodGet, "/rider/earnings", riderToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rider@example.com", got.RiderEmail().String())

	rec = do(e, http.MethodGet, "/rider/earnings?email=other@example.com", riderToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_RecordTrackingEventCarriesCaller(t *testing.T) {
	var got commands.RecordTrackingEventCommand
	h := httpin.Handlers{
		RecordTrackingEvent: httpin.HandlerFunc[commands.RecordTrackingEventCommand, ports.WriteResult](
			func(_ context.Context, cmd commands.RecordTrackingEventCommand) (ports.WriteResult, error) {
				got = cmd
				return ports.WriteResult{InsertedID: "e1"}, nil
			}),
	}
	e := newRouter(t, h, httpin.RouterConfig{})
	parcelID := kernel.NewUUID()
	body := `{"parcel_id":"` + parcelID.String() + `","status":"reached hub"}`

	rec := do(e, http.MethodPost, "/parcels/track", adminToken, body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, got.ParcelID().IsEqual(parcelID))
	assert.Equal(t, "admin@example.com", got.Caller().String())
	assert.True(t, got.CallerIsAdmin())
	assert.Equal(t, "reached hub", got.Event().Status)
}

func TestRouter_CreateUser(t *testing.T) {
	exists := false
	h := httpin.Handlers{
		CreateUser: httpin.HandlerFunc[commands.CreateUserCommand, commands.CreateUserResult](
			func(_ context.Context, cmd commands.CreateUserCommand) (commands.CreateUserResult, error) {
				if exists {
					return commands.CreateUserResult{AlreadyExists: true}, nil
				}
				return commands.CreateUserResult{WriteResult: ports.WriteResult{InsertedID: "u-1"}}, nil
			}),
	}
	e := newRouter(t, h, httpin.RouterConfig{})
	body := `{"email":"sender@example.com","name":"Alice"}`

	rec := do(e, http.MethodPost, "/users", userToken, body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"insertedId":"u-1","inserted":true}`, rec.Body.String())

	exists = true
	rec = do(e, http.MethodPost, "/users", userToken, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"inserted":false,"message":"user already exists"}`, rec.Body.String())
}

func TestRouter_GetUserRole(t *testing.T) {
	h := httpin.Handlers{
		GetUserRole: httpin.HandlerFunc[queries.GetUserRoleQuery, user.Role](
			func(_ context.Context, q queries.GetUserRoleQuery) (user.Role, error) {
				if q.Email().String() == "rider@example.com" {
					return user.RoleRider, nil
				}
				return user.Guest, nil
			}),
	}
	e := newRouter(t, h, httpin.RouterConfig{})

	rec := do(e, http.MethodGet, "/users/rider@example.com/role", riderToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"role":"rider"}`, rec.Body.String())

	rec = do(e, http.MethodGet, "/users/nobody@example.com/role", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"role":"guest"}`, rec.Body.String())

	rec = do(e, http.MethodGet, "/users/admin@example.com/role", riderToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_DecideRiderReportsWarnings(t *testing.T) {
	h := httpin.Handlers{
		DecideRider: httpin.HandlerFunc[commands.DecideRiderCommand, commands.DecideRiderResult](
			func(context.Context, commands.DecideRiderCommand) (commands.DecideRiderResult, error) {
				return commands.DecideRiderResult{
					WriteResult: ports.WriteResult{MatchedCount: 1, ModifiedCount: 1},
					Warnings:    []string{"no user registered for rider@example.com"},
				}, nil
			}),
	}
	e := newRouter(t, h, httpin.RouterConfig{})
	target := "/riders/" + kernel.NewUUID().String()

	rec := do(e, http.MethodPatch, target, adminToken, `{"status":"active"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[httpin.WriteResponse](t, rec)
	require.NotNil(t, resp.ModifiedCount)
	assert.Equal(t, int64(1), *resp.ModifiedCount)
	assert.Equal(t, []string{"no user registered for rider@example.com"}, resp.Warnings)

	rec = do(e, http.MethodPatch, target, adminToken, `{"status":"pending"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", errs.NewObjectNotFoundError("parcel", "x"), http.StatusNotFound},
		{"conflict", errs.NewConflictError("parcel", "already paid"), http.StatusConflict},
		{"forbidden", errs.NewForbiddenError("not the assigned rider"), http.StatusForbidden},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := httpin.Handlers{
				CashoutParcel: httpin.HandlerFunc[commands.CashoutParcelCommand, ports.WriteResult](
					func(context.Context, commands.CashoutParcelCommand) (ports.WriteResult, error) {
						return ports.WriteResult{}, tt.err
					}),
			}
			e := newRouter(t, h, httpin.RouterConfig{})

			rec := do(e, http.MethodPatch, "/parcels/"+kernel.NewUUID().String()+"/cashout", riderToken, "")

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", decode[httpin.ErrorResponse](t, rec).Message)
			}
		})
	}
}

func TestRouter_OpenAPIValidation(t *testing.T) {
	h := httpin.Handlers{
		AdvanceDelivery: httpin.HandlerFunc[commands.AdvanceDeliveryCommand, ports.WriteResult](
			func(context.Context, commands.AdvanceDeliveryCommand) (ports.WriteResult, error) {
				return ports.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil
			}),
	}
	e := newRouter(t, h, httpin.RouterConfig{OpenAPISpec: api.Spec, ValidateRequests: true})
	target := "/rider/parcels/" + kernel.NewUUID().String()

	rec := do(e, http.MethodPatch, target, riderToken, `{"status":"teleported"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPatch, target, riderToken, `{"status":"on_transit"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_OpenAPIValidationRunsAfterAuthentication(t *testing.T) {
	e := newRouter(t, httpin.Handlers{}, httpin.RouterConfig{OpenAPISpec: api.Spec, ValidateRequests: true})
	target := "/rider/parcels/" + kernel.NewUUID().String()

	rec := do(e, http.MethodPatch, target, "", `{"status":"teleported"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodPatch, target, userToken, `{"status":"teleported"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodPost, "/parcels/track", "", `{"status":""}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
