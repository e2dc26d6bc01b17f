package commands_test

import (
	"context"
	"testing"
	"time"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/core/domain/model/payment"
	"profast/internal/core/domain/model/rider"
	"profast/internal/core/domain/model/tracking"
	"profast/internal/core/domain/model/user"
	"profast/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID, expected parcel.State) (int64, error) {
	args := m.Called(ctx, id, expected)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParcelRepository) CompareAndSwap(
	ctx context.Context,
	p *parcel.Parcel,
	expected parcel.State,
) (ports.WriteResult, error) {
	args := m.Called(ctx, p, expected)
	return args.Get(0).(ports.WriteResult), args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetByEmail(ctx context.Context, email kernel.Email) (*rider.Rider, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) CompareAndSwap(
	ctx context.Context,
	r *rider.Rider,
	expected rider.Status,
) (ports.WriteResult, error) {
	args := m.Called(ctx, r, expected)
	return args.Get(0).(ports.WriteResult), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) (ports.WriteResult, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(ports.WriteResult), args.Error(1)
}

func (m *MockUserRepository) ListPromotable(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Append(ctx context.Context, e tracking.Event) (string, error) {
	args := m.Called(ctx, e)
	return args.String(0), args.Error(1)
}

func (m *MockTrackingRepository) ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]tracking.Event, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracking.Event), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreatePaymentIntent(
	ctx context.Context,
	amount kernel.Money,
	currency string,
) (ports.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency)
	return args.Get(0).(ports.PaymentIntent), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockRiderUoWFactory struct{ mock.Mock }

func (m *MockRiderUoWFactory) Create() commands.RiderUoW {
	args := m.Called()
	return args.Get(0).(commands.RiderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

var (
	senderEmail = kernel.MustEmail("sender@example.com")
	riderEmail  = kernel.MustEmail("rider@example.com")
	adminEmail  = kernel.MustEmail("admin@example.com")
)

func testDetails(t *testing.T) parcel.Details {
	t.Helper()
	cost, err := kernel.MoneyFromString("150")
	require.NoError(t, err)
	return parcel.Details{
		Title:  "Books",
		Kind:   parcel.KindNonDocument,
		Weight: 2,
		Cost:   cost,
		Sender: parcel.Party{
			Name: "Alice", Contact: "017", Region: "Dhaka", ServiceCenter: "Dhaka", Address: "Road 1",
		},
		Receiver: parcel.Party{
			Name: "Bob", Contact: "018", Region: "Dhaka", ServiceCenter: "Gazipur", Address: "Road 2",
		},
	}
}

func testParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), senderEmail, testDetails(t), time.Now())
	require.NoError(t, err)
	return p
}

// storedParcel returns p as a repository would load it: same fields, no pending
// domain events and LoadedState equal to the current state.
func storedParcel(t *testing.T, p *parcel.Parcel) *parcel.Parcel {
	t.Helper()
	restored, err := parcel.RestoreParcel(p.Snapshot())
	require.NoError(t, err)
	return restored
}

func testRider(t *testing.T, status rider.Status) *rider.Rider {
	t.Helper()
	r, err := rider.RestoreRider(kernel.NewUUID(), riderEmail, rider.Profile{
		Name: "Rahim", Phone: "019", Age: 25, Region: "Dhaka", District: "Dhaka",
		NID: "42", BikeBrand: "Honda", BikeRegistration: "DM-LA-1",
	}, status, time.Now())
	require.NoError(t, err)
	return r
}

func assignedParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p := testParcel(t)
	a, err := testRider(t, rider.Active).AssignmentSnapshot()
	require.NoError(t, err)
	require.NoError(t, p.AssignRider(a, adminEmail, time.Now()))
	return storedParcel(t, p)
}

func deliveredParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p := assignedParcel(t)
	require.NoError(t, p.PickUp(riderEmail, time.Now()))
	require.NoError(t, p.Deliver(riderEmail, parcel.Delivered, time.Now()))
	return storedParcel(t, p)
}

func testUser(t *testing.T, email kernel.Email, role user.Role) *user.User {
	t.Helper()
	u, err := user.RestoreUser(kernel.NewUUID(), email, "Name", "", role, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}
