package services_test

import (
	"testing"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/core/domain/model/rider"
	"profast/internal/core/domain/services"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin = kernel.MustEmail("admin@example.com")
	now   = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
)

func newParcel(t *testing.T, senderCenter, receiverCenter, cost string) *parcel.Parcel {
	t.Helper()
	amount, err := kernel.MoneyFromString(cost)
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.MustEmail("sender@example.com"), parcel.Details{
		Title:  "Shoes",
		Kind:   parcel.KindNonDocument,
		Weight: 1.2,
		Cost:   amount,
		Sender: parcel.Party{
			Name: "Alice", Contact: "017", Region: "Dhaka", ServiceCenter: senderCenter, Address: "A",
		},
		Receiver: parcel.Party{
			Name: "Bob", Contact: "018", Region: "Dhaka", ServiceCenter: receiverCenter, Address: "B",
		},
	}, now)
	require.NoError(t, err)
	return p
}

func newRider(t *testing.T, email string) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), kernel.MustEmail(email), rider.Profile{
		Name: "Karim", Phone: "019", Age: 30, Region: "Dhaka", District: "Dhaka",
		NID: "123", BikeBrand: "Yamaha", BikeRegistration: "DM-1",
	}, now)
	require.NoError(t, err)
	return r
}

func TestRiderAssigner_Assign(t *testing.T) {
	assigner := services.NewRiderAssigner()

	t.Run("active rider is assigned", func(t *testing.T) {
		p := newParcel(t, "Dhaka", "Dhaka", "100")
		r := newRider(t, "karim@example.com")
		require.NoError(t, r.Approve())

		err := assigner.Assign(p, r, admin, now)

		require.NoError(t, err)
		assert.Equal(t, parcel.RiderAssigned, p.DeliveryStatus())
		assert.True(t, p.Assignment().RiderID().IsEqual(r.ID()))
		assert.Equal(t, "019", p.Assignment().Phone())
	})

	t.Run("pending rider is a conflict and the parcel is unchanged", func(t *testing.T) {
		p := newParcel(t, "Dhaka", "Dhaka", "100")
		r := newRider(t, "karim@example.com")

		err := assigner.Assign(p, r, admin, now)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, parcel.Pending, p.DeliveryStatus())
		assert.Nil(t, p.Assignment())
	})

	t.Run("second assignment keeps the first rider", func(t *testing.T) {
		p := newParcel(t, "Dhaka", "Dhaka", "100")
		first := newRider(t, "karim@example.com")
		second := newRider(t, "jamal@example.com")
		require.NoError(t, first.Approve())
		require.NoError(t, second.Approve())
		require.NoError(t, assigner.Assign(p, first, admin, now))

		err := assigner.Assign(p, second, admin, now)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, p.IsAssignedTo(first.Email()))
	})

	t.Run("zero aggregates are rejected", func(t *testing.T) {
		require.ErrorIs(t, assigner.Assign(&parcel.Parcel{}, newRider(t, "a@b.c"), admin, now),
			parcel.ErrParcelIsNotConstructed)
		require.ErrorIs(t, assigner.Assign(newParcel(t, "Dhaka", "Dhaka", "1"), &rider.Rider{}, admin, now),
			rider.ErrRiderIsNotConstructed)
	})
}
