package commands_test

import (
	"context"
	"errors"
	"testing"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"
	"profast/internal/core/domain/model/tracking"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// parcelReader returns a factory whose unit of work loads p, or fails with
// getErr when p is nil.
func parcelReader(ctx context.Context, id kernel.UUID, p *parcel.Parcel, getErr error) (*MockParcelUoWFactory, *MockUoW) {
	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	factory := new(MockParcelUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	if p != nil {
		repo.On("Get", ctx, id).Return(p, nil).Once()
	} else {
		repo.On("Get", ctx, id).Return(nil, getErr).Once()
	}

	return factory, uow
}

func TestRecordTrackingEventCommandHandler_Handle(t *testing.T) {
	t.Run("assigned rider appends with the stored tracking id", func(t *testing.T) {
		ctx := t.Context()
		p := assignedParcel(t)
		cmd, err := commands.NewRecordTrackingEventCommand(p.ID(), " picked_up ", "Dhaka hub", "", riderEmail, false)
		require.NoError(t, err)

		factory, uow := parcelReader(ctx, p.ID(), p, nil)
		repo := new(MockTrackingRepository)
		repo.On("Append", ctx, mock.MatchedBy(func(e tracking.Event) bool {
			return e.ParcelID.IsEqual(p.ID()) &&
				e.TrackingID == p.TrackingID() &&
				e.Status == "picked_up" &&
				e.UpdatedBy.IsEqual(riderEmail)
		})).Return("6710f0c2a1b2c3d4e5f60718", nil).Once()

		res, err := commands.NewRecordTrackingEventCommandHandler(factory, repo).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "6710f0c2a1b2c3d4e5f60718", res.InsertedID)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("sender and admin may record", func(t *testing.T) {
		for _, tc := range []struct {
			name    string
			caller  kernel.Email
			isAdmin bool
		}{
			{"sender", senderEmail, false},
			{"admin", adminEmail, true},
		} {
			t.Run(tc.name, func(t *testing.T) {
				ctx := t.Context()
				p := storedParcel(t, testParcel(t))
				cmd, _ := commands.NewRecordTrackingEventCommand(p.ID(), "note", "", "", tc.caller, tc.isAdmin)

				factory, _ := parcelReader(ctx, p.ID(), p, nil)
				repo := new(MockTrackingRepository)
				repo.On("Append", ctx, mock.Anything).Return("id", nil).Once()

				_, err := commands.NewRecordTrackingEventCommandHandler(factory, repo).Handle(ctx, cmd)

				require.NoError(t, err)
				repo.AssertExpectations(t)
			})
		}
	})

	t.Run("unknown parcel is not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewRecordTrackingEventCommand(id, "delivered", "", "", adminEmail, true)

		factory, _ := parcelReader(ctx, id, nil, errs.NewObjectNotFoundError("parcel", id.String()))
		repo := new(MockTrackingRepository)

		_, err := commands.NewRecordTrackingEventCommandHandler(factory, repo).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("unrelated caller is forbidden", func(t *testing.T) {
		ctx := t.Context()
		p := assignedParcel(t)
		cmd, _ := commands.NewRecordTrackingEventCommand(
			p.ID(), "delivered", "", "", kernel.MustEmail("stranger@example.com"), false,
		)

		factory, _ := parcelReader(ctx, p.ID(), p, nil)
		repo := new(MockTrackingRepository)

		_, err := commands.NewRecordTrackingEventCommandHandler(factory, repo).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		ctx := t.Context()
		p := assignedParcel(t)
		cmd, _ := commands.NewRecordTrackingEventCommand(p.ID(), "delivered", "", "", riderEmail, false)

		factory, _ := parcelReader(ctx, p.ID(), p, nil)
		repo := new(MockTrackingRepository)
		repo.On("Append", ctx, mock.Anything).Return("", errors.New("connection reset")).Once()

		_, err := commands.NewRecordTrackingEventCommandHandler(factory, repo).Handle(ctx, cmd)

		require.EqualError(t, err, "connection reset")
	})

	t.Run("status is required", func(t *testing.T) {
		_, err := commands.NewRecordTrackingEventCommand(kernel.NewUUID(), "  ", "", "", riderEmail, false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("struct literal is rejected", func(t *testing.T) {
		factory := new(MockParcelUoWFactory)
		repo := new(MockTrackingRepository)

		_, err := commands.NewRecordTrackingEventCommandHandler(factory, repo).
			Handle(t.Context(), commands.RecordTrackingEventCommand{})

		require.ErrorIs(t, err, commands.ErrRecordTrackingEventCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}
