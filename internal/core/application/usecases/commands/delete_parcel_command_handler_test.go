package commands_test

import (
	"testing"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteParcelCommandHandler_Handle(t *testing.T) {
	t.Run("sender deletes a pending parcel", func(t *testing.T) {
		ctx := t.Context()
		p := storedParcel(t, testParcel(t))
		cmd, err := commands.NewDeleteParcelCommand(p.ID(), senderEmail, false)
		require.NoError(t, err)

		repo := new(MockParcelRepository)
		uow := new(MockUoW)
		factory := new(MockParcelUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ParcelRepository").Return(repo).Once(),
			repo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
			repo.On("Delete", ctx, p.ID(), p.LoadedState()).Return(int64(1), nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		res, err := commands.NewDeleteParcelCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(1), res.DeletedCount)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("missing parcel deletes nothing", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewDeleteParcelCommand(id, senderEmail, false)

		repo := new(MockParcelRepository)
		uow := new(MockUoW)
		factory := new(MockParcelUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ParcelRepository").Return(repo).Once(),
			repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("parcel", id.String())).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		res, err := commands.NewDeleteParcelCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Zero(t, res.DeletedCount)
	})

	t.Run("other users are forbidden", func(t *testing.T) {
		ctx := t.Context()
		p := storedParcel(t, testParcel(t))
		cmd, _ := commands.NewDeleteParcelCommand(p.ID(), kernel.MustEmail("x@example.com"), false)

		repo := new(MockParcelRepository)
		uow := new(MockUoW)
		factory := new(MockParcelUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ParcelRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("Get", ctx, p.ID()).Return(p, nil).Once()

		_, err := commands.NewDeleteParcelCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("assigned parcel is a conflict even for admins", func(t *testing.T) {
		ctx := t.Context()
		p := assignedParcel(t)
		cmd, _ := commands.NewDeleteParcelCommand(p.ID(), adminEmail, true)

		repo := new(MockParcelRepository)
		uow := new(MockUoW)
		factory := new(MockParcelUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ParcelRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("Get", ctx, p.ID()).Return(p, nil).Once()

		_, err := commands.NewDeleteParcelCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}
