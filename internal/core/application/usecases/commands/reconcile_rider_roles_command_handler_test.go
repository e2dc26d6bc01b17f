package commands_test

import (
	"errors"
	"testing"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
	"profast/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileRiderRolesCommandHandler_Handle(t *testing.T) {
	t.Run("promotes plain users only", func(t *testing.T) {
		ctx := t.Context()
		first := testUser(t, kernel.MustEmail("a@example.com"), user.RoleUser)
		admin := testUser(t, adminEmail, user.RoleAdmin)
		second := testUser(t, kernel.MustEmail("b@example.com"), user.RoleUser)

		repo := new(MockUserRepository)
		uow := new(MockUoW)
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(repo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("ListPromotable", ctx).Return([]*user.User{first, admin, second}, nil).Once()
		repo.On("Update", ctx, first).Return(ports.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once()
		repo.On("Update", ctx, second).Return(ports.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once()

		promoted, err := commands.NewReconcileRiderRolesCommandHandler(factory).
			Handle(ctx, commands.NewReconcileRiderRolesCommand())

		require.NoError(t, err)
		assert.Equal(t, []kernel.Email{first.Email(), second.Email()}, promoted)
		assert.Equal(t, user.RoleAdmin, admin.Role())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("nothing to do still commits", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockUserRepository)
		uow := new(MockUoW)
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(repo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("ListPromotable", ctx).Return([]*user.User{}, nil).Once()

		promoted, err := commands.NewReconcileRiderRolesCommandHandler(factory).
			Handle(ctx, commands.NewReconcileRiderRolesCommand())

		require.NoError(t, err)
		assert.Empty(t, promoted)
	})

	t.Run("update failure aborts the batch", func(t *testing.T) {
		ctx := t.Context()
		u := testUser(t, riderEmail, user.RoleUser)

		repo := new(MockUserRepository)
		uow := new(MockUoW)
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("ListPromotable", ctx).Return([]*user.User{u}, nil).Once()
		repo.On("Update", ctx, u).Return(ports.WriteResult{}, errors.New("deadlock detected")).Once()

		_, err := commands.NewReconcileRiderRolesCommandHandler(factory).
			Handle(ctx, commands.NewReconcileRiderRolesCommand())

		require.EqualError(t, err, "deadlock detected")
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
