package user_test

import (
	"testing"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), kernel.MustEmail("a@example.com"), "A", "", time.Now())

	require.NoError(t, err)
	require.NoError(t, u.Validate())
	assert.Equal(t, user.RoleUser, u.Role())
	assert.Equal(t, u.CreatedAt(), u.LastLogIn())

	_, err = user.NewUser(kernel.NewUUID(), kernel.Email{}, "A", "", time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUser_Roles(t *testing.T) {
	newUser := func(t *testing.T) *user.User {
		t.Helper()
		u, err := user.NewUser(kernel.NewUUID(), kernel.MustEmail("a@example.com"), "A", "", time.Now())
		require.NoError(t, err)
		return u
	}

	t.Run("promote user to rider", func(t *testing.T) {
		u := newUser(t)

		assert.True(t, u.PromoteToRider())
		assert.Equal(t, user.RoleRider, u.Role())
		assert.False(t, u.PromoteToRider())
	})

	t.Run("admins keep their role on promotion", func(t *testing.T) {
		u := newUser(t)
		_, err := u.ChangeRole(user.RoleAdmin)
		require.NoError(t, err)

		assert.False(t, u.PromoteToRider())
		assert.Equal(t, user.RoleAdmin, u.Role())
	})

	t.Run("change role reports no-op", func(t *testing.T) {
		u := newUser(t)

		changed, err := u.ChangeRole(user.RoleUser)

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("guest cannot be assigned", func(t *testing.T) {
		_, err := newUser(t).ChangeRole(user.Guest)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("parse persisted roles only", func(t *testing.T) {
		r, err := user.ParseRole("admin")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, r)

		_, err = user.ParseRole("guest")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
