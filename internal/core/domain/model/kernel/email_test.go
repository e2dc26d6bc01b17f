package kernel_test

import (
	"testing"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("should normalize case and whitespace", func(t *testing.T) {
		e, err := kernel.NewEmail("  Rider.One@Example.COM ")

		require.NoError(t, err)
		assert.Equal(t, "rider.one@example.com", e.String())
		assert.True(t, e.IsEqual(kernel.MustEmail("rider.one@example.com")))
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := kernel.NewEmail("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	invalid := []string{"rider", "@example.com", "rider@", "a@b@c", "ri der@example.com"}
	for _, s := range invalid {
		t.Run("should reject "+s, func(t *testing.T) {
			_, err := kernel.NewEmail(s)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}

	t.Run("zero value fails validation", func(t *testing.T) {
		var e kernel.Email

		assert.True(t, e.IsZero())
		require.Error(t, e.Validate())
	})
}
