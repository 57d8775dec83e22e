//go:build unit

package statusapp_test

import (
	"testing"

	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveActions(t *testing.T) {
	pendingActivate := func(t *testing.T) *statusapp.Application {
		t.Helper()
		app, err := builder.NewStatusApplicationBuilder().BuildDomain()
		require.NoError(t, err)
		return app
	}

	t.Run("no application on a pending listing", func(t *testing.T) {
		actions := statusapp.DeriveActions(vendor.StatusPending, nil)

		assert.True(t, actions.CanRequestActivate)
		assert.False(t, actions.CanRequestHide)
		assert.True(t, actions.CanRequestArchive)
		assert.False(t, actions.CanEditContent)
		assert.False(t, actions.CanDecide)
	})

	t.Run("pending activate blocks only its own type", func(t *testing.T) {
		actions := statusapp.DeriveActions(vendor.StatusHidden, pendingActivate(t))

		assert.False(t, actions.CanRequestActivate)
		assert.False(t, actions.CanRequestHide)
		assert.True(t, actions.CanRequestArchive)
		assert.False(t, actions.CanEditContent)
		assert.True(t, actions.CanDecide)
	})

	t.Run("active listing offers hide", func(t *testing.T) {
		actions := statusapp.DeriveActions(vendor.StatusActive, nil)

		assert.False(t, actions.CanRequestActivate)
		assert.True(t, actions.CanRequestHide)
		assert.True(t, actions.CanRequestArchive)
		assert.True(t, actions.CanEditContent)
	})

	t.Run("decided application no longer gates anything", func(t *testing.T) {
		app := pendingActivate(t)
		require.NoError(t, app.Approve(builder.NewUserBuilder().ID, app.CreatedAt()))
		actions := statusapp.DeriveActions(vendor.StatusActive, app)

		assert.True(t, actions.CanRequestHide)
		assert.True(t, actions.CanEditContent)
		assert.False(t, actions.CanDecide)
	})

	t.Run("archived listing is terminal", func(t *testing.T) {
		actions := statusapp.DeriveActions(vendor.StatusArchived, pendingActivate(t))
		assert.Equal(t, statusapp.Actions{}, actions)
	})
}
