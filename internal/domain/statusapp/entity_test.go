//go:build unit

package statusapp_test

import (
	"testing"
	"time"

	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/domain/vendor"
	"marketplace-moderation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDraft(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewStatusApplicationBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.VendorID, actual.VendorID())
		assert.Equal(t, statusapp.RequestActivate, actual.RequestType())
		assert.Equal(t, statusapp.DecisionPending, actual.Decision())
		assert.True(t, actual.IsPending())
		assert.Nil(t, actual.ReviewedBy())
		assert.Nil(t, actual.RejectionReason())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("invalid request type", func(t *testing.T) {
		b := builder.NewStatusApplicationBuilder().WithRequestType("publish")
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, statusapp.ErrInvalidRequestType)
	})
}

func TestIsDuplicateOf(t *testing.T) {
	app, err := builder.NewStatusApplicationBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("same type while pending is a duplicate", func(t *testing.T) {
		draft := builder.NewStatusApplicationBuilder().BuildDraft()
		assert.True(t, app.IsDuplicateOf(draft))
	})

	t.Run("different type is not a duplicate", func(t *testing.T) {
		draft := builder.NewStatusApplicationBuilder().AsHideRequest().BuildDraft()
		assert.False(t, app.IsDuplicateOf(draft))
	})

	t.Run("decided application never blocks resubmission", func(t *testing.T) {
		decided, err := builder.NewStatusApplicationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, decided.Approve(uuid.New(), time.Now()))

		draft := builder.NewStatusApplicationBuilder().BuildDraft()
		assert.False(t, decided.IsDuplicateOf(draft))
	})
}

func TestOverwriteWith(t *testing.T) {
	t.Run("identity and createdAt survive, decision resets", func(t *testing.T) {
		app, err := builder.NewStatusApplicationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, app.Reject(uuid.New(), "incomplete", time.Now()))

		origID := app.ID()
		origCreatedAt := app.CreatedAt()

		later := time.Now().Add(time.Hour)
		draft := builder.NewStatusApplicationBuilder().AsArchiveRequest().BuildDraft()
		require.NoError(t, app.OverwriteWith(draft, later))

		assert.Equal(t, origID, app.ID())
		assert.Equal(t, origCreatedAt, app.CreatedAt())
		assert.Equal(t, statusapp.RequestArchive, app.RequestType())
		assert.Equal(t, statusapp.DecisionPending, app.Decision())
		assert.Nil(t, app.ReviewedBy())
		assert.Nil(t, app.ReviewedAt())
		assert.Nil(t, app.RejectionReason())
		assert.Equal(t, later, app.UpdatedAt())
	})

	t.Run("invalid request type rejected", func(t *testing.T) {
		app, err := builder.NewStatusApplicationBuilder().BuildDomain()
		require.NoError(t, err)

		draft := builder.NewStatusApplicationBuilder().WithRequestType("").BuildDraft()
		assert.ErrorIs(t, app.OverwriteWith(draft, time.Now()), statusapp.ErrInvalidRequestType)
	})
}

func TestDecide(t *testing.T) {
	reviewerID := uuid.New()

	t.Run("approve records the reviewer", func(t *testing.T) {
		app, err := builder.NewStatusApplicationBuilder().BuildDomain()
		require.NoError(t, err)

		now := time.Now()
		require.NoError(t, app.Approve(reviewerID, now))

		assert.Equal(t, statusapp.DecisionApproved, app.Decision())
		require.NotNil(t, app.ReviewedBy())
		assert.Equal(t, reviewerID, *app.ReviewedBy())
		require.NotNil(t, app.ReviewedAt())
		assert.Equal(t, now, *app.ReviewedAt())
		assert.False(t, app.IsPending())
	})

	t.Run("reject records the composed reason", func(t *testing.T) {
		app, err := builder.NewStatusApplicationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, app.Reject(reviewerID, "The listing is missing required information.", time.Now()))

		assert.Equal(t, statusapp.DecisionRejected, app.Decision())
		require.NotNil(t, app.RejectionReason())
		assert.Equal(t, "The listing is missing required information.", *app.RejectionReason())
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		app, err := builder.NewStatusApplicationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, app.Reject(reviewerID, "", time.Now()), statusapp.ErrRejectionReasonEmpty)
	})

	t.Run("second decision fails", func(t *testing.T) {
		app, err := builder.NewStatusApplicationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, app.Approve(reviewerID, time.Now()))

		assert.ErrorIs(t, app.Approve(reviewerID, time.Now()), statusapp.ErrAlreadyDecided)
		assert.ErrorIs(t, app.Reject(reviewerID, "reason", time.Now()), statusapp.ErrAlreadyDecided)
	})
}

func TestAcceptTerms(t *testing.T) {
	app, err := builder.NewStatusApplicationBuilder().WithTermsVersion("2026-01").BuildDomain()
	require.NoError(t, err)

	now := time.Now().Add(time.Minute)
	app.AcceptTerms("2026-02", now)

	assert.Equal(t, "2026-02", app.TermsVersion())
	assert.Equal(t, now, app.AgreedAt())
	// decision cycle is untouched by a terms update
	assert.True(t, app.IsPending())
}

func TestRequestTypeTarget(t *testing.T) {
	assert.Equal(t, vendor.StatusActive, statusapp.RequestActivate.TargetStatus())
	assert.Equal(t, vendor.StatusHidden, statusapp.RequestHide.TargetStatus())
	assert.Equal(t, vendor.StatusArchived, statusapp.RequestArchive.TargetStatus())
}
