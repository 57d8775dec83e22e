//go:build unit

package rejection_test

import (
	"testing"

	"marketplace-moderation/internal/domain/rejection"
	"marketplace-moderation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	catalog := rejection.Catalog()
	require.NotEmpty(t, catalog)

	seen := make(map[string]bool)
	for _, tpl := range catalog {
		assert.False(t, seen[tpl.ID], "duplicate template id %s", tpl.ID)
		seen[tpl.ID] = true
		assert.NotEmpty(t, tpl.Title)
		assert.NotEmpty(t, tpl.Text)
	}

	t.Run("catalog is a copy", func(t *testing.T) {
		catalog[0].Title = "mutated"
		assert.NotEqual(t, "mutated", rejection.Catalog()[0].Title)
	})
}

func TestByCategory(t *testing.T) {
	for _, tpl := range rejection.ByCategory(rejection.CategoryEvidence) {
		assert.Equal(t, rejection.CategoryEvidence, tpl.Category)
	}
	assert.NotEmpty(t, rejection.ByCategory(rejection.CategoryListing))
	assert.NotEmpty(t, rejection.ByCategory(rejection.CategoryPolicy))
}

func TestFind(t *testing.T) {
	t.Run("known id", func(t *testing.T) {
		tpl, err := rejection.Find("duplicateListing")
		require.NoError(t, err)
		assert.Equal(t, rejection.CategoryListing, tpl.Category)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := rejection.Find("nonexistent")
		assert.ErrorIs(t, err, errs.ErrMissingTemplate)
	})
}

func TestCompose(t *testing.T) {
	t.Run("template text alone", func(t *testing.T) {
		reason, tpl, err := rejection.Compose("duplicateListing", "")
		require.NoError(t, err)
		assert.Equal(t, tpl.Text, reason)
	})

	t.Run("detail is appended after the template text", func(t *testing.T) {
		reason, tpl, err := rejection.Compose("duplicateListing", "see ticket #42")
		require.NoError(t, err)
		assert.Equal(t, tpl.Text+" see ticket #42", reason)
	})

	t.Run("composition is deterministic", func(t *testing.T) {
		first, _, err := rejection.Compose("policyViolation", "repeated offense")
		require.NoError(t, err)
		second, _, err := rejection.Compose("policyViolation", "repeated offense")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("detail whitespace is trimmed", func(t *testing.T) {
		reason, tpl, err := rejection.Compose("evidenceMismatch", "  names differ  ")
		require.NoError(t, err)
		assert.Equal(t, tpl.Text+" names differ", reason)
	})

	t.Run("freeform templates require detail", func(t *testing.T) {
		_, _, err := rejection.Compose("evidenceMismatch", "")
		assert.ErrorIs(t, err, errs.ErrMissingTemplate)

		_, _, err = rejection.Compose("other", "   ")
		assert.ErrorIs(t, err, errs.ErrMissingTemplate)
	})

	t.Run("unknown template", func(t *testing.T) {
		_, _, err := rejection.Compose("nonexistent", "whatever")
		assert.ErrorIs(t, err, errs.ErrMissingTemplate)
	})
}
