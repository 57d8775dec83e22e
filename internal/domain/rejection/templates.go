package rejection

import (
	"strings"

	"marketplace-moderation/internal/pkg/errs"
)

// Category groups templates in the admin UI.
type Category string

const (
	CategoryListing  Category = "listing"
	CategoryEvidence Category = "evidence"
	CategoryPolicy   Category = "policy"
)

// Template is a canned rejection reason. Composition is deterministic
// given (template id, detail) so rejections stay reproducible.
type Template struct {
	ID                     string
	Category               Category
	Title                  string
	Text                   string
	RequiresFreeformDetail bool
}

var catalog = []Template{
	{
		ID:       "duplicateListing",
		Category: CategoryListing,
		Title:    "Duplicate listing",
		Text:     "This listing duplicates an existing vendor listing.",
	},
	{
		ID:       "incompleteListing",
		Category: CategoryListing,
		Title:    "Incomplete listing",
		Text:     "The listing is missing required information and cannot be reviewed.",
	},
	{
		ID:       "insufficientEvidence",
		Category: CategoryEvidence,
		Title:    "Insufficient evidence",
		Text:     "The submitted evidence does not establish authority over the brand.",
	},
	{
		ID:                     "evidenceMismatch",
		Category:               CategoryEvidence,
		Title:                  "Evidence mismatch",
		Text:                   "The submitted evidence does not match the registered brand.",
		RequiresFreeformDetail: true,
	},
	{
		ID:       "policyViolation",
		Category: CategoryPolicy,
		Title:    "Policy violation",
		Text:     "The application violates marketplace policy.",
	},
	{
		ID:                     "other",
		Category:               CategoryPolicy,
		Title:                  "Other",
		Text:                   "The application was rejected.",
		RequiresFreeformDetail: true,
	},
}

func Catalog() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

func ByCategory(c Category) []Template {
	var out []Template
	for _, t := range catalog {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

func Find(templateID string) (Template, error) {
	for _, t := range catalog {
		if t.ID == templateID {
			return t, nil
		}
	}
	return Template{}, errs.ErrMissingTemplate
}

// Compose builds the human-readable rejection reason: the template text,
// then the free-text detail when present.
func Compose(templateID, detail string) (string, Template, error) {
	t, err := Find(templateID)
	if err != nil {
		return "", Template{}, err
	}
	detail = strings.TrimSpace(detail)
	if t.RequiresFreeformDetail && detail == "" {
		return "", Template{}, errs.ErrMissingTemplate
	}
	if detail == "" {
		return t.Text, t, nil
	}
	return t.Text + " " + detail, t, nil
}
