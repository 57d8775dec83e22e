//go:build unit

package queries_test

import (
	"encoding/json"
	"testing"
	"time"

	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/usecase/queries"
	"marketplace-moderation/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// The views are the wire contract of the read side: serializing one and
// reading it back must not lose or alter any field.

func TestStatusApplicationViewJSONRoundTrip(t *testing.T) {
	reviewer := uuid.New()
	reviewedAt := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	reason := "duplicateListing: matches vnd-a1b2c3"

	view := builder.NewStatusApplicationBuilder().
		With(func(b *builder.StatusApplicationBuilder) {
			b.ReviewedBy = &reviewer
			b.ReviewedAt = &reviewedAt
			b.RejectionReason = &reason
		}).
		BuildView()

	data, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded queries.StatusApplicationView
	require.NoError(t, json.Unmarshal(data, &decoded))

	if diff := cmp.Diff(view, &decoded); diff != "" {
		t.Errorf("Status application view changed across serialization (-want +got):\n%s", diff)
	}
}

func TestRoleApplicationViewJSONRoundTrip(t *testing.T) {
	submittedAt := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	verifiedAt := submittedAt.Add(time.Hour)
	reviewer := uuid.New()
	note := "code visible on the channel"
	channel := "https://social.example/testbrand"
	code := "A7F3K9QZ"

	view := builder.NewRoleApplicationBuilder().
		WithStatus(roleapp.StatusPending).
		WithEvidence(roleapp.EvidenceItem{
			ID:               uuid.New(),
			Method:           roleapp.MethodCodePost,
			Status:           roleapp.EvidenceVerified,
			SubmittedAt:      &submittedAt,
			VerifiedAt:       &verifiedAt,
			ReviewedByUserID: &reviewer,
			ReviewNote:       &note,
			ChannelURL:       &channel,
			VerificationCode: &code,
		}).
		BuildView()

	data, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded queries.RoleApplicationView
	require.NoError(t, json.Unmarshal(data, &decoded))

	if diff := cmp.Diff(view, &decoded); diff != "" {
		t.Errorf("Role application view changed across serialization (-want +got):\n%s", diff)
	}
}
