//go:build e2e

package moderation_test

import (
	"fmt"
	"net/http"
	"testing"

	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/handler/dto/request"
	"marketplace-moderation/internal/handler/dto/response"
	"marketplace-moderation/internal/usecase/queries"
	"marketplace-moderation/tests/common/authtest"
	"marketplace-moderation/tests/common/builder"
	"marketplace-moderation/tests/common/dbtest"
	"marketplace-moderation/tests/common/httptest"
	"marketplace-moderation/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	vendorsURL       = "/api/vendors"
	submitURL        = "/api/vendors/%s/status-applications"
	currentAppURL    = "/api/vendors/%s/status-application"
	decisionURL      = "/api/status-applications/%s/decision"
	applyStatusURL   = "/api/status-applications/%s/apply-status"
	statusEventsURL  = "/api/status-applications/%s/events"
	pendingStatusURL = "/api/admin/status-applications"
)

type StatusApplicationSuite struct {
	e2e.SharedSuite
}

func TestStatusApplicationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StatusApplicationSuite))
}

// createListing registers a vendor listing through the API and returns its public ID.
func (s *StatusApplicationSuite) createListing(token, name string) string {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, vendorsURL,
		request.CreateListingRequest{Name: name}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreateListingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEmpty(t, created.PublicID)
	return created.PublicID
}

func (s *StatusApplicationSuite) submitApplication(token, publicID string) string {
	t := s.T()

	reqBody := builder.NewStatusApplicationBuilder().BuildSubmitRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost,
		fmt.Sprintf(submitURL, publicID), reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var submitted response.SubmitStatusApplicationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &submitted))
	return submitted.ApplicationID.String()
}

// =============================================================================
// TestActivationWorkflow - submit, approve and apply the vendor status
// =============================================================================

func (s *StatusApplicationSuite) TestActivationWorkflow() {
	s.Run("Normal case: approval activates the listing and records the audit trail", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleVendor))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		publicID := s.createListing(ownerToken, "Atelier Kiln")
		appID := s.submitApplication(ownerToken, publicID)

		// The admin queue shows the pending application
		qw := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingStatusURL, nil, adminToken)
		require.Equal(t, http.StatusOK, qw.Code)
		var queue response.StatusApplicationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, qw.Body, &queue))
		require.Len(t, queue.Items, 1)
		require.Equal(t, publicID, queue.Items[0].VendorPublicID)

		// Approve
		dw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(decisionURL, appID), map[string]any{"approve": true}, adminToken)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		// The listing is now active
		vw := httptest.PerformRequest(t, s.Router, http.MethodGet, vendorsURL+"/"+publicID, nil, "")
		require.Equal(t, http.StatusOK, vw.Code)
		var listing queries.VendorView
		require.NoError(t, httptest.DecodeResponseBody(t, vw.Body, &listing))
		require.Equal(t, "active", listing.Status)

		// The audit log is dense and ordered
		ew := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(statusEventsURL, appID), nil, ownerToken)
		require.Equal(t, http.StatusOK, ew.Code)
		var events response.StatusEventListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, ew.Body, &events))
		require.Len(t, events.Items, 3)
		for i, item := range events.Items {
			require.Equal(t, int64(i+1), item.Seq)
		}
		require.Equal(t, "submitted", events.Items[0].Type)
		require.Equal(t, "decidedApproved", events.Items[1].Type)
		require.Equal(t, "vendorStatusApplied", events.Items[2].Type)

		// The application view reflects the decided state
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(currentAppURL, publicID), nil, ownerToken)
		require.Equal(t, http.StatusOK, aw.Code)
		var view queries.StatusApplicationView
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &view))

		msg := "Please activate our listing"
		expected := &queries.StatusApplicationView{
			VendorPublicID:            publicID,
			RequestType:               "activate",
			CurrentStatusAtSubmission: "pending",
			Message:                   &msg,
			TermsVersion:              "2026-01",
			Decision:                  "approved",
			ListingStatus:             "active",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(queries.StatusApplicationView{},
				"ID", "VendorID", "ApplicantUserID", "AgreedAt",
				"ReviewedBy", "ReviewedAt", "CreatedAt", "UpdatedAt", "Actions"),
		}
		if diff := cmp.Diff(expected, &view, opts...); diff != "" {
			t.Errorf("Status application view mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: apply-status on an undecided application conflicts", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner9@example.com", string(user.RoleVendor))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin9@example.com", string(user.RoleAdmin))
		publicID := s.createListing(ownerToken, "Undecided Atelier")
		appID := s.submitApplication(ownerToken, publicID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(applyStatusURL, appID), nil, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not approved")
	})

	s.Run("Error case: duplicate pending application of the same type conflicts", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner2@example.com", string(user.RoleVendor))
		publicID := s.createListing(ownerToken, "Second Atelier")
		s.submitApplication(ownerToken, publicID)

		reqBody := builder.NewStatusApplicationBuilder().BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(submitURL, publicID), reqBody, ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "pending application")
	})

	s.Run("Error case: only the owner may apply", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner3@example.com", string(user.RoleVendor))
		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleVendor))
		publicID := s.createListing(ownerToken, "Third Atelier")

		reqBody := builder.NewStatusApplicationBuilder().BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(submitURL, publicID), reqBody, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Not allowed")
	})
}

// =============================================================================
// TestRejectionWorkflow - rejection requires a template and marks the listing
// =============================================================================

func (s *StatusApplicationSuite) TestRejectionWorkflow() {
	s.Run("Normal case: rejection composes the template into the stored reason", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleVendor))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		publicID := s.createListing(ownerToken, "Duplicate Shop")
		appID := s.submitApplication(ownerToken, publicID)

		dw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(decisionURL, appID),
			map[string]any{"approve": false, "template_id": "duplicateListing", "detail": "matches vnd-a1b2c3"},
			adminToken)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(currentAppURL, publicID), nil, ownerToken)
		require.Equal(t, http.StatusOK, aw.Code)
		var view queries.StatusApplicationView
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &view))
		require.Equal(t, "rejected", view.Decision)
		require.NotNil(t, view.RejectionReason)
		require.Contains(t, *view.RejectionReason, "matches vnd-a1b2c3")

		// A rejected activation marks the listing itself
		vw := httptest.PerformRequest(t, s.Router, http.MethodGet, vendorsURL+"/"+publicID, nil, "")
		var listing queries.VendorView
		require.NoError(t, httptest.DecodeResponseBody(t, vw.Body, &listing))
		require.Equal(t, "rejected", listing.Status)
	})

	s.Run("Error case: rejection without a template is refused", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner2@example.com", string(user.RoleVendor))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin2@example.com", string(user.RoleAdmin))

		publicID := s.createListing(ownerToken, "No Template Shop")
		appID := s.submitApplication(ownerToken, publicID)

		dw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(decisionURL, appID), map[string]any{"approve": false}, adminToken)
		httptest.AssertErrorResponse(t, dw, http.StatusBadRequest, "template")
	})

	s.Run("Error case: decide endpoints are admin only", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner3@example.com", string(user.RoleVendor))
		publicID := s.createListing(ownerToken, "Self Service Shop")
		appID := s.submitApplication(ownerToken, publicID)

		dw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(decisionURL, appID), map[string]any{"approve": true}, ownerToken)
		require.Equal(t, http.StatusForbidden, dw.Code)
	})
}

// =============================================================================
// TestResubmission - a different request type overwrites the current one
// =============================================================================

func (s *StatusApplicationSuite) TestResubmission() {
	s.Run("Normal case: rejected application can be resubmitted in place", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleVendor))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		publicID := s.createListing(ownerToken, "Retry Shop")
		appID := s.submitApplication(ownerToken, publicID)

		dw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(decisionURL, appID),
			map[string]any{"approve": false, "template_id": "incompleteListing"}, adminToken)
		require.Equal(t, http.StatusNoContent, dw.Code)

		// Same type again; the application row is reused
		reqBody := builder.NewStatusApplicationBuilder().BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(submitURL, publicID), reqBody, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resubmitted response.SubmitStatusApplicationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resubmitted))
		require.True(t, resubmitted.Resubmitted)
		require.Equal(t, appID, resubmitted.ApplicationID.String())

		// A pre-seeded vendor row works the same as one created over the API
		otherOwner := dbtest.CreateTestUser(t, s.DB, "seeded@example.com", string(user.RoleVendor))
		dbtest.CreateTestVendor(t, s.DB, "vnd-seeded01", otherOwner, "pending")
		seededToken := authtest.LoginUser(t, s.Router, "seeded@example.com", "password123")
		s.submitApplication(seededToken, "vnd-seeded01")
	})
}
