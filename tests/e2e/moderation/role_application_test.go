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
	"marketplace-moderation/tests/common/httptest"
	"marketplace-moderation/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registrationURL  = "/api/role-applications/me/registration"
	myApplicationURL = "/api/role-applications/me"
	evidenceURL      = "/api/role-applications/me/evidence"
	verifyURL        = "/api/role-applications/%s/evidence/%s/verify"
	approveURL       = "/api/role-applications/%s/approve"
	rejectURL        = "/api/role-applications/%s/reject"
	archiveURL       = "/api/role-applications/%s/archive"
	roleEventsURL    = "/api/role-applications/%s/events"
	pendingRolesURL  = "/api/admin/role-applications"
	templatesURL     = "/api/admin/rejection-templates"
	meURL            = "/api/auth/me"
)

type RoleApplicationSuite struct {
	e2e.SharedSuite
}

func TestRoleApplicationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RoleApplicationSuite))
}

func (s *RoleApplicationSuite) saveRegistration(token string) string {
	t := s.T()

	reqBody := builder.NewRoleApplicationBuilder().BuildSaveRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPut, registrationURL, reqBody, token)
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, w.Code, w.Body.String())

	var saved response.SaveRegistrationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &saved))
	return saved.ApplicationID.String()
}

func (s *RoleApplicationSuite) submitCodePostEvidence(token string) (appID, evidenceID, code string) {
	t := s.T()

	channel := "https://social.example/mybrand"
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, evidenceURL,
		request.SubmitEvidenceRequest{Method: "codePost", ChannelURL: &channel}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var submitted response.SubmitEvidenceResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &submitted))
	require.NotNil(t, submitted.VerificationCode, "codePost must hand back a verification code")
	return submitted.ApplicationID.String(), submitted.EvidenceID.String(), *submitted.VerificationCode
}

// =============================================================================
// TestUpgradeWorkflow - registration, evidence, verification, approval
// =============================================================================

func (s *RoleApplicationSuite) TestUpgradeWorkflow() {
	s.Run("Normal case: approved application upgrades the user to vendor", func() {
		t := s.T()

		applicantToken := authtest.CreateAndLogin(t, s.DB, s.Router, "applicant@example.com", string(user.RoleUser))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		s.saveRegistration(applicantToken)
		appID, evidenceID, _ := s.submitCodePostEvidence(applicantToken)

		// The admin queue shows the pending application
		qw := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingRolesURL, nil, adminToken)
		require.Equal(t, http.StatusOK, qw.Code)
		var queue response.RoleApplicationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, qw.Body, &queue))
		require.Len(t, queue.Items, 1)
		require.Equal(t, "applicant@example.com", queue.Items[0].ApplicantEmail)

		// Verify the evidence, then approve
		vw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(verifyURL, appID, evidenceID), nil, adminToken)
		require.Equal(t, http.StatusNoContent, vw.Code, vw.Body.String())

		aw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(approveURL, appID), nil, adminToken)
		require.Equal(t, http.StatusNoContent, aw.Code, aw.Body.String())

		// The role change is visible on the next authenticated request
		relogged := authtest.LoginUser(t, s.Router, "applicant@example.com", "password123")
		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, relogged)
		require.Equal(t, http.StatusOK, mw.Code)
		var me queries.AuthorizedUserView
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &me))
		require.Equal(t, string(user.RoleVendor), me.Role)

		// Audit log covers the whole cycle
		ew := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(roleEventsURL, appID), nil, adminToken)
		require.Equal(t, http.StatusOK, ew.Code)
		var events response.RoleEventListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, ew.Body, &events))
		var types []string
		for i, item := range events.Items {
			require.Equal(t, int64(i+1), item.Seq)
			types = append(types, item.Type)
		}
		require.Contains(t, types, "applicationCreated")
		require.Contains(t, types, "evidenceSubmitted")
		require.Contains(t, types, "decisionMade")
	})

	s.Run("Error case: approval without verified evidence is refused", func() {
		t := s.T()

		applicantToken := authtest.CreateAndLogin(t, s.DB, s.Router, "unverified@example.com", string(user.RoleUser))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin2@example.com", string(user.RoleAdmin))

		s.saveRegistration(applicantToken)
		appID, _, _ := s.submitCodePostEvidence(applicantToken)

		aw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(approveURL, appID), nil, adminToken)
		require.Equal(t, http.StatusUnprocessableEntity, aw.Code, aw.Body.String())
	})

	s.Run("Error case: moderation endpoints are admin only", func() {
		t := s.T()

		applicantToken := authtest.CreateAndLogin(t, s.DB, s.Router, "plain@example.com", string(user.RoleUser))
		appID := s.saveRegistration(applicantToken)

		aw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(approveURL, appID), nil, applicantToken)
		require.Equal(t, http.StatusForbidden, aw.Code)
	})
}

// =============================================================================
// TestRejectionAndResubmission
// =============================================================================

func (s *RoleApplicationSuite) TestRejectionAndResubmission() {
	s.Run("Normal case: rejection uses a template and a new cycle can start", func() {
		t := s.T()

		applicantToken := authtest.CreateAndLogin(t, s.DB, s.Router, "applicant@example.com", string(user.RoleUser))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		s.saveRegistration(applicantToken)
		appID, _, _ := s.submitCodePostEvidence(applicantToken)

		// The template catalog backs the rejection form
		tw := httptest.PerformRequest(t, s.Router, http.MethodGet, templatesURL, nil, adminToken)
		require.Equal(t, http.StatusOK, tw.Code)
		var catalog response.RejectionTemplateListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, tw.Body, &catalog))
		require.NotEmpty(t, catalog.Items)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(rejectURL, appID),
			request.RejectRoleApplicationRequest{TemplateID: "insufficientEvidence"}, adminToken)
		require.Equal(t, http.StatusNoContent, rw.Code, rw.Body.String())

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, myApplicationURL, nil, applicantToken)
		require.Equal(t, http.StatusOK, mw.Code)
		var view queries.RoleApplicationView
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &view))
		require.Equal(t, "rejected", view.Status)
		require.NotNil(t, view.Decision)
		require.Equal(t, "rejected", view.Decision.Result)

		// Submitting evidence again re-opens the application
		_, _, _ = s.submitCodePostEvidence(applicantToken)

		mw = httptest.PerformRequest(t, s.Router, http.MethodGet, myApplicationURL, nil, applicantToken)
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &view))
		require.Equal(t, "pending", view.Status)
		require.Nil(t, view.Decision)
	})

	s.Run("Normal case: admin can archive a stalled application", func() {
		t := s.T()

		applicantToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stalled@example.com", string(user.RoleUser))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin2@example.com", string(user.RoleAdmin))

		appID := s.saveRegistration(applicantToken)

		aw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(archiveURL, appID), nil, adminToken)
		require.Equal(t, http.StatusNoContent, aw.Code, aw.Body.String())

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, myApplicationURL, nil, applicantToken)
		require.Equal(t, http.StatusOK, mw.Code)
		var view queries.RoleApplicationView
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &view))
		require.Equal(t, "archived", view.Status)
	})
}
