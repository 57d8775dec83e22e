//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"marketplace-moderation/internal/domain/actor"
	"marketplace-moderation/internal/domain/statusapp"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/handler/api"
	resdto "marketplace-moderation/internal/handler/dto/response"
	"marketplace-moderation/internal/pkg/errs"
	"marketplace-moderation/internal/usecase/commands"
	"marketplace-moderation/internal/usecase/queries"
	"marketplace-moderation/tests/common/builder"
	"marketplace-moderation/tests/common/httptest"
	"marketplace-moderation/tests/common/testutil"
	commandsmock "marketplace-moderation/tests/mock/commands"
	queriesmock "marketplace-moderation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatusApplicationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockStatusApplicationCommands
	mockQueries  *queriesmock.MockStatusApplicationQueries
	handler      *api.StatusApplicationHandler

	callerID uuid.UUID
}

func (s *StatusApplicationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockStatusApplicationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockStatusApplicationQueries(s.mockCtrl)
	s.handler = api.NewStatusApplicationHandler(s.mockCommands, s.mockQueries)

	s.callerID = uuid.New()
	// Mock middleware behavior: inject an authenticated vendor actor
	withActor := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.callerID)
			c.Set("actor", actor.New(s.callerID, user.RoleVendor))
			next(c)
		}
	}

	s.router.POST("/vendors/:publicId/status-applications", withActor(s.handler.Submit))
	s.router.POST("/status-applications/:id/decision", withActor(s.handler.Decide))
	s.router.POST("/status-applications/:id/apply-status", withActor(s.handler.ApplyApprovedStatus))
	s.router.GET("/admin/status-applications", withActor(s.handler.ListPending))
}

func (s *StatusApplicationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatusApplicationHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatusApplicationHandlerTestSuite))
}

func (s *StatusApplicationHandlerTestSuite) TestSubmit() {
	url := "/vendors/vnd-test0001/status-applications"
	reqBody := builder.NewStatusApplicationBuilder().BuildSubmitRequestDTO()

	s.Run("success: returns 201 Created", func() {
		appID := uuid.New()
		s.mockCommands.EXPECT().
			SubmitOrResubmit(gomock.Any(), gomock.Any(), commands.SubmitStatusApplicationRequest{
				VendorPublicID: "vnd-test0001",
				RequestType:    statusapp.RequestActivate,
				Message:        reqBody.Message,
				TermsVersion:   reqBody.TermsVersion,
			}).
			Return(&commands.SubmitStatusApplicationResult{ApplicationID: appID, Resubmitted: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SubmitStatusApplicationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(appID, response.ApplicationID)
		s.True(response.Resubmitted)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "unknown request type", mutate: testutil.Field("request_type", "publish"), expectCode: http.StatusBadRequest},
			{name: "missing request type", mutate: testutil.Field("request_type", nil), expectCode: http.StatusBadRequest},
			{name: "missing terms version", mutate: testutil.Field("terms_version", nil), expectCode: http.StatusBadRequest},
			{name: "message is optional", mutate: testutil.Field("message", nil), expectCode: http.StatusCreated},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().
						SubmitOrResubmit(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(&commands.SubmitStatusApplicationResult{ApplicationID: uuid.New()}, nil)
				}
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "vendor not found", commandsError: commands.ErrVendorNotFound, expectedStatus: http.StatusNotFound},
			{name: "not the owner", commandsError: commands.ErrNotVendorOwner, expectedStatus: http.StatusForbidden},
			{name: "duplicate pending", commandsError: errs.ErrDuplicatePending, expectedStatus: http.StatusConflict},
			{name: "domain validation", commandsError: errs.ErrDomainValidation, expectedStatus: http.StatusUnprocessableEntity},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					SubmitOrResubmit(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *StatusApplicationHandlerTestSuite) TestDecide() {
	appID := uuid.New()
	url := "/status-applications/" + appID.String() + "/decision"
	approve := true
	reqBody := map[string]any{"approve": approve}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), gomock.Any(), appID, commands.DecideStatusApplicationRequest{Approve: true}).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 for a malformed application id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/status-applications/not-a-uuid/decision", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid application ID format")
	})

	s.Run("error: 400 when approve flag is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not an admin", commandsError: errs.ErrPermissionDenied, expectedStatus: http.StatusForbidden},
			{name: "application not found", commandsError: errs.ErrApplicationNotFound, expectedStatus: http.StatusNotFound},
			{name: "already decided", commandsError: statusapp.ErrAlreadyDecided, expectedStatus: http.StatusConflict},
			{name: "rejection without template", commandsError: errs.ErrMissingTemplate, expectedStatus: http.StatusBadRequest},
			{name: "approved but status apply failed", commandsError: errs.ErrApprovedButStatusApplyFailed, expectedStatus: http.StatusBadGateway},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Decide(gomock.Any(), gomock.Any(), appID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *StatusApplicationHandlerTestSuite) TestApplyApprovedStatus() {
	appID := uuid.New()
	url := "/status-applications/" + appID.String() + "/apply-status"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			ApplyApprovedStatus(gomock.Any(), gomock.Any(), appID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the decision is not approved", func() {
		s.mockCommands.EXPECT().
			ApplyApprovedStatus(gomock.Any(), gomock.Any(), appID).
			Return(commands.ErrDecisionNotApproved).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Application is not approved")
	})

	s.Run("error: 502 when the retry fails again", func() {
		s.mockCommands.EXPECT().
			ApplyApprovedStatus(gomock.Any(), gomock.Any(), appID).
			Return(errs.ErrApprovedButStatusApplyFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "")
	})
}

func (s *StatusApplicationHandlerTestSuite) TestListPending() {
	url := "/admin/status-applications"

	s.Run("success: returns items and next cursor", func() {
		items := []*queries.StatusApplicationListItem{
			builder.NewStatusApplicationBuilder().BuildListItem(),
			builder.NewStatusApplicationBuilder().BuildListItem(),
		}
		next := &queries.Cursor{After: "v1:opaque"}
		s.mockQueries.EXPECT().
			ListPending(gomock.Any(), gomock.Any(), gomock.Nil(), 0).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.StatusApplicationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Require().NotNil(response.NextCursor)
	})

	s.Run("error: 403 for non-admin", func() {
		s.mockQueries.EXPECT().
			ListPending(gomock.Any(), gomock.Any(), gomock.Nil(), 0).
			Return(nil, nil, errs.ErrPermissionDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Admin role required")
	})
}
