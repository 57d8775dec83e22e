//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"marketplace-moderation/internal/domain/actor"
	"marketplace-moderation/internal/domain/roleapp"
	"marketplace-moderation/internal/domain/user"
	"marketplace-moderation/internal/handler/api"
	resdto "marketplace-moderation/internal/handler/dto/response"
	"marketplace-moderation/internal/pkg/errs"
	"marketplace-moderation/internal/usecase/commands"
	"marketplace-moderation/internal/usecase/queries"
	"marketplace-moderation/tests/common/builder"
	"marketplace-moderation/tests/common/helper"
	"marketplace-moderation/tests/common/testutil"
	commandsmock "marketplace-moderation/tests/mock/commands"
	queriesmock "marketplace-moderation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoleApplicationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoleApplicationCommands
	mockQueries  *queriesmock.MockRoleApplicationQueries
	handler      *api.RoleApplicationHandler

	callerID uuid.UUID
}

func (s *RoleApplicationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoleApplicationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoleApplicationQueries(s.mockCtrl)
	s.handler = api.NewRoleApplicationHandler(s.mockCommands, s.mockQueries)

	s.callerID = uuid.New()
	// Mock middleware behavior: inject an authenticated plain-user actor
	withActor := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.callerID)
			c.Set("actor", actor.New(s.callerID, user.RoleUser))
			next(c)
		}
	}

	s.router.GET("/role-applications/me", withActor(s.handler.GetMine))
	s.router.PUT("/role-applications/me/registration", withActor(s.handler.SaveRegistration))
	s.router.POST("/role-applications/me/evidence", withActor(s.handler.SubmitEvidence))
	s.router.POST("/role-applications/:id/evidence/:evidenceId/verify", withActor(s.handler.VerifyEvidence))
	s.router.POST("/role-applications/:id/approve", withActor(s.handler.Approve))
	s.router.POST("/role-applications/:id/reject", withActor(s.handler.Reject))
}

func (s *RoleApplicationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoleApplicationHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoleApplicationHandlerTestSuite))
}

func (s *RoleApplicationHandlerTestSuite) TestSaveRegistration() {
	url := "/role-applications/me/registration"
	reqBody := builder.NewRoleApplicationBuilder().BuildSaveRequestDTO()

	s.Run("success: returns 201 when a new application is created", func() {
		appID := uuid.New()
		s.mockCommands.EXPECT().
			SaveRegistration(gomock.Any(), gomock.Any(), commands.SaveRegistrationRequest{
				Input:        reqBody.ToInput(),
				TermsVersion: reqBody.TermsVersion,
			}).
			Return(&commands.SaveRegistrationResult{ApplicationID: appID, Created: true}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.SaveRegistrationResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(appID, response.ApplicationID)
		s.True(response.Created)
	})

	s.Run("success: returns 200 on a later save", func() {
		s.mockCommands.EXPECT().
			SaveRegistration(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.SaveRegistrationResult{ApplicationID: uuid.New(), ChangedFields: []string{"brandName"}}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.SaveRegistrationResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"brandName"}, response.ChangedFields)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing display name", mutate: testutil.Field("display_name", nil)},
			{name: "malformed contact email", mutate: testutil.Field("contact_email", "not-an-email")},
			{name: "missing terms version", mutate: testutil.Field("terms_version", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := helper.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "")
				helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 once the application is past initial", func() {
		s.mockCommands.EXPECT().
			SaveRegistration(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, roleapp.ErrRegistrationNotEditable).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer be edited")
	})
}

func (s *RoleApplicationHandlerTestSuite) TestGetMine() {
	url := "/role-applications/me"

	s.Run("success: returns the caller's application view", func() {
		view := builder.NewRoleApplicationBuilder().WithApplicant(s.callerID).BuildView()
		s.mockQueries.EXPECT().
			GetMine(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.RoleApplicationView
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Status, response.Status)
	})

	s.Run("error: 404 when the caller has never applied", func() {
		s.mockQueries.EXPECT().
			GetMine(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrApplicationNotFound).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Application not found")
	})
}

func (s *RoleApplicationHandlerTestSuite) TestSubmitEvidence() {
	url := "/role-applications/me/evidence"

	s.Run("success: codePost evidence returns the verification code", func() {
		appID := uuid.New()
		evidenceID := uuid.New()
		code := "A7F3K9QZ"
		s.mockCommands.EXPECT().
			SubmitEvidence(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.SubmitEvidenceResult{
				ApplicationID:    appID,
				EvidenceID:       evidenceID,
				VerificationCode: &code,
			}, nil).Times(1)

		reqBody := builder.NewRoleApplicationBuilder().BuildCodePostEvidenceInput()
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"method":      reqBody.Method.String(),
			"channel_url": reqBody.ChannelURL,
		}, "")

		var response resdto.SubmitEvidenceResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(evidenceID, response.EvidenceID)
		s.Require().NotNil(response.VerificationCode)
		s.Equal(code, *response.VerificationCode)
	})

	s.Run("error: unknown evidence method is rejected at binding", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"method": "carrierPigeon",
		}, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 when no application exists", func() {
		s.mockCommands.EXPECT().
			SubmitEvidence(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrApplicationNotFound).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"method": "officialEmail",
		}, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Application not found")
	})
}

func (s *RoleApplicationHandlerTestSuite) TestVerifyEvidence() {
	appID := uuid.New()
	evidenceID := uuid.New()
	url := "/role-applications/" + appID.String() + "/evidence/" + evidenceID.String() + "/verify"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			VerifyEvidence(gomock.Any(), gomock.Any(), appID, evidenceID, gomock.Any()).
			Return(nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown evidence item", func() {
		s.mockCommands.EXPECT().
			VerifyEvidence(gomock.Any(), gomock.Any(), appID, evidenceID, gomock.Any()).
			Return(errs.ErrEvidenceNotFound).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Evidence not found")
	})

	s.Run("error: 400 for a malformed evidence id", func() {
		badURL := "/role-applications/" + appID.String() + "/evidence/not-a-uuid/verify"
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, badURL, nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid evidence ID format")
	})
}

func (s *RoleApplicationHandlerTestSuite) TestApprove() {
	appID := uuid.New()
	url := "/role-applications/" + appID.String() + "/approve"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			Approve(gomock.Any(), gomock.Any(), appID).
			Return(nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps approval preconditions to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not an admin", commandsError: errs.ErrPermissionDenied, expectedStatus: http.StatusForbidden},
			{name: "missing confirmations", commandsError: errs.ErrMissingConfirmations, expectedStatus: http.StatusUnprocessableEntity},
			{name: "no evidence", commandsError: errs.ErrMissingEvidence, expectedStatus: http.StatusUnprocessableEntity},
			{name: "evidence not verified", commandsError: errs.ErrEvidenceNotVerified, expectedStatus: http.StatusUnprocessableEntity},
			{name: "role grant failed after approval", commandsError: errs.ErrApprovedButRoleUpdateFailed, expectedStatus: http.StatusBadGateway},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Approve(gomock.Any(), gomock.Any(), appID).
					Return(tc.commandsError).Times(1)

				rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				helper.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *RoleApplicationHandlerTestSuite) TestReject() {
	appID := uuid.New()
	url := "/role-applications/" + appID.String() + "/reject"
	reqBody := map[string]any{"template_id": "insufficientEvidence"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			Reject(gomock.Any(), gomock.Any(), appID, commands.RejectRoleApplicationRequest{TemplateID: "insufficientEvidence"}).
			Return(nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 when the template id is missing", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 for an unknown template", func() {
		s.mockCommands.EXPECT().
			Reject(gomock.Any(), gomock.Any(), appID, gomock.Any()).
			Return(errs.ErrMissingTemplate).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 when the application is not rejectable", func() {
		s.mockCommands.EXPECT().
			Reject(gomock.Any(), gomock.Any(), appID, gomock.Any()).
			Return(roleapp.ErrNotRejectable).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}
