package api

import (
	"errors"
	"net/http"

	"marketplace-moderation/internal/domain/roleapp"
	reqdto "marketplace-moderation/internal/handler/dto/request"
	resdto "marketplace-moderation/internal/handler/dto/response"
	"marketplace-moderation/internal/handler/httperr"
	"marketplace-moderation/internal/handler/middleware"
	"marketplace-moderation/internal/pkg/errs"
	"marketplace-moderation/internal/usecase/commands"
	"marketplace-moderation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoleApplicationHandler struct {
	roleCommands commands.RoleApplicationCommands
	roleQueries  queries.RoleApplicationQueries
}

func NewRoleApplicationHandler(
	roleCommands commands.RoleApplicationCommands,
	roleQueries queries.RoleApplicationQueries,
) *RoleApplicationHandler {
	return &RoleApplicationHandler{
		roleCommands: roleCommands,
		roleQueries:  roleQueries,
	}
}

// @Summary Save registration
// @Description Create or edit the caller's vendor role application draft
// @Tags role-applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveRegistrationRequest true "Registration"
// @Success 200 {object} resdto.SaveRegistrationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /role-applications/me/registration [put]
func (h *RoleApplicationHandler) SaveRegistration(c *gin.Context) {
	act := middleware.GetActor(c)

	var req reqdto.SaveRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cmd := commands.SaveRegistrationRequest{
		Input:        req.ToInput(),
		TermsVersion: req.TermsVersion,
	}
	result, err := h.roleCommands.SaveRegistration(c.Request.Context(), act, cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication required", nil)
		case errors.Is(err, roleapp.ErrRegistrationNotEditable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Registration can no longer be edited", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromSaveRegistrationResult(result))
}

// @Summary Get my role application
// @Description Get the caller's role application, with the actions available in its current state
// @Tags role-applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.RoleApplicationView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /role-applications/me [get]
func (h *RoleApplicationHandler) GetMine(c *gin.Context) {
	act := middleware.GetActor(c)

	view, err := h.roleQueries.GetMine(c.Request.Context(), act)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		case errors.Is(err, queries.ErrAccessDenied):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication required", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Submit evidence
// @Description Attach a verification evidence item to the caller's role application; starts a resubmission cycle when the application was rejected
// @Tags role-applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitEvidenceRequest true "Evidence"
// @Success 201 {object} resdto.SubmitEvidenceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /role-applications/me/evidence [post]
func (h *RoleApplicationHandler) SubmitEvidence(c *gin.Context) {
	act := middleware.GetActor(c)

	var req reqdto.SubmitEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	input, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid evidence method", nil)
		return
	}

	result, err := h.roleCommands.SubmitEvidence(c.Request.Context(), act, input)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication required", nil)
		case errors.Is(err, errs.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		case errors.Is(err, roleapp.ErrEvidenceFieldsMissing):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Evidence method requires missing fields", nil)
		case errors.Is(err, roleapp.ErrEvidenceNotSubmittable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Evidence cannot be submitted in the current state", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmitEvidenceResult(result))
}

// @Summary Verify evidence
// @Description Mark an evidence item as verified (admin only)
// @Tags role-applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param evidenceId path string true "Evidence ID"
// @Param request body reqdto.VerifyEvidenceRequest false "Review note"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /role-applications/{id}/evidence/{evidenceId}/verify [post]
func (h *RoleApplicationHandler) VerifyEvidence(c *gin.Context) {
	act := middleware.GetActor(c)

	applicationID, evidenceID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	var req reqdto.VerifyEvidenceRequest
	_ = c.ShouldBindJSON(&req)

	err := h.roleCommands.VerifyEvidence(c.Request.Context(), act, applicationID, evidenceID, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin role required", nil)
		case errors.Is(err, errs.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		case errors.Is(err, errs.ErrEvidenceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Evidence not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Approve role application
// @Description Approve a pending role application and grant the vendor role (admin only)
// @Tags role-applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /role-applications/{id}/approve [post]
func (h *RoleApplicationHandler) Approve(c *gin.Context) {
	act := middleware.GetActor(c)

	applicationID, ok := h.pathID(c)
	if !ok {
		return
	}

	err := h.roleCommands.Approve(c.Request.Context(), act, applicationID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin role required", nil)
		case errors.Is(err, errs.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		case errors.Is(err, errs.ErrMissingConfirmations):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Applicant confirmations are missing", nil)
		case errors.Is(err, errs.ErrMissingEvidence):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No evidence has been submitted", nil)
		case errors.Is(err, errs.ErrEvidenceNotVerified):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No evidence item has been verified", nil)
		case errors.Is(err, errs.ErrApprovedButRoleUpdateFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Approved, but granting the vendor role failed; retry the role grant", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Retry role grant
// @Description Re-run the role grant for an approved application whose directory update failed (admin only)
// @Tags role-applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /role-applications/{id}/retry-role-grant [post]
func (h *RoleApplicationHandler) RetryRoleGrant(c *gin.Context) {
	act := middleware.GetActor(c)

	applicationID, ok := h.pathID(c)
	if !ok {
		return
	}

	err := h.roleCommands.RetryRoleGrant(c.Request.Context(), act, applicationID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin role required", nil)
		case errors.Is(err, errs.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		case errors.Is(err, commands.ErrNotApproved):
			httperr.AbortWithError(c, http.StatusConflict, err, "Application is not approved", nil)
		case errors.Is(err, errs.ErrApprovedButRoleUpdateFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Granting the vendor role failed; retry later", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reject role application
// @Description Reject a pending role application with a templated reason (admin only)
// @Tags role-applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body reqdto.RejectRoleApplicationRequest true "Rejection"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /role-applications/{id}/reject [post]
func (h *RoleApplicationHandler) Reject(c *gin.Context) {
	act := middleware.GetActor(c)

	applicationID, ok := h.pathID(c)
	if !ok {
		return
	}

	var req reqdto.RejectRoleApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cmd := commands.RejectRoleApplicationRequest{
		Category:   req.Category,
		TemplateID: req.TemplateID,
		Detail:     req.Detail,
	}
	err := h.roleCommands.Reject(c.Request.Context(), act, applicationID, cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin role required", nil)
		case errors.Is(err, errs.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		case errors.Is(err, errs.ErrMissingTemplate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "A valid rejection template is required", nil)
		case errors.Is(err, roleapp.ErrNotRejectable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Application cannot be rejected in its current state", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Archive role application
// @Description Close a role application without a decision (admin only)
// @Tags role-applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /role-applications/{id}/archive [post]
func (h *RoleApplicationHandler) Archive(c *gin.Context) {
	act := middleware.GetActor(c)

	applicationID, ok := h.pathID(c)
	if !ok {
		return
	}

	err := h.roleCommands.Archive(c.Request.Context(), act, applicationID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin role required", nil)
		case errors.Is(err, errs.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		case errors.Is(err, roleapp.ErrArchiveApproved):
			httperr.AbortWithError(c, http.StatusConflict, err, "Approved applications cannot be archived", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Accept updated terms
// @Description Record the caller's agreement to a newer terms version on their role application
// @Tags role-applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AcceptTermsRequest true "Terms version"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /role-applications/me/accept-terms [post]
func (h *RoleApplicationHandler) AcceptTerms(c *gin.Context) {
	act := middleware.GetActor(c)

	var req reqdto.AcceptTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err := h.roleCommands.AcceptTerms(c.Request.Context(), act, req.TermsVersion)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication required", nil)
		case errors.Is(err, errs.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get role application
// @Description Get a role application by ID (admin or applicant)
// @Tags role-applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} queries.RoleApplicationView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /role-applications/{id} [get]
func (h *RoleApplicationHandler) GetByID(c *gin.Context) {
	act := middleware.GetActor(c)

	applicationID, ok := h.pathID(c)
	if !ok {
		return
	}

	view, err := h.roleQueries.GetByID(c.Request.Context(), act, applicationID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		case errors.Is(err, queries.ErrAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List role application events
// @Description List the append-only audit log of a role application in sequence order
// @Tags role-applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.RoleEventListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /role-applications/{id}/events [get]
func (h *RoleApplicationHandler) ListEvents(c *gin.Context) {
	act := middleware.GetActor(c)

	applicationID, ok := h.pathID(c)
	if !ok {
		return
	}

	items, next, err := h.roleQueries.ListEvents(c.Request.Context(), act, applicationID, parseCursor(c), parseLimit(c))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		case errors.Is(err, queries.ErrAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewRoleEventListResponse(items, next))
}

// @Summary List pending role applications
// @Description List the admin review queue of pending role applications (admin only)
// @Tags role-applications
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.RoleApplicationListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/role-applications [get]
func (h *RoleApplicationHandler) ListPending(c *gin.Context) {
	act := middleware.GetActor(c)

	items, next, err := h.roleQueries.ListPending(c.Request.Context(), act, parseCursor(c), parseLimit(c))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin role required", nil)
		case errors.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewRoleApplicationListResponse(items, next))
}

// @Summary List rejection templates
// @Description List the canned rejection reason templates (admin only)
// @Tags role-applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RejectionTemplateListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/rejection-templates [get]
func (h *RoleApplicationHandler) ListRejectionTemplates(c *gin.Context) {
	act := middleware.GetActor(c)

	items, err := h.roleQueries.ListRejectionTemplates(c.Request.Context(), act)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin role required", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RejectionTemplateListResponse{Items: items})
}

func (h *RoleApplicationHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *RoleApplicationHandler) pathIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application ID format", nil)
		return uuid.Nil, uuid.Nil, false
	}
	evidenceID, err := uuid.Parse(c.Param("evidenceId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid evidence ID format", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return applicationID, evidenceID, true
}
