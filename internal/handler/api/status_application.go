package api

import (
	"errors"
	"net/http"

	"marketplace-moderation/internal/domain/statusapp"
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

type StatusApplicationHandler struct {
	statusCommands commands.StatusApplicationCommands
	statusQueries  queries.StatusApplicationQueries
}

func NewStatusApplicationHandler(
	statusCommands commands.StatusApplicationCommands,
	statusQueries queries.StatusApplicationQueries,
) *StatusApplicationHandler {
	return &StatusApplicationHandler{
		statusCommands: statusCommands,
		statusQueries:  statusQueries,
	}
}

// @Summary Submit status application
// @Description Submit or resubmit a vendor status application (activate, hide or archive)
// @Tags status-applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param publicId path string true "Vendor public ID"
// @Param request body reqdto.SubmitStatusApplicationRequest true "Status application"
// @Success 201 {object} resdto.SubmitStatusApplicationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vendors/{publicId}/status-applications [post]
func (h *StatusApplicationHandler) Submit(c *gin.Context) {
	act := middleware.GetActor(c)

	var req reqdto.SubmitStatusApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	requestType, err := req.ParsedRequestType()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request type", nil)
		return
	}

	cmd := commands.SubmitStatusApplicationRequest{
		VendorPublicID: c.Param("publicId"),
		RequestType:    requestType,
		Message:        req.Message,
		TermsVersion:   req.TermsVersion,
	}
	result, err := h.statusCommands.SubmitOrResubmit(c.Request.Context(), act, cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVendorNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vendor not found", nil)
		case errors.Is(err, commands.ErrNotVendorOwner),
			errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to apply for this vendor", nil)
		case errors.Is(err, errs.ErrDuplicatePending):
			httperr.AbortWithError(c, http.StatusConflict, err, "A pending application of this type already exists", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmitStatusApplicationResult(result))
}

// @Summary Get vendor status application
// @Description Get the current status application for a vendor, with the actions available to the caller
// @Tags status-applications
// @Produce json
// @Security BearerAuth
// @Param publicId path string true "Vendor public ID"
// @Success 200 {object} queries.StatusApplicationView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vendors/{publicId}/status-application [get]
func (h *StatusApplicationHandler) GetForVendor(c *gin.Context) {
	act := middleware.GetActor(c)

	view, err := h.statusQueries.GetForVendor(c.Request.Context(), act, c.Param("publicId"))
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

// @Summary Decide status application
// @Description Approve or reject a pending status application (admin only)
// @Tags status-applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body reqdto.DecideStatusApplicationRequest true "Decision"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /status-applications/{id}/decision [post]
func (h *StatusApplicationHandler) Decide(c *gin.Context) {
	act := middleware.GetActor(c)

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application ID format", nil)
		return
	}

	var req reqdto.DecideStatusApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cmd := commands.DecideStatusApplicationRequest{
		Approve:    req.Approve != nil && *req.Approve,
		TemplateID: req.TemplateID,
		Detail:     req.Detail,
	}
	err = h.statusCommands.Decide(c.Request.Context(), act, applicationID, cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin role required", nil)
		case errors.Is(err, errs.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		case errors.Is(err, statusapp.ErrAlreadyDecided):
			httperr.AbortWithError(c, http.StatusConflict, err, "Application is already decided", nil)
		case errors.Is(err, commands.ErrRejectionNeedsReason),
			errors.Is(err, errs.ErrMissingTemplate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Rejection requires a template", nil)
		case errors.Is(err, errs.ErrApprovedButStatusApplyFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Approved, but applying the vendor status failed; retry the status apply", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Retry status apply
// @Description Re-run the vendor status change for an approved application whose side effect failed (admin only)
// @Tags status-applications
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
// @Router /status-applications/{id}/apply-status [post]
func (h *StatusApplicationHandler) ApplyApprovedStatus(c *gin.Context) {
	act := middleware.GetActor(c)

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application ID format", nil)
		return
	}

	err = h.statusCommands.ApplyApprovedStatus(c.Request.Context(), act, applicationID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin role required", nil)
		case errors.Is(err, errs.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		case errors.Is(err, commands.ErrDecisionNotApproved):
			httperr.AbortWithError(c, http.StatusConflict, err, "Application is not approved", nil)
		case errors.Is(err, errs.ErrApprovedButStatusApplyFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Applying the vendor status failed; retry later", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Accept updated terms
// @Description Record the applicant's agreement to a newer terms version on a pending application
// @Tags status-applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body reqdto.AcceptTermsRequest true "Terms version"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /status-applications/{id}/accept-terms [post]
func (h *StatusApplicationHandler) AcceptTerms(c *gin.Context) {
	act := middleware.GetActor(c)

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application ID format", nil)
		return
	}

	var req reqdto.AcceptTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err = h.statusCommands.AcceptTerms(c.Request.Context(), act, applicationID, req.TermsVersion)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the applicant can accept terms", nil)
		case errors.Is(err, errs.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List status application events
// @Description List the append-only audit log of a status application in sequence order
// @Tags status-applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.StatusEventListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /status-applications/{id}/events [get]
func (h *StatusApplicationHandler) ListEvents(c *gin.Context) {
	act := middleware.GetActor(c)

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application ID format", nil)
		return
	}

	items, next, err := h.statusQueries.ListEvents(c.Request.Context(), act, applicationID, parseCursor(c), parseLimit(c))
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

	c.JSON(http.StatusOK, resdto.NewStatusEventListResponse(items, next))
}

// @Summary List pending status applications
// @Description List the admin review queue of pending status applications (admin only)
// @Tags status-applications
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.StatusApplicationListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/status-applications [get]
func (h *StatusApplicationHandler) ListPending(c *gin.Context) {
	act := middleware.GetActor(c)

	items, next, err := h.statusQueries.ListPending(c.Request.Context(), act, parseCursor(c), parseLimit(c))
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

	c.JSON(http.StatusOK, resdto.NewStatusApplicationListResponse(items, next))
}
