package api

import (
	"errors"
	"net/http"

	"marketplace-moderation/internal/domain/vendor"
	reqdto "marketplace-moderation/internal/handler/dto/request"
	resdto "marketplace-moderation/internal/handler/dto/response"
	"marketplace-moderation/internal/handler/httperr"
	"marketplace-moderation/internal/handler/middleware"
	"marketplace-moderation/internal/pkg/errs"
	"marketplace-moderation/internal/usecase/commands"
	"marketplace-moderation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	vendorCommands commands.VendorCommands
	vendorQueries  queries.VendorQueries
}

func NewVendorHandler(
	vendorCommands commands.VendorCommands,
	vendorQueries queries.VendorQueries,
) *VendorHandler {
	return &VendorHandler{
		vendorCommands: vendorCommands,
		vendorQueries:  vendorQueries,
	}
}

// @Summary Create listing
// @Description Register a new storefront in pending state; it goes live only through an approved activate application
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 201 {object} resdto.CreateListingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vendors [post]
func (h *VendorHandler) CreateListing(c *gin.Context) {
	act := middleware.GetActor(c)

	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cmd := commands.CreateListingRequest{Name: req.Name, Description: req.Description}
	result, err := h.vendorCommands.CreateListing(c.Request.Context(), act, cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVendorRoleRequired),
			errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Vendor role required", nil)
		case errors.Is(err, vendor.ErrInvalidContent):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid listing content", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateListingResult(result))
}

// @Summary Update listing content
// @Description Edit the name and description of a listing; blocked while a status application is pending
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param publicId path string true "Vendor public ID"
// @Param request body reqdto.UpdateListingContentRequest true "Listing content"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vendors/{publicId} [patch]
func (h *VendorHandler) UpdateContent(c *gin.Context) {
	act := middleware.GetActor(c)

	var req reqdto.UpdateListingContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cmd := commands.UpdateListingContentRequest{Name: req.Name, Description: req.Description}
	err := h.vendorCommands.UpdateContent(c.Request.Context(), act, c.Param("publicId"), cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVendorNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vendor not found", nil)
		case errors.Is(err, commands.ErrNotVendorOwner),
			errors.Is(err, errs.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to edit this listing", nil)
		case errors.Is(err, vendor.ErrEditForbidden):
			httperr.AbortWithError(c, http.StatusConflict, err, "Listing content cannot be edited in its current state", nil)
		case errors.Is(err, vendor.ErrInvalidContent):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid listing content", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get vendor
// @Description Get a vendor listing by its public ID
// @Tags vendors
// @Produce json
// @Param publicId path string true "Vendor public ID"
// @Success 200 {object} queries.VendorView
// @Failure 404 {object} map[string]string
// @Router /vendors/{publicId} [get]
func (h *VendorHandler) GetByPublicID(c *gin.Context) {
	view, err := h.vendorQueries.GetByPublicID(c.Request.Context(), c.Param("publicId"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVendorNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vendor not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
