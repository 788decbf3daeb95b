package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/store-management-api/internal/dto"
	apierrors "github.com/yukikurage/store-management-api/internal/errors"
	"github.com/yukikurage/store-management-api/internal/services"
	"github.com/yukikurage/store-management-api/internal/utils"
)

type VendorHandler struct {
	vendorService *services.VendorService
}

func NewVendorHandler(vendorService *services.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

type vendorRequest struct {
	StoreID string `json:"storeId" binding:"required"`
	Name    string `json:"name" binding:"required,min=3,max=255"`
}

// CreateVendor adds a vendor to a store
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req vendorRequest
	if !bindJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), userID, req.StoreID, req.Name)
	if err != nil {
		respondVendorError(c, "create vendor", err)
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToVendorDTO(*vendor), "Vendor created")
}

// UpdateVendor renames the vendor identified by the path
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req vendorRequest
	if !bindJSON(c, &req) {
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), userID, req.StoreID, c.Param("id"), req.Name)
	if err != nil {
		respondVendorError(c, "update vendor", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToVendorDTO(*vendor), "Vendor updated")
}

// DeleteVendor removes a vendor
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		VendorID string `json:"vendorId" binding:"required"`
		StoreID  string `json:"storeId" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.vendorService.DeleteVendor(c.Request.Context(), userID, req.StoreID, req.VendorID)
	if err != nil {
		respondVendorError(c, "delete vendor", err)
		return
	}

	respondSuccess(c, http.StatusOK, id, "Vendor deleted")
}

// ListVendors lists the vendors of the store identified by the path
func (h *VendorHandler) ListVendors(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	vendors, err := h.vendorService.ListVendors(c.Request.Context(), userID, c.Param("id"), utils.GetPaginationParams(c))
	if err != nil {
		respondVendorError(c, "list vendors", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToVendorDTOs(vendors), "Vendors fetched")
}

func respondVendorError(c *gin.Context, op string, err error) {
	if respondAccessError(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidVendorName):
		apierrors.BadRequest(c, "Vendor name is required")
	case errors.Is(err, services.ErrVendorNotFound):
		apierrors.NotFound(c, "Vendor not found")
	default:
		respondInternalError(c, op, err)
	}
}
