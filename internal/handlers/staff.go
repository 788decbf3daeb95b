package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/store-management-api/internal/dto"
	apierrors "github.com/yukikurage/store-management-api/internal/errors"
	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/services"
	"github.com/yukikurage/store-management-api/internal/utils"
)

type StaffHandler struct {
	staffService *services.StaffService
}

func NewStaffHandler(staffService *services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

type staffRequest struct {
	StaffID string           `json:"staffId" binding:"required"`
	StoreID string           `json:"storeId" binding:"required"`
	Role    models.StaffRole `json:"role" binding:"required,oneof=OWNER MANAGER STAFF"`
}

// CreateStaff assigns a user to a store
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req staffRequest
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.staffService.AddStaff(c.Request.Context(), userID, req.StoreID, req.StaffID, req.Role)
	if err != nil {
		respondStaffError(c, "create staff", err)
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToStaffAssignmentDTO(*assignment), "Staff added successfully")
}

// UpdateStaff changes the role of an assigned user
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req staffRequest
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.staffService.UpdateStaffRole(c.Request.Context(), userID, req.StoreID, req.StaffID, req.Role)
	if err != nil {
		respondStaffError(c, "update staff", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToStaffAssignmentDTO(*assignment), "Staff updated successfully")
}

// RemoveStaff removes a user from a store
func (h *StaffHandler) RemoveStaff(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		StaffID string `json:"staffId" binding:"required"`
		StoreID string `json:"storeId" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.staffService.RemoveStaff(c.Request.Context(), userID, req.StoreID, req.StaffID)
	if err != nil {
		respondStaffError(c, "remove staff", err)
		return
	}

	respondSuccess(c, http.StatusOK, id, "Staff removed successfully")
}

// ListStaff lists the assignments of a store
func (h *StaffHandler) ListStaff(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	staff, err := h.staffService.ListStaff(c.Request.Context(), userID, c.Param("storeId"), utils.GetPaginationParams(c))
	if err != nil {
		respondStaffError(c, "list staff", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToStaffAssignmentDTOs(staff), "Staff fetched successfully")
}

func respondStaffError(c *gin.Context, op string, err error) {
	if respondAccessError(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidStaffRole):
		apierrors.BadRequest(c, "Invalid staff role")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrStaffNotFound):
		apierrors.NotFound(c, "Staff not found")
	case errors.Is(err, services.ErrStaffAlreadyAssigned):
		apierrors.Conflict(c, "User is already assigned to this store")
	case errors.Is(err, services.ErrCannotRemoveYourself):
		apierrors.BadRequest(c, "Owner cannot remove themselves from the store")
	default:
		respondInternalError(c, op, err)
	}
}
