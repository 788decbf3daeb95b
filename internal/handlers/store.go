package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/store-management-api/internal/dto"
	apierrors "github.com/yukikurage/store-management-api/internal/errors"
	"github.com/yukikurage/store-management-api/internal/services"
)

type StoreHandler struct {
	storeService *services.StoreService
}

func NewStoreHandler(storeService *services.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

type storeRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// CreateStore creates a store owned by the current user
func (h *StoreHandler) CreateStore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req storeRequest
	if !bindJSON(c, &req) {
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), services.CreateStoreInput{
		Name:    req.Name,
		OwnerID: userID,
	})
	if err != nil {
		respondStoreError(c, "create store", err)
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToStoreDTO(*store), "Store created successfully")
}

// UpdateStore renames a store
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req storeRequest
	if !bindJSON(c, &req) {
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), userID, c.Param("id"), req.Name)
	if err != nil {
		respondStoreError(c, "update store", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToStoreDTO(*store), "Store updated")
}

// DeleteStore deletes a store and everything scoped to it
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := h.storeService.DeleteStore(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondStoreError(c, "delete store", err)
		return
	}

	respondSuccess(c, http.StatusOK, id, "Store deleted")
}

// OwnedStores lists the stores created by the current user
func (h *StoreHandler) OwnedStores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stores, err := h.storeService.ListOwnedStores(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, "list owned stores", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToStoreDTOs(stores), "Stores retrieved")
}

// MemberStores lists the stores the current user works in without owning them
func (h *StoreHandler) MemberStores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stores, err := h.storeService.ListMemberStores(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, "list member stores", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToStoreDTOs(stores), "Shops where the user is associated but not the owner")
}

func respondStoreError(c *gin.Context, op string, err error) {
	if respondAccessError(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidStoreName):
		apierrors.BadRequest(c, "Name is required")
	case errors.Is(err, services.ErrStoreNameTaken):
		apierrors.Conflict(c, "Shop with this name already exists")
	case errors.Is(err, services.ErrNoAssociatedStores):
		apierrors.NotFound(c, "No shops found where the user is associated")
	default:
		respondInternalError(c, op, err)
	}
}
