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

type CustomerHandler struct {
	customerService *services.CustomerService
}

func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomer adds a customer to a store
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		StoreID string `json:"storeId" binding:"required"`
		Name    string `json:"name" binding:"required,max=255"`
	}
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), userID, req.StoreID, req.Name)
	if err != nil {
		respondCustomerError(c, "create customer", err)
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToCustomerDTO(*customer), "Customer created")
}

// UpdateCustomer renames a customer
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		ID      string `json:"id" binding:"required"`
		StoreID string `json:"storeId" binding:"required"`
		Name    string `json:"name" binding:"required,max=255"`
	}
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), userID, req.StoreID, req.ID, req.Name)
	if err != nil {
		respondCustomerError(c, "update customer", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToCustomerDTO(*customer), "Customer updated")
}

// RemoveCustomer deletes a customer
func (h *CustomerHandler) RemoveCustomer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		CustomerID string `json:"customerId" binding:"required"`
		StoreID    string `json:"storeId" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	if err := h.customerService.RemoveCustomer(c.Request.Context(), userID, req.StoreID, req.CustomerID); err != nil {
		respondCustomerError(c, "remove customer", err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Customer removed successfully")
}

// GetCustomer returns one customer, identified by the storeId and customerId
// query parameters
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	storeID := c.Query("storeId")
	customerID := c.Query("customerId")
	if storeID == "" || customerID == "" {
		apierrors.BadRequest(c, "Store id and Customer id is required")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), userID, storeID, customerID)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			apierrors.NotFound(c, "Customer not found in this store")
			return
		}
		respondCustomerError(c, "get customer", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToCustomerDTO(*customer), "Customer details retrieved")
}

// ListCustomers lists the customers of a store
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), userID, c.Param("storeId"), utils.GetPaginationParams(c))
	if err != nil {
		respondCustomerError(c, "list customers", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToCustomerDTOs(customers), "Customer details retrieved")
}

func respondCustomerError(c *gin.Context, op string, err error) {
	if respondAccessError(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidCustomerName):
		apierrors.BadRequest(c, "Customer name is required")
	case errors.Is(err, services.ErrCustomerNotFound):
		apierrors.NotFound(c, "No customer found")
	case errors.Is(err, services.ErrNoCustomers):
		apierrors.NotFound(c, "No customers found")
	default:
		respondInternalError(c, op, err)
	}
}
