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

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryRequest struct {
	StoreID     string  `json:"storeId" binding:"required"`
	Name        string  `json:"name" binding:"required,min=3,max=255"`
	Description *string `json:"description" binding:"omitempty,min=3"`
}

func (r categoryRequest) input() services.CategoryInput {
	return services.CategoryInput{
		StoreID:     r.StoreID,
		Name:        r.Name,
		Description: r.Description,
	}
}

// CreateCategory adds a category to a store
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, req.input())
	if err != nil {
		respondCategoryError(c, "create category", err)
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToCategoryDTO(*category), "Category created")
}

// UpdateCategory edits a category of a store
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), userID, c.Param("id"), req.input())
	if err != nil {
		respondCategoryError(c, "update category", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToCategoryDTO(*category), "Category updated")
}

// DeleteCategory removes a category. An optional storeId query parameter
// restricts the lookup to that store.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := h.categoryService.DeleteCategory(c.Request.Context(), userID, c.Param("categoryId"), c.Query("storeId"))
	if err != nil {
		respondCategoryError(c, "delete category", err)
		return
	}

	respondSuccess(c, http.StatusOK, id, "Category deleted")
}

// ListCategories lists the categories of a store to its members
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), userID, c.Param("storeId"), utils.GetPaginationParams(c))
	if err != nil {
		respondCategoryError(c, "list categories", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToCategoryDTOs(categories), "Categories fetched")
}

func respondCategoryError(c *gin.Context, op string, err error) {
	if respondAccessError(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidCategoryName):
		apierrors.BadRequest(c, "Category name is required")
	case errors.Is(err, services.ErrCategoryNotFound):
		apierrors.NotFound(c, "Category does not exist")
	default:
		respondInternalError(c, op, err)
	}
}
