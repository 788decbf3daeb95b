package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/repository"
	"github.com/yukikurage/store-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound    = errors.New("category does not exist")
	ErrInvalidCategoryName = errors.New("category name cannot be empty")
)

// CategoryService provides business logic for store categories.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	access       *AccessResolver
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, access *AccessResolver) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		access:       access,
	}
}

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	StoreID     string
	Name        string
	Description *string
}

// CreateCategory adds a category to a store.
func (s *CategoryService) CreateCategory(ctx context.Context, actorID string, input CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidCategoryName
	}

	if _, err := s.access.AuthorizeMutation(ctx, actorID, input.StoreID, CapabilityManageCategory); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
		StoreID:     input.StoreID,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// UpdateCategory changes name and description of a category in the given store.
func (s *CategoryService) UpdateCategory(ctx context.Context, actorID, categoryID string, input CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidCategoryName
	}

	store, err := s.access.LoadStore(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}

	category, err := s.findInStore(ctx, store.ID, categoryID)
	if err != nil {
		return nil, err
	}

	if err := s.access.CheckOwner(store, actorID, CapabilityManageCategory); err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Description = input.Description
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory removes a category. When storeID is not empty the category
// must belong to that store.
func (s *CategoryService) DeleteCategory(ctx context.Context, actorID, categoryID, storeID string) (string, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrCategoryNotFound
		}
		return "", fmt.Errorf("failed to find category: %w", err)
	}
	if storeID != "" && category.StoreID != storeID {
		return "", ErrCategoryNotFound
	}

	if _, err := s.access.AuthorizeMutation(ctx, actorID, category.StoreID, CapabilityManageCategory); err != nil {
		return "", err
	}

	if err := s.categoryRepo.Delete(ctx, category.ID); err != nil {
		return "", fmt.Errorf("failed to delete category: %w", err)
	}

	return category.ID, nil
}

// ListCategories returns the categories of a store to any of its members.
func (s *CategoryService) ListCategories(ctx context.Context, userID, storeID string, page utils.PaginationParams) ([]models.Category, error) {
	if _, err := s.access.AuthorizeRead(ctx, userID, storeID); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListByStore(ctx, storeID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) findInStore(ctx context.Context, storeID, categoryID string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.StoreID != storeID {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
