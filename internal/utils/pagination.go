package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/store-management-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

type paginationQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// GetPaginationParams reads page and limit from the query string. Missing or
// out of range values fall back to the defaults instead of failing the request.
func GetPaginationParams(c *gin.Context) PaginationParams {
	var q paginationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		q = paginationQuery{}
	}
	return NewPaginationParams(q.Page, q.Limit)
}

// NewPaginationParams clamps page and limit and computes the offset.
func NewPaginationParams(page, limit int) PaginationParams {
	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
