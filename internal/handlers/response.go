package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/store-management-api/internal/dto"
	apierrors "github.com/yukikurage/store-management-api/internal/errors"
	"github.com/yukikurage/store-management-api/internal/middleware"
	"github.com/yukikurage/store-management-api/internal/services"
)

func respondSuccess(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.Response{
		Success:    true,
		Data:       data,
		Message:    message,
		StatusCode: status,
	})
}

// respondInternalError logs the failure and hides its detail from the client.
func respondInternalError(c *gin.Context, op string, err error) {
	_ = c.Error(err)
	log.Error().Err(err).Str("op", op).Str("path", c.FullPath()).Msg("request failed")
	apierrors.InternalError(c)
}

// respondAccessError handles the errors produced by the access resolver and
// reports whether err was one of them.
func respondAccessError(c *gin.Context, err error) bool {
	var denied *services.AccessDeniedError
	switch {
	case errors.Is(err, services.ErrStoreNotFound):
		apierrors.NotFound(c, "Store not found")
	case errors.As(err, &denied):
		apierrors.Forbidden(c, denied.Reason)
	case errors.Is(err, services.ErrAccessDenied):
		apierrors.Forbidden(c, "Cannot access this resource")
	default:
		return false
	}
	return true
}

func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return "", false
	}
	return userID, true
}
