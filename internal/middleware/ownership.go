package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/response"
)

// ContextResource holds the resource loaded by RequireOwner
const ContextResource = "resource"

// OwnedLoader fetches the resource addressed by the :id path parameter
type OwnedLoader func(ctx context.Context, id uuid.UUID) (domain.Owned, error)

// RequireOwner loads the resource named by :id and lets the request through only
// when the current user owns it. Missing resources are 404, everyone else 403.
func RequireOwner(load OwnedLoader, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			response.AbortWithError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
			return
		}

		resource, err := load(c.Request.Context(), id)
		if err != nil {
			if isNotFound(err) {
				response.AbortWithError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
				return
			}
			response.AbortWithError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to load resource")
			return
		}

		if !domain.CanAccess(CurrentUserID(c), resource) {
			response.AbortWithError(c, http.StatusForbidden, response.ErrCodeForbidden, message)
			return
		}

		c.Set(ContextResource, resource)
		c.Next()
	}
}

// Resource returns the resource authorized by RequireOwner
func Resource(c *gin.Context) (domain.Owned, bool) {
	value, exists := c.Get(ContextResource)
	if !exists {
		return nil, false
	}
	resource, ok := value.(domain.Owned)
	return resource, ok
}

func isNotFound(err error) bool {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true
	}
	var appErr *response.AppError
	return errors.As(err, &appErr) && appErr.Code == response.ErrCodeNotFound
}
