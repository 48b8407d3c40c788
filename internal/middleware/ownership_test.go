package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/response"
)

func ownershipRouter(t *testing.T, userID uuid.UUID, load OwnedLoader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set(ContextUserID, userID)
		}
		c.Next()
	})
	r.GET("/:id/kanban_detail/", RequireOwner(load, "You are not allowed to view this kanban"), func(c *gin.Context) {
		resource, ok := Resource(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": resource.(*domain.Kanban).ID})
	})
	return r
}

func TestRequireOwner(t *testing.T) {
	owner := uuid.New()
	kanban := &domain.Kanban{Title: "Sprint 1", OwnerID: owner}
	kanban.ID = uuid.New()

	loader := func(ctx context.Context, id uuid.UUID) (domain.Owned, error) {
		if id == kanban.ID {
			return kanban, nil
		}
		return nil, gorm.ErrRecordNotFound
	}

	tests := []struct {
		name       string
		userID     uuid.UUID
		path       string
		wantStatus int
		wantCode   string
	}{
		{"owner", owner, "/" + kanban.ID.String() + "/kanban_detail/", http.StatusOK, ""},
		{"other user", uuid.New(), "/" + kanban.ID.String() + "/kanban_detail/", http.StatusForbidden, response.ErrCodeForbidden},
		{"anonymous", uuid.Nil, "/" + kanban.ID.String() + "/kanban_detail/", http.StatusForbidden, response.ErrCodeForbidden},
		{"missing kanban", owner, "/" + uuid.NewString() + "/kanban_detail/", http.StatusNotFound, response.ErrCodeNotFound},
		{"missing kanban anonymous", uuid.Nil, "/" + uuid.NewString() + "/kanban_detail/", http.StatusNotFound, response.ErrCodeNotFound},
		{"malformed id", owner, "/42/kanban_detail/", http.StatusNotFound, response.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := ownershipRouter(t, tt.userID, loader)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
			}
		})
	}
}

func TestRequireOwner_MessageAndErrors(t *testing.T) {
	owner := uuid.New()
	kanban := &domain.Kanban{Title: "Sprint 1", OwnerID: owner}
	kanban.ID = uuid.New()
	path := "/" + kanban.ID.String() + "/kanban_detail/"

	forbidden := ownershipRouter(t, uuid.New(), func(ctx context.Context, id uuid.UUID) (domain.Owned, error) {
		return kanban, nil
	})
	w := httptest.NewRecorder()
	forbidden.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	assert.Equal(t, "You are not allowed to view this kanban", decodeError(t, w).Message)

	appNotFound := ownershipRouter(t, owner, func(ctx context.Context, id uuid.UUID) (domain.Owned, error) {
		return nil, response.NewNotFoundError("Kanban not found", "")
	})
	w = httptest.NewRecorder()
	appNotFound.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	broken := ownershipRouter(t, owner, func(ctx context.Context, id uuid.UUID) (domain.Owned, error) {
		return nil, errors.New("connection lost")
	})
	w = httptest.NewRecorder()
	broken.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.ErrCodeInternal, decodeError(t, w).Code)
}
