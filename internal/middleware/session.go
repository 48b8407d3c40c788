package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/response"
	"kanban-board-api/internal/session"
)

// Context keys set by the session middleware
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextSession  = "session_claims"
)

// SessionParser verifies session tokens
type SessionParser interface {
	Parse(ctx context.Context, token string) (*session.Claims, error)
}

// UserChecker reports whether a session subject still exists
type UserChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Session resolves the session cookie into the current user. Requests without a
// valid session continue anonymously, as do sessions of deleted accounts when
// users is set.
func Session(parser SessionParser, users UserChecker, cookieName string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := parser.Parse(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrInvalidToken) && !errors.Is(err, session.ErrRevoked) {
				logger.Warn("Failed to verify session", zap.Error(err))
			}
			c.Next()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.Next()
			return
		}

		if users != nil {
			exists, err := users.Exists(c.Request.Context(), userID)
			if err != nil {
				logger.Warn("Failed to look up session user", zap.String("user_id", userID.String()), zap.Error(err))
			}
			if err != nil || !exists {
				c.Next()
				return
			}
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextSession, claims)
		c.Next()
	}
}

// CurrentUserID returns the logged in user, or uuid.Nil for anonymous requests
func CurrentUserID(c *gin.Context) uuid.UUID {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

// IsAuthenticated reports whether the request carries a valid session
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != uuid.Nil
}

// SessionClaims returns the verified claims of the current session
func SessionClaims(c *gin.Context) (*session.Claims, bool) {
	value, exists := c.Get(ContextSession)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*session.Claims)
	return claims, ok
}

// RequireAuth rejects anonymous requests with 403 and the given message
func RequireAuth(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAuthenticated(c) {
			response.AbortWithError(c, http.StatusForbidden, response.ErrCodeForbidden, message)
			return
		}
		c.Next()
	}
}

// RequireAnonymous rejects logged in requests with 403 and the given message
func RequireAnonymous(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsAuthenticated(c) {
			response.AbortWithError(c, http.StatusForbidden, response.ErrCodeForbidden, message)
			return
		}
		c.Next()
	}
}
