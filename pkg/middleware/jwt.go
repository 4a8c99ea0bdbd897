package middleware

import (
	"bitwise74/task-api/internal/model"
	"bitwise74/task-api/internal/repository"
	"bitwise74/task-api/pkg/response"
	"bitwise74/task-api/pkg/security"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserFinder interface {
	FindByID(ctx context.Context, id uint) (model.User, error)
}

// NewJWTMiddleware authenticates requests carrying a bearer token in the
// Authorization header or the auth_token cookie and sets userID
func NewJWTMiddleware(users UserFinder, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetString("requestID")

		tokenStr := bearerToken(c)
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "Missing authorization token")
			return
		}

		userID, err := security.ParseAuthToken(tokenStr, secret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Authorization token invalid")

			zap.L().Debug("Failed to parse token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		// Tokens outlive deleted accounts, reject those
		if _, err := users.FindByID(c.Request.Context(), userID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Error(c, http.StatusUnauthorized, "User not found")
				return
			}

			response.Internal(c, "Failed to check if user exists", err)
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if scheme, token, ok := strings.Cut(h, " "); ok && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}

	return ""
}
