package user

import (
	"bitwise74/task-api/internal"
	"bitwise74/task-api/internal/repository"
	"bitwise74/task-api/pkg/response"
	"bitwise74/task-api/pkg/security"
	"bitwise74/task-api/pkg/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	tokenMaxAge       = 60 * 60 * 24 * 30
	msgBadCredentials = "Invalid credentials"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserLogin exchanges an email and password pair for a bearer token. The
// token is also set as the auth_token cookie.
func UserLogin(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	var data loginBody
	if err := util.BindJSON(c, &data); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgInvalidBody)

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Email == "" || data.Password == "" {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	u, err := d.Users.FindByEmail(c.Request.Context(), data.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusUnauthorized, msgBadCredentials)
			return
		}

		response.Internal(c, "Failed to fetch user", err)
		return
	}

	ok, err := d.Argon.VerifyPasswd(data.Password, u.PasswordHash)
	if err != nil {
		response.Internal(c, "Failed to verify password", err)
		return
	}

	if !ok {
		response.Error(c, http.StatusUnauthorized, msgBadCredentials)
		return
	}

	token, err := security.MakeAuthToken(u.ID, d.JWTSecret)
	if err != nil {
		response.Internal(c, "Failed to generate JWT auth token", err)
		return
	}

	c.SetCookie("auth_token", token, tokenMaxAge, "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, gin.H{
		"type":  "bearer",
		"token": token,
	})
}
