// Package user contains account endpoints
package user

import (
	"bitwise74/task-api/internal"
	"bitwise74/task-api/internal/model"
	"bitwise74/task-api/pkg/response"
	"bitwise74/task-api/pkg/util"
	"bitwise74/task-api/pkg/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func UserRegister(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	var data registerBody
	if err := util.BindJSON(c, &data); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgInvalidBody)

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.UsernameValidator(data.Username); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	taken, err := d.Users.EmailTaken(c.Request.Context(), data.Email)
	if err != nil {
		response.Internal(c, "Failed to check if user is registered", err)
		return
	}

	if taken {
		response.Error(c, http.StatusConflict, "This email is already registered. Please login or use a different email")
		return
	}

	hash, err := d.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		response.Internal(c, "Failed to hash password", err)
		return
	}

	u, err := d.Users.Create(c.Request.Context(), model.User{
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: hash,
	})
	if err != nil {
		response.Internal(c, "Failed to create user", err)
		return
	}

	c.JSON(http.StatusOK, u)
}
