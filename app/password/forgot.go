// Package password contains the password recovery endpoint
package password

import (
	"bitwise74/task-api/internal"
	"bitwise74/task-api/internal/repository"
	"bitwise74/task-api/pkg/response"
	"bitwise74/task-api/pkg/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgEmailNotFound = "E-mail não encontrado"

type forgotBody struct {
	Email       string `json:"email"`
	RedirectURL string `json:"redirect_url"`
}

// ForgotPassword mails a reset link to a registered address. It answers 200
// with an empty body on success.
func ForgotPassword(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	var data forgotBody
	if err := util.BindJSON(c, &data); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgInvalidBody)

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err := d.PasswordReset.ForgotPassword(c.Request.Context(), data.Email, data.RedirectURL)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, msgEmailNotFound)
			return
		}

		response.Internal(c, "Failed to send password reset mail", err)
		return
	}

	c.Status(http.StatusOK)
}
