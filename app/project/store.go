package project

import (
	"bitwise74/task-api/internal"
	"bitwise74/task-api/internal/model"
	"bitwise74/task-api/pkg/response"
	"bitwise74/task-api/pkg/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type storeBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func ProjectStore(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")
	userID := c.MustGet("userID").(uint)

	var data storeBody
	if err := util.BindJSON(c, &data); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgInvalidBody)

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	p, err := d.Projects.Create(c.Request.Context(), model.Project{
		UserID:      userID,
		Title:       data.Title,
		Description: data.Description,
	})
	if err != nil {
		response.Internal(c, "Failed to create project", err)
		return
	}

	c.JSON(http.StatusOK, p)
}
