package task

import (
	"bitwise74/task-api/internal"
	"bitwise74/task-api/internal/model"
	"bitwise74/task-api/internal/repository"
	"bitwise74/task-api/pkg/response"
	"bitwise74/task-api/pkg/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TaskUpdate(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, msgUpdateFailed)
		return
	}

	var patch model.TaskPatch
	if err := util.BindJSON(c, &patch); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgInvalidBody)

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	t, err := d.TaskService.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, msgUpdateFailed)
			return
		}

		response.Internal(c, "Failed to update task", err)
		return
	}

	c.JSON(http.StatusOK, t)
}
