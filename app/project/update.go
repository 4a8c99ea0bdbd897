package project

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

func ProjectUpdate(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, msgUpdateFailed)
		return
	}

	// Only title and description can change, anything else in the body is dropped
	var patch model.ProjectPatch
	if err := util.BindJSON(c, &patch); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgInvalidBody)

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	p, err := d.Projects.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, msgUpdateFailed)
			return
		}

		response.Internal(c, "Failed to update project", err)
		return
	}

	c.JSON(http.StatusOK, p)
}
