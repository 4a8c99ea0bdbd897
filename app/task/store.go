package task

import (
	"bitwise74/task-api/internal"
	"bitwise74/task-api/internal/model"
	"bitwise74/task-api/pkg/response"
	"bitwise74/task-api/pkg/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type storeBody struct {
	UserID      *uint      `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	FileID      *uint      `json:"file_id"`
}

func TaskStore(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	projectID, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, msgProjectNotFound)
		return
	}

	var data storeBody
	if err := util.BindJSON(c, &data); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgInvalidBody)

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	t, err := d.TaskService.Create(c.Request.Context(), model.Task{
		ProjectID:   projectID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		DueDate:     data.DueDate,
		FileID:      data.FileID,
	})
	if err != nil {
		response.Internal(c, "Failed to create task", err)
		return
	}

	c.JSON(http.StatusOK, t)
}
