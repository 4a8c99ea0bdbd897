package task

import (
	"bitwise74/task-api/internal"
	"bitwise74/task-api/pkg/response"
	"bitwise74/task-api/pkg/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TaskIndex lists the tasks of a project. An unknown project just has no tasks.
func TaskIndex(c *gin.Context, d *internal.Deps) {
	projectID, ok := util.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusOK, []any{})
		return
	}

	tasks, err := d.Tasks.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		response.Internal(c, "Failed to list tasks", err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
