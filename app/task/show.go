package task

import (
	"bitwise74/task-api/internal"
	"bitwise74/task-api/internal/repository"
	"bitwise74/task-api/pkg/response"
	"bitwise74/task-api/pkg/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func TaskShow(c *gin.Context, d *internal.Deps) {
	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, msgShowFailed)
		return
	}

	t, err := d.Tasks.FindByID(c.Request.Context(), id, "User")
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, msgShowFailed)
			return
		}

		response.Internal(c, "Failed to fetch task", err)
		return
	}

	c.JSON(http.StatusOK, t)
}
