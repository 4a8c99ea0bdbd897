package project

import (
	"bitwise74/task-api/internal"
	"bitwise74/task-api/internal/repository"
	"bitwise74/task-api/pkg/response"
	"bitwise74/task-api/pkg/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func ProjectShow(c *gin.Context, d *internal.Deps) {
	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, msgShowFailed)
		return
	}

	p, err := d.Projects.FindByID(c.Request.Context(), id, "User", "Tasks")
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, msgShowFailed)
			return
		}

		response.Internal(c, "Failed to fetch project", err)
		return
	}

	c.JSON(http.StatusOK, p)
}
