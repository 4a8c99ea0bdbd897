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

func ProjectDestroy(c *gin.Context, d *internal.Deps) {
	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, msgDestroyFailed)
		return
	}

	if err := d.Projects.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, msgDestroyFailed)
			return
		}

		response.Internal(c, "Failed to delete project", err)
		return
	}

	c.Status(http.StatusNoContent)
}
