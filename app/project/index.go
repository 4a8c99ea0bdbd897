package project

import (
	"bitwise74/task-api/internal"
	"bitwise74/task-api/internal/repository"
	"bitwise74/task-api/pkg/response"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func ProjectIndex(c *gin.Context, d *internal.Deps) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	projects, err := d.Projects.List(c.Request.Context(), page, repository.DefaultPerPage)
	if err != nil {
		response.Internal(c, "Failed to list projects", err)
		return
	}

	c.JSON(http.StatusOK, projects)
}
