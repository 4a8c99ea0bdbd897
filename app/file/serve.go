package file

import (
	"bitwise74/task-api/internal"
	"bitwise74/task-api/internal/repository"
	"bitwise74/task-api/internal/storage"
	"bitwise74/task-api/pkg/response"
	"bitwise74/task-api/pkg/util"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgFileNotFound = "File not found"

func FileServe(c *gin.Context, d *internal.Deps) {
	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, msgFileNotFound)
		return
	}

	f, err := d.Files.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, msgFileNotFound)
			return
		}

		response.Internal(c, "Failed to fetch file", err)
		return
	}

	rc, err := d.Storage.Open(c.Request.Context(), f.Key)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			response.Error(c, http.StatusNotFound, msgFileNotFound)
			return
		}

		response.Internal(c, "Failed to open stored file", err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, f.Size, f.ContentType, rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("inline; filename=%q", f.Name),
	})
}
