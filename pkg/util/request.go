package util

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID parses a positive numeric path parameter
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

// BindJSON decodes the request body into v. An empty body leaves v untouched.
func BindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
