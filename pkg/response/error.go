// Package response writes the JSON error envelope shared by every endpoint
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MsgInternal    = "Internal server error"
	MsgInvalidBody = "Invalid request body"
)

type Envelope struct {
	Error Body `json:"error"`
}

type Body struct {
	Message string `json:"message"`
}

// Error aborts the request with status and {"error":{"message":msg}}
func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Envelope{Error: Body{Message: msg}})
}

// Internal logs err under logMsg and answers with a generic 500
func Internal(c *gin.Context, logMsg string, err error) {
	zap.L().Error(logMsg, zap.Error(err), zap.String("requestID", c.GetString("requestID")))
	Error(c, http.StatusInternalServerError, MsgInternal)
}
