package handlers

import (
	"net/http"
	"strconv"

	"skillport-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (ctx *Context) respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		ctx.Logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	c.JSON(status, gin.H{"message": apperr.PublicMessage(err)})
}

// pathID reads a numeric path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperr.Validation("Invalid " + name)
	}
	return id, nil
}

func bindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return apperr.Validation("Malformed request body")
	}
	return nil
}
