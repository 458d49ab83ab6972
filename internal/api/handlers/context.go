package handlers

import (
	"context"

	"skillport-api/internal/config"
	"skillport-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context contains deps for all handlers
type Context struct {
	Users          *service.UserService
	Jobs           *service.JobService
	Applications   *service.ApplicationService
	Skills         *service.SkillService
	Projects       *service.ProjectService
	Certifications *service.CertificationService
	Config         *config.Config
	Logger         *zap.Logger
}

// requestContext bounds the storage work of one request.
func (ctx *Context) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), ctx.Config.RequestTimeout)
}
