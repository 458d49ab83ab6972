package handlers

import (
	"net/http"

	"skillport-api/internal/models"

	"github.com/gin-gonic/gin"
)

func ListProjects(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		projects, err := ctx.Projects.List(reqCtx)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

func ListUserProjects(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		projects, err := ctx.Projects.ListByUser(reqCtx, userID)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

func CreateProject(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var project models.Project
		if err := bindJSON(c, &project); err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		created, err := ctx.Projects.Create(reqCtx, project)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, created)
	}
}

func DeleteProject(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		if err := ctx.Projects.Delete(reqCtx, projectID); err != nil {
			ctx.respondError(c, err)
			return
		}

		c.Status(http.StatusOK)
	}
}
