package handlers

import (
	"net/http"

	"skillport-api/internal/models"

	"github.com/gin-gonic/gin"
)

func ListUserSkills(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		skills, err := ctx.Skills.ListByUser(reqCtx, userID)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, skills)
	}
}

func CreateSkill(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var skill models.Skill
		if err := bindJSON(c, &skill); err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		created, err := ctx.Skills.Create(reqCtx, skill)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, created)
	}
}

func DeleteSkill(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		skillID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		if err := ctx.Skills.Delete(reqCtx, skillID); err != nil {
			ctx.respondError(c, err)
			return
		}

		c.Status(http.StatusOK)
	}
}
