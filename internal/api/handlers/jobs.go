package handlers

import (
	"net/http"

	"skillport-api/internal/models"

	"github.com/gin-gonic/gin"
)

func ListJobs(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		jobs, err := ctx.Jobs.List(reqCtx)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, jobs)
	}
}

func ListRecruiterJobs(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		recruiterID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		jobs, err := ctx.Jobs.ListByRecruiter(reqCtx, recruiterID)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, jobs)
	}
}

func GetJob(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		job, err := ctx.Jobs.Get(reqCtx, jobID)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, job)
	}
}

func CreateJob(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var job models.Job
		if err := bindJSON(c, &job); err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		created, err := ctx.Jobs.Create(reqCtx, job)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, created)
	}
}

func DeleteJob(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		if err := ctx.Jobs.Delete(reqCtx, jobID); err != nil {
			ctx.respondError(c, err)
			return
		}

		c.Status(http.StatusOK)
	}
}
