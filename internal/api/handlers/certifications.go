package handlers

import (
	"net/http"

	"skillport-api/internal/models"

	"github.com/gin-gonic/gin"
)

func ListCertifications(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		certs, err := ctx.Certifications.List(reqCtx)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, certs)
	}
}

func ListUserCertifications(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		certs, err := ctx.Certifications.ListByUser(reqCtx, userID)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, certs)
	}
}

func CreateCertification(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cert models.Certification
		if err := bindJSON(c, &cert); err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		created, err := ctx.Certifications.Create(reqCtx, cert)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, created)
	}
}

func DeleteCertification(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		certID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		if err := ctx.Certifications.Delete(reqCtx, certID); err != nil {
			ctx.respondError(c, err)
			return
		}

		c.Status(http.StatusOK)
	}
}
