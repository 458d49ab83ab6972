package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"skillport-api/internal/apperr"
	"skillport-api/internal/models"

	"github.com/gin-gonic/gin"
)

func ListStudentApplications(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		studentID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		apps, err := ctx.Applications.ListByStudent(reqCtx, studentID)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, apps)
	}
}

func ListJobApplications(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		apps, err := ctx.Applications.ListByJob(reqCtx, jobID)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, apps)
	}
}

func CreateApplication(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var app models.Application
		if err := bindJSON(c, &app); err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		created, err := ctx.Applications.Create(reqCtx, app)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, created)
	}
}

// PUT /applications/:id/status
func UpdateApplicationStatus(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		appID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		body, err := c.GetRawData()
		if err != nil {
			ctx.respondError(c, apperr.Validation("Malformed request body"))
			return
		}

		status, err := parseStatus(body)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		app, err := ctx.Applications.UpdateStatus(reqCtx, appID, status)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, app)
	}
}

// parseStatus accepts a JSON string, a {"status": ...} object or plain text.
func parseStatus(body []byte) (string, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return "", nil
	}

	switch body[0] {
	case '"':
		var s string
		if err := json.Unmarshal(body, &s); err != nil {
			return "", apperr.Validation("Malformed request body")
		}
		return s, nil
	case '{':
		var v struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(body, &v); err != nil {
			return "", apperr.Validation("Malformed request body")
		}
		return v.Status, nil
	default:
		return string(body), nil
	}
}
