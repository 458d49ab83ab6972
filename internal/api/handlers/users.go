package handlers

import (
	"net/http"

	"skillport-api/internal/apperr"
	"skillport-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GET /users?role=
func ListUsers(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		users, err := ctx.Users.List(reqCtx, c.Query("role"))
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// POST /users/signup
func Signup(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.UserFields
		if err := bindJSON(c, &in); err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		user, err := ctx.Users.Signup(reqCtx, in)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// POST /users/login
func Login(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds service.Credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			ctx.respondError(c, apperr.Validation("Email and password are required"))
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		user, err := ctx.Users.Login(reqCtx, creds)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// GET /users/:id
func GetUser(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		user, err := ctx.Users.Get(reqCtx, userID)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// PUT /users/:id
func UpdateUser(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		var in service.UserFields
		if err := bindJSON(c, &in); err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		user, err := ctx.Users.Update(reqCtx, userID, in)
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// DELETE /users/:id
func DeleteUser(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := pathID(c, "id")
		if err != nil {
			ctx.respondError(c, err)
			return
		}

		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		if err := ctx.Users.Delete(reqCtx, userID); err != nil {
			ctx.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}

// GET /users/health
func Health(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqCtx, cancel := ctx.requestContext(c)
		defer cancel()

		c.JSON(http.StatusOK, ctx.Users.Health(reqCtx))
	}
}
