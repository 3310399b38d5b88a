// Package response holds the JSON shapes shared by handlers and middleware.
package response

import "github.com/gin-gonic/gin"

// Detail is the error body used for every failure response. Clients key off
// the "detail" field, so the shape must stay stable.
type Detail struct {
	Detail string `json:"detail"`
}

// Fail writes an error response with the given status and reason.
func Fail(c *gin.Context, code int, reason string) {
	c.JSON(code, Detail{Detail: reason})
}

// AbortFail writes an error response and stops the handler chain. Used by
// middleware so no downstream work runs after a rejection.
func AbortFail(c *gin.Context, code int, reason string) {
	c.AbortWithStatusJSON(code, Detail{Detail: reason})
}
