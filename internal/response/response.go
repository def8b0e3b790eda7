package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Bodies are flat JSON objects, not wrapped in an envelope: the frontend
// consumes fields like `user` and `results` at the top level.

// ErrorBody is the standard shape for non-validation errors.
type ErrorBody struct {
	Code   ErrCode `json:"code"`
	Detail string  `json:"detail"`
}

// JSON sends a successful response with the given status code and payload.
func JSON(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

// NoContent sends an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail sends an error response with an error code and its canned message.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorBody{Code: code, Detail: GetMessage(code)})
}

// FailFields sends a validation error response. The body is the field→message
// map itself, so clients can key error text by input name. All violations are
// reported together, never just the first.
func FailFields(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, fields)
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Code: code, Detail: GetMessage(code)})
}
