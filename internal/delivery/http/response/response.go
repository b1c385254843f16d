package response

import (
	"github.com/gin-gonic/gin"
)

// Mutation is the body returned by create, update and delete.
type Mutation struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorBody is the body of every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// Success sends a {message, data} body
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Mutation{
		Message: message,
		Data:    data,
	})
}

// Raw sends data without a wrapper. Used by list and get endpoints.
func Raw(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error sends an {error} body
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}
