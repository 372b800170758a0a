package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body shape for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespError responds with a short human-readable error message.
func RespError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, ErrorResponse{Error: msg})
}

// RespUnauthorized responds 401 and aborts the request chain.
func RespUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: msg})
}

// RespNotFound responds with the uniform not-found body. Cross-owner and
// nonexistent resources are deliberately indistinguishable.
func RespNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
}
