package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the success envelope for signup and unregister calls.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope: a single human-readable detail string.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// NotFound sends a 404 error.
func NotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Detail: detail})
}

// BadRequest sends a 400 error.
func BadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Detail: detail})
}

// InternalError sends a 500 error.
func InternalError(c *gin.Context, detail string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: detail})
}
