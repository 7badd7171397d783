package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDHeader carries the request correlation ID.
const requestIDHeader = "X-Request-Id"

// RequestID attaches a correlation ID to every response. An incoming
// X-Request-Id header is echoed back unchanged; otherwise a fresh UUID is
// generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
