package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request correlation ID.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey stores the ID in the gin context.
	RequestIDKey = "request_id"
)

// RequestID ensures every request has a correlation ID: reuse the inbound
// header if present, otherwise mint a UUID, and echo it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}
