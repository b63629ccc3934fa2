package api

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/dfs-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the identifier assigned to each request.
	RequestIDHeader = "X-Request-ID"

	// ContextRequestID is the key used to store the request ID in the Gin context.
	ContextRequestID = "requestID"
)

// RequestID tags each request with a UUID, keeping one supplied by the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one line per handled request.
func RequestLogger(logger i.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		msg := fmt.Sprintf("%s %s -> %d in %s request=%s",
			c.Request.Method, c.Request.URL.RequestURI(), c.Writer.Status(), time.Since(began), c.GetString(ContextRequestID))
		switch {
		case c.Writer.Status() >= 500:
			logger.Error(msg)
		case c.Writer.Status() >= 400:
			logger.Warning(msg)
		default:
			logger.Info(msg)
		}
	}
}
