package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"grand-azure-hotel/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses an incoming X-Request-ID or makes one, echoes it back and
// puts a logger carrying it on the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)
		c.Set("request_id", requestID)

		l := log.Logger.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), &l))

		c.Next()
	}
}
