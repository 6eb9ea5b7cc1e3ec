package server

import (
	"time"

	"github.com/anmicius0/taskprogress/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestLogger tags each request with an ID (reusing the caller's X-Request-ID)
// and logs method, path, status and duration once the handler returns.
func requestLogger() gin.HandlerFunc {
	log := utils.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(ctxRequestID, reqID)
		c.Header(HeaderRequestID, reqID)

		c.Next()

		log.Info("http request",
			zap.String(utils.FieldMethod, c.Request.Method),
			zap.String(utils.FieldPath, c.Request.URL.Path),
			zap.Int(utils.FieldStatus, c.Writer.Status()),
			zap.Duration(utils.FieldDuration, time.Since(start)),
			zap.String(utils.FieldRequestID, reqID))
	}
}
