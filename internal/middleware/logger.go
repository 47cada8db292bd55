package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggerMiddleware logs one line per request. Register it first.
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logger == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		l := logger.With(
			zap.String("method", c.Request.Method),
			zap.String("uri", c.Request.RequestURI),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
		if msg := c.Errors.ByType(gin.ErrorTypePrivate).String(); msg != "" {
			l = l.With(zap.String("error", msg))
		}

		switch {
		case status >= http.StatusInternalServerError:
			l.Error("server error")
		case status >= http.StatusBadRequest:
			l.Warn("client error")
		default:
			l.Debug("request processed")
		}
	}
}
