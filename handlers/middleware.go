package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestObserver records served requests.
type RequestObserver interface {
	ObserveRequest(method, route string, code int)
}

// RequestLogger replaces gin's default logger with a logrus access log.
func RequestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"query":     c.Request.URL.RawQuery,
			"status":    status,
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		})

		if private := c.Errors.ByType(gin.ErrorTypePrivate); len(private) > 0 {
			entry.Error(private.String())
			return
		}
		entry.Info("request served")
	}
}

// RequestMetrics counts every request by its route template.
func RequestMetrics(o RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		o.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
