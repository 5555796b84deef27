package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Logger emits one structured log line per request with latency, status and
// request id. Health checks are skipped to keep the logs readable.
func Logger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		inicio := time.Now()
		c.Next()

		evento := log.Info()
		if c.Writer.Status() >= 500 {
			evento = log.Error()
		} else if c.Writer.Status() >= 400 {
			evento = log.Warn()
		}

		evento.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(inicio)).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(RequestIDKey)).
			Msg("request")
	}
}
