package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/brettarda/brett-dev/internal/theme"
)

const requestIDHeader = "X-Request-ID"

// requestLogger tags each request with an id, puts a child logger on the
// request context and logs one line when the handler returns.
func requestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		log := base.With().Str("request_id", id).Logger()
		c.Request = c.Request.WithContext(log.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		ev := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			ev = log.Error()
		case status >= http.StatusBadRequest:
			ev = log.Warn()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// clientHints asks the browser for its color scheme on later requests and
// marks responses as varying by it.
func clientHints() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept-CH", theme.ClientHintHeader)
		c.Header("Critical-CH", theme.ClientHintHeader)
		c.Writer.Header().Add("Vary", theme.ClientHintHeader)
		c.Writer.Header().Add("Vary", "Cookie")
		c.Next()
	}
}

// logger returns the request-scoped logger.
func logger(c *gin.Context) *zerolog.Logger {
	return zerolog.Ctx(c.Request.Context())
}
