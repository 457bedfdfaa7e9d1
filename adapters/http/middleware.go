package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// ErrorMiddleware renders the last error a handler attached with c.Error.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr := apperror.As(err)
		status := apperror.ToHTTPStatus(appErr)

		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err,
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
			)
		} else {
			log.Warn("Request rejected",
				zap.String("path", c.FullPath()),
				zap.String("details", appErr.Details),
			)
		}

		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}

// CORSMiddleware answers preflight requests and tags every response with
// the allowed origin. "*" allows every origin.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := false
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[strings.TrimRight(o, "/")] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAll:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "":
			if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RequestLogger logs one line per request through the application logger.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Error("HTTP request", errors.New(c.Errors.String()), fields...)
			return
		}
		log.Info("HTTP request", fields...)
	}
}
