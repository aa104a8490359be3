package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ute/bookshop/internal/logger"
)

// RequestLogger 请求日志中间件
//
// 学习要点:
// 1. 每个请求生成唯一的请求ID,写回X-Request-ID响应头,便于排查问题
// 2. 记录方法/路径/状态码/耗时/客户端IP,不记录请求体和Cookie等敏感内容
// 3. 超过阈值的慢请求升级为warn级别
func RequestLogger() gin.HandlerFunc {
	log := logger.Get()
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		event := log.Info()
		if c.Writer.Status() >= 500 || latency > 3*time.Second {
			event = log.Warn()
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP())

		if len(c.Errors) > 0 {
			event.Str("errors", c.Errors.String())
		}

		event.Msg("http request")
	}
}
