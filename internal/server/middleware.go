package server

import (
	"net/http"

	"minka-treasury/internal/handler/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
	// 预检响应额外允许 CSRF / 版本相关的头
	corsPreflightHeaders = "Content-Type, Authorization, X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Date, X-Api-Version"

	requestIDHeader = "X-Request-ID"
)

// CORS 所有响应都允许任意来源。钱包客户端从不同的源调用 Action
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		if c.Request.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Headers", corsPreflightHeaders)
		} else {
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		}
		c.Next()
	}
}

// RequestID 沿用上游传入的 X-Request-ID，没有则生成一个
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(response.RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
