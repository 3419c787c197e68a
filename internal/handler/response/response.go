package response

import (
	"net/http"

	"minka-treasury/pkg/errno"
	"minka-treasury/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey gin.Context 中保存请求 ID 的键
const RequestIDKey = "request_id"

// ErrorBody 所有失败响应的结构。Code 是稳定的错误编号，Error 是可读消息
type ErrorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Success 直接返回业务数据 (客户端按 Action 协议解析，不包信封)
func Success(c *gin.Context, data interface{}) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(http.StatusOK, data)
}

// Error 把 error 转换为 HTTP 状态码和 ErrorBody，并记录日志。
// 内部原因 (RPC 错误等) 只写日志，不返回给客户端
func Error(c *gin.Context, err error) {
	status, code, msg := errno.Decode(err)

	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
		zap.Int("code", code),
		zap.Error(err),
	}
	log := logger.With(zap.String(RequestIDKey, c.GetString(RequestIDKey)))

	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Warn("request rejected", fields...)
	}

	c.AbortWithStatusJSON(status, ErrorBody{Error: msg, Code: code})
}
