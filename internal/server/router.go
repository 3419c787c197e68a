package server

import (
	"minka-treasury/internal/handler"

	"minka-treasury/pkg/monitor"
	"minka-treasury/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewHTTPRouter 初始化并返回一个 Gin Engine
// actionPath: Action 所在路径，例如 "/api/mi-app"
func NewHTTPRouter(actionPath string, actions *handler.ActionHandler) *gin.Engine {
	// 0. 初始化监控指标和参数校验
	monitor.Init()
	validator.Init()

	// 1. 创建 Engine (使用默认中间件: Logger, Recovery)
	r := gin.Default()

	// 2. 注册通用中间件
	r.Use(RequestID())
	r.Use(CORS())
	r.Use(monitor.PrometheusMiddleware())

	// 3. 注册基础路由
	r.GET("/health", handler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 4. Action 路由: 同一路径上的 DESCRIBE / BUILD / 预检
	r.GET(actionPath, actions.Describe)
	r.POST(actionPath, actions.Build)
	r.OPTIONS(actionPath, actions.Preflight)

	return r
}
