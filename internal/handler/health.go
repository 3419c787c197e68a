package handler

import (
	"minka-treasury/internal/handler/response"

	"github.com/gin-gonic/gin"
)

// Version 构建时通过 -ldflags "-X minka-treasury/internal/handler.Version=..." 注入
var Version = "dev"

// HealthCheck godoc
// @Summary Check system health
// @Description Get the current health status of the server
// @Tags system
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "UP",
		"version": Version,
		"service": "minka-action-server",
	})
}
