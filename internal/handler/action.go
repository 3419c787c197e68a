package handler

import (
	"net/http"

	"minka-treasury/internal/handler/request"
	"minka-treasury/internal/handler/response"
	"minka-treasury/internal/service"
	"minka-treasury/pkg/errno"
	"minka-treasury/pkg/monitor"
	"minka-treasury/pkg/validator"

	"github.com/gin-gonic/gin"
)

// ActionHandler 同一路径上的三个方法: GET 描述, POST 构造交易, OPTIONS 预检
type ActionHandler struct {
	describer service.Describer
	composer  service.Composer
}

func NewActionHandler(describer service.Describer, composer service.Composer) *ActionHandler {
	return &ActionHandler{
		describer: describer,
		composer:  composer,
	}
}

// Describe 返回 Action 元数据
// @Summary 获取 Action 元数据
// @Description 读取合约中开放的提案，返回 "Donate & Vote" 的参数描述
// @Tags Action
// @Produce json
// @Success 200 {object} model.ActionDescriptor
// @Failure 500 {object} response.ErrorBody
// @Router /api/mi-app [get]
func (h *ActionHandler) Describe(c *gin.Context) {
	rc := service.RequestContext{
		Host:  c.Request.Host,
		Proto: c.GetHeader("X-Forwarded-Proto"),
	}

	descriptor, err := h.describer.Describe(c.Request.Context(), rc)
	if err != nil {
		monitor.Business.DescribeTotal.WithLabelValues(monitor.ResultLabel(statusOf(err))).Inc()
		response.Error(c, err)
		return
	}

	monitor.Business.DescribeTotal.WithLabelValues(monitor.ResultLabel(http.StatusOK)).Inc()
	response.Success(c, descriptor)
}

// Build 构造未签名交易
// @Summary 构造捐赠并投票的交易
// @Description 校验 monto / voto，返回序列化的未签名交易
// @Tags Action
// @Produce json
// @Param monto query string true "捐赠金额 (AVAX)"
// @Param voto query string true "提案 ID"
// @Success 200 {object} model.ExecutionResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/mi-app [post]
func (h *ActionHandler) Build(c *gin.Context) {
	// 1. 绑定参数
	var req request.DonationVoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		e := errno.ErrInvalidParam
		if validator.MissingOnly(err) {
			e = errno.ErrMissingParam
		}
		h.buildFailed(c, e.WithMessage(validator.GetErrorMsg(err)).Wrap(err))
		return
	}

	// 2. 构造交易
	resp, err := h.composer.Build(req.Amount, req.ProposalID)
	if err != nil {
		h.buildFailed(c, err)
		return
	}

	monitor.Business.BuildTotal.WithLabelValues(monitor.ResultLabel(http.StatusOK)).Inc()
	response.Success(c, resp)
}

func (h *ActionHandler) buildFailed(c *gin.Context, err error) {
	monitor.Business.BuildTotal.WithLabelValues(monitor.ResultLabel(statusOf(err))).Inc()
	response.Error(c, err)
}

// Preflight CORS 预检，头部由 CORS 中间件写入
// @Summary CORS preflight
// @Tags Action
// @Success 204
// @Router /api/mi-app [options]
func (h *ActionHandler) Preflight(c *gin.Context) {
	c.AbortWithStatus(http.StatusNoContent)
}

func statusOf(err error) int {
	status, _, _ := errno.Decode(err)
	return status
}
