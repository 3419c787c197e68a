package request

// DonationVoteRequest BUILD 阶段的查询参数: POST /api/mi-app?monto=0.01&voto=3
// 两个字段都保持字符串，数值转换交给 ComposeService
type DonationVoteRequest struct {
	Amount     string `form:"monto" binding:"required"` // 捐赠金额 (AVAX, 十进制)
	ProposalID string `form:"voto" binding:"required"`  // 提案 ID
}
