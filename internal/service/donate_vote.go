package service

import "minka-treasury/internal/model"

// 查询参数名，DESCRIBE 的 params 和 BUILD 的 query string 共用
const (
	ParamAmount   = "monto"
	ParamProposal = "voto"
)

// DonationTiers 三档捐赠金额 (单位 AVAX)
var DonationTiers = StaticOptions{
	{Label: "Small donation 0.01 Avax", Value: "0.01", Description: "0.01 AVAX"},
	{Label: "Medium donation 0.05 Avax", Value: "0.05", Description: "0.05 AVAX"},
	{Label: "Large donation 0.1 Avax", Value: "0.1", Description: "0.1 AVAX"},
}

// DonateAndVote 捐赠并投票: 一笔交易同时转账和调用 vote(proposalId)
func DonateAndVote(path string, proposals ProposalSource) ActionTemplate {
	return ActionTemplate{
		Label:       "Donate & Vote",
		Description: "Make your donation and vote for one of the active proposals",
		Path:        path,
		Params: []ParamTemplate{
			{
				Name:     ParamAmount,
				Label:    "Donation Amount",
				Type:     model.ParamTypeRadio,
				Required: true,
				Options:  DonationTiers,
			},
			{
				Name:     ParamProposal,
				Label:    "Select your vote",
				Type:     model.ParamTypeSelect,
				Required: true,
				Options:  ProposalOptions{Source: proposals},
			},
		},
	}
}
