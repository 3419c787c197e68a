package service

import (
	"context"

	"minka-treasury/internal/model"
)

// ProposalSource 提供当前开放的提案 (生产环境是 chain.Treasury)
type ProposalSource interface {
	ActiveProposals(ctx context.Context) (model.ChainProposalSet, error)
}

// MetadataValidator 校验组装好的元数据 (生产环境是 schema.MetadataValidator)
type MetadataValidator interface {
	Validate(metadata any) error
}

// Describer 处理 DESCRIBE 阶段
type Describer interface {
	Describe(ctx context.Context, rc RequestContext) (*model.ActionDescriptor, error)
}

// Composer 处理 BUILD 阶段。参数保持为原始字符串，由实现负责校验和转换
type Composer interface {
	Build(amount, proposalID string) (*model.ExecutionResponse, error)
}
