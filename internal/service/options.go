package service

import (
	"context"
	"time"

	"minka-treasury/internal/model"
	"minka-treasury/pkg/errno"
	"minka-treasury/pkg/monitor"
)

// OptionSource 是参数选项的来源。
// 目前有两种: StaticOptions (写死在模板里) 和 ProposalOptions (每次请求从链上读取)
type OptionSource interface {
	Resolve(ctx context.Context) ([]model.Option, error)
}

// StaticOptions 固定选项
type StaticOptions []model.Option

func (s StaticOptions) Resolve(context.Context) ([]model.Option, error) {
	out := make([]model.Option, len(s))
	copy(out, s)
	return out, nil
}

// ProposalOptions 从合约读取开放中的提案，value = 提案 ID，label = 提案名称
type ProposalOptions struct {
	Source ProposalSource
}

func (p ProposalOptions) Resolve(ctx context.Context) ([]model.Option, error) {
	start := time.Now()
	set, err := p.Source.ActiveProposals(ctx)
	monitor.Business.ChainReadDuration.WithLabelValues("getActualVotation").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, errno.ErrUpstreamRead.Wrap(err)
	}
	if err := set.Validate(); err != nil {
		return nil, errno.ErrUpstreamRead.Wrap(err)
	}

	monitor.Business.ActiveProposals.Set(float64(len(set.IDs)))
	return set.Options(), nil
}

// ParamTemplate 参数模板，Options 为 nil 表示自由输入 (text/number 等)
type ParamTemplate struct {
	Name     string
	Label    string
	Type     string
	Required bool
	Options  OptionSource
}

func (p ParamTemplate) resolve(ctx context.Context) (model.ParameterSpec, error) {
	spec := model.ParameterSpec{
		Name:     p.Name,
		Label:    p.Label,
		Type:     p.Type,
		Required: p.Required,
	}
	if p.Options == nil {
		return spec, nil
	}

	opts, err := p.Options.Resolve(ctx)
	if err != nil {
		return model.ParameterSpec{}, err
	}
	if opts == nil {
		opts = []model.Option{}
	}
	spec.Options = opts
	return spec, nil
}

// ActionTemplate 描述一个 action；Path 是 BUILD 阶段的相对路径
type ActionTemplate struct {
	Label       string
	Description string
	Path        string
	Params      []ParamTemplate
}

func (a ActionTemplate) resolve(ctx context.Context, sourceChain string) (model.ActionDefinition, error) {
	params := make([]model.ParameterSpec, 0, len(a.Params))
	for _, p := range a.Params {
		spec, err := p.resolve(ctx)
		if err != nil {
			return model.ActionDefinition{}, err
		}
		params = append(params, spec)
	}

	return model.ActionDefinition{
		Type:        model.ActionTypeDynamic,
		Label:       a.Label,
		Description: a.Description,
		Chains:      model.ActionChains{Source: sourceChain},
		Path:        a.Path,
		Params:      params,
	}, nil
}
