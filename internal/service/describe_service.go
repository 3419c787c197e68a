package service

import (
	"context"
	"strings"

	"minka-treasury/internal/model"
	"minka-treasury/pkg/config"
	"minka-treasury/pkg/errno"
)

// RequestContext 构造 baseUrl 所需的请求信息
type RequestContext struct {
	Host  string // Host 头
	Proto string // X-Forwarded-Proto 头
}

// BaseURL 缺失的头使用默认值。X-Forwarded-Proto 可能是逗号分隔的列表，取第一个
func (rc RequestContext) BaseURL(defaultHost, defaultProto string) string {
	host := strings.TrimSpace(rc.Host)
	if host == "" {
		host = defaultHost
	}

	proto := rc.Proto
	if i := strings.IndexByte(proto, ','); i >= 0 {
		proto = proto[:i]
	}
	proto = strings.ToLower(strings.TrimSpace(proto))
	if proto == "" {
		proto = defaultProto
	}

	return proto + "://" + host
}

// DescribeService 生成 Action 描述 (DESCRIBE 阶段)。
// 每次调用都重新读取链上状态，不缓存
type DescribeService struct {
	cfg         config.ActionConfig
	sourceChain string
	actions     []ActionTemplate
	validator   MetadataValidator
}

var _ Describer = (*DescribeService)(nil)

func NewDescribeService(cfg config.ActionConfig, sourceChain string, validator MetadataValidator, actions ...ActionTemplate) *DescribeService {
	return &DescribeService{
		cfg:         cfg,
		sourceChain: sourceChain,
		actions:     actions,
		validator:   validator,
	}
}

func (s *DescribeService) Describe(ctx context.Context, rc RequestContext) (*model.ActionDescriptor, error) {
	baseURL := rc.BaseURL(s.cfg.DefaultHost, s.cfg.DefaultProto)

	actions := make([]model.ActionDefinition, 0, len(s.actions))
	for _, tpl := range s.actions {
		def, err := tpl.resolve(ctx, s.sourceChain)
		if err != nil {
			return nil, err
		}
		actions = append(actions, def)
	}

	descriptor := &model.ActionDescriptor{
		URL:         s.cfg.URL,
		Icon:        baseURL + s.cfg.Icon,
		Title:       s.cfg.Title,
		BaseURL:     baseURL,
		Description: s.cfg.Description,
		Actions:     actions,
	}

	if err := s.validator.Validate(descriptor); err != nil {
		return nil, errno.ErrValidation.Wrap(err)
	}
	return descriptor, nil
}
