package model

import (
	"fmt"
	"math/big"
)

// 参数类型 (与 Sherry mini-app 元数据一致)
const (
	ParamTypeRadio    = "radio"
	ParamTypeSelect   = "select"
	ParamTypeText     = "text"
	ParamTypeNumber   = "number"
	ParamTypeAddress  = "address"
	ParamTypeBoolean  = "boolean"
	ParamTypeTextArea = "textarea"
)

// ActionTypeDynamic 表示执行时需要回调服务端构造交易
const ActionTypeDynamic = "dynamic"

// ActionDescriptor 是 GET 返回的完整描述
type ActionDescriptor struct {
	URL         string             `json:"url"`
	Icon        string             `json:"icon"`
	Title       string             `json:"title"`
	BaseURL     string             `json:"baseUrl"`
	Description string             `json:"description"`
	Actions     []ActionDefinition `json:"actions"`
}

// ActionDefinition 一个可调用的操作。Path 是客户端构造交易时要 POST 的相对路径
type ActionDefinition struct {
	Type        string          `json:"type"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Chains      ActionChains    `json:"chains"`
	Path        string          `json:"path"`
	Params      []ParameterSpec `json:"params"`
}

type ActionChains struct {
	Source string `json:"source"`
}

type ParameterSpec struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []Option `json:"options"`
}

// Option.Value 始终是字符串，大整数 ID 不会丢精度
type Option struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// ChainProposalSet 合约 getActualVotation() 返回的两个平行数组
type ChainProposalSet struct {
	IDs   []*big.Int
	Names []string
}

// Validate 检查两个数组长度一致且没有空 ID
func (s ChainProposalSet) Validate() error {
	if len(s.IDs) != len(s.Names) {
		return fmt.Errorf("proposal set length mismatch: %d ids, %d names", len(s.IDs), len(s.Names))
	}
	for i, id := range s.IDs {
		if id == nil {
			return fmt.Errorf("proposal id at index %d is nil", i)
		}
	}
	return nil
}

// Options 按合约返回的顺序把 (id, name) 组合为选项
func (s ChainProposalSet) Options() []Option {
	opts := make([]Option, 0, len(s.IDs))
	for i, id := range s.IDs {
		opts = append(opts, Option{
			Label: s.Names[i],
			Value: id.String(),
		})
	}
	return opts
}
