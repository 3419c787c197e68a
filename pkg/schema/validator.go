// Package schema 校验 Action 元数据的结构。
// 结构规则写在内嵌的 JSON Schema 中，JSON Schema 表达不了的规则 (参数名重复) 在 Go 里补充检查。
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://minka.schemas.local/action-metadata.schema.json"

//go:embed action_metadata.schema.json
var actionMetadataSchema []byte

// MetadataValidator 是编译好的元数据 Schema，编译后只读，可并发使用
type MetadataValidator struct {
	schema *jsonschema.Schema
}

func NewMetadataValidator() (*MetadataValidator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	c.AssertFormat = true
	if err := c.AddResource(schemaURL, bytes.NewReader(actionMetadataSchema)); err != nil {
		return nil, fmt.Errorf("metadata schema load failed: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("metadata schema compile failed: %w", err)
	}
	return &MetadataValidator{schema: compiled}, nil
}

// MustNewMetadataValidator 内嵌 Schema 编译失败属于程序错误
func MustNewMetadataValidator() *MetadataValidator {
	v, err := NewMetadataValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate 接收任意可 JSON 序列化的元数据 (通常是 *model.ActionDescriptor)
func (v *MetadataValidator) Validate(metadata any) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	// v5 要求传入 json 解码后的值，数字需保持为 json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode metadata: %w", err)
	}

	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("metadata schema: %w", err)
	}

	return checkUniqueParams(doc)
}

// checkUniqueParams 同一个 action 内参数名必须唯一，否则客户端无法拼出查询串
func checkUniqueParams(doc any) error {
	root, _ := doc.(map[string]any)
	actions, _ := root["actions"].([]any)
	for i, a := range actions {
		action, _ := a.(map[string]any)
		params, _ := action["params"].([]any)

		seen := make(map[string]bool, len(params))
		for _, p := range params {
			param, _ := p.(map[string]any)
			name, _ := param["name"].(string)
			if seen[name] {
				return fmt.Errorf("metadata: action %d has duplicate param %q", i, name)
			}
			seen[name] = true
		}
	}
	return nil
}
