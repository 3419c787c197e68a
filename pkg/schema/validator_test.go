package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMetadata() map[string]any {
	return map[string]any{
		"url":         "https://sherry.social",
		"icon":        "http://localhost:3000/minka_treasury.png",
		"title":       "Minka Treasury",
		"baseUrl":     "http://localhost:3000",
		"description": "Donate and vote",
		"actions": []any{
			map[string]any{
				"type":        "dynamic",
				"label":       "Donate & Vote",
				"description": "Make your donation and vote",
				"chains":      map[string]any{"source": "fuji"},
				"path":        "/api/mi-app",
				"params": []any{
					map[string]any{
						"name":     "monto",
						"label":    "Donation Amount",
						"type":     "radio",
						"required": true,
						"options": []any{
							map[string]any{"label": "Small donation 0.01 Avax", "value": "0.01", "description": "0.01 AVAX"},
						},
					},
					map[string]any{
						"name":     "voto",
						"label":    "Select your vote",
						"type":     "select",
						"required": true,
						"options":  []any{},
					},
				},
			},
		},
	}
}

func TestMetadataValidatorAccepts(t *testing.T) {
	v, err := NewMetadataValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(validMetadata()))
}

func TestMetadataValidatorRejects(t *testing.T) {
	v := MustNewMetadataValidator()

	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"missing title", func(m map[string]any) { delete(m, "title") }},
		{"relative base url", func(m map[string]any) { m["baseUrl"] = "example.com/app" }},
		{"no actions", func(m map[string]any) { m["actions"] = []any{} }},
		{"wrong action type", func(m map[string]any) { action(m)["type"] = "transfer" }},
		{"path without leading slash", func(m map[string]any) { action(m)["path"] = "api/mi-app" }},
		{"unknown param type", func(m map[string]any) { param(m, 0)["type"] = "slider" }},
		{"select without options", func(m map[string]any) { delete(param(m, 1), "options") }},
		{"select with null options", func(m map[string]any) { param(m, 1)["options"] = nil }},
		{"option without value", func(m map[string]any) {
			param(m, 0)["options"] = []any{map[string]any{"label": "x"}}
		}},
		{"duplicate param name", func(m map[string]any) { param(m, 1)["name"] = "monto" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMetadata()
			tt.mutate(m)
			assert.Error(t, v.Validate(m))
		})
	}
}

func action(m map[string]any) map[string]any {
	return m["actions"].([]any)[0].(map[string]any)
}

func param(m map[string]any, i int) map[string]any {
	return action(m)["params"].([]any)[i].(map[string]any)
}
