package intake

import (
	"encoding/json"
	"errors"
)

// Kind 输入形状，在边界上一次性判定
type Kind int

const (
	// KindStructured 完整结构化表单
	KindStructured Kind = iota
	// KindMapping 普通键值映射，尝试按表单解释
	KindMapping
	// KindFreeText 自由文本简介
	KindFreeText
)

// ErrMissingInput 请求里既没有 projectName 也没有 text
var ErrMissingInput = errors.New("input must include either 'projectName' or 'text'")

// Request 判定后的输入，三种形状互斥
type Request struct {
	Kind       Kind
	Structured *ProjectInput
	Mapping    map[string]any
	Text       string
}

// ParseRequest 把原始请求体判定为三种输入形状之一
// 含 text 走自由文本；含 projectName 且能按表单解码走结构化，
// 解码不成立则作为普通映射交给后续降级处理
func ParseRequest(raw []byte) (*Request, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, ErrMissingInput
	}

	if textRaw, ok := fields["text"]; ok {
		var text string
		if err := json.Unmarshal(textRaw, &text); err != nil {
			return nil, ErrMissingInput
		}
		return &Request{Kind: KindFreeText, Text: text}, nil
	}

	if _, ok := fields["projectName"]; !ok {
		return nil, ErrMissingInput
	}

	if input, ok := interpretAsInput(raw); ok {
		return &Request{Kind: KindStructured, Structured: input}, nil
	}

	var mapping map[string]any
	if err := json.Unmarshal(raw, &mapping); err != nil {
		return nil, ErrMissingInput
	}
	return &Request{Kind: KindMapping, Mapping: mapping}, nil
}

// interpretAsInput 尝试把原始体解释为结构化表单
// 类型不匹配或缺少名称/描述都视为解释失败
func interpretAsInput(raw []byte) (*ProjectInput, bool) {
	var input ProjectInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, false
	}
	if input.ProjectName == "" || input.ProjectDescription == "" {
		return nil, false
	}
	return &input, true
}
