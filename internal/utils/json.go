package utils

import (
	"encoding/json"
	"errors"
	"strings"

	"k8s.io/klog/v2"
)

// ErrNoJSONArray 文本中找不到可解析的 JSON 数组
var ErrNoJSONArray = errors.New("no JSON array found in text")

// ExtractJSON 从文本中提取 JSON 对象部分（花括号配对扫描）
// 找不到完整对象时原样返回
func ExtractJSON(content string) string {
	start := -1
	end := -1
	depth := 0

	for i, ch := range content {
		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 && start != -1 {
				end = i + 1
				break
			}
		}
	}

	if start >= 0 && end > start {
		return content[start:end]
	}

	return content
}

// ExtractJSONArray 从文本中截取 JSON 数组部分
// 取第一个 '[' 到最后一个 ']'（含），生成端前后可能带说明性文字
// 区间不存在时返回 ErrNoJSONArray；是否能解析由调用方决定
func ExtractJSONArray(content string) (string, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSONArray
	}
	return content[start : end+1], nil
}

// StripCodeFence 去掉字符串首尾成对的 ```json / ``` 代码块标记
// 只处理字符串边缘的一对标记，不扫描内部代码块
func StripCodeFence(content string) string {
	s := strings.TrimSpace(content)

	var stripped bool
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		stripped = true
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		stripped = true
	}
	if stripped && strings.HasSuffix(strings.TrimSpace(s), "```") {
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}

	return strings.TrimSpace(s)
}

func ToJSON(v any) string {
	jsonData, err := json.Marshal(v)
	if err != nil {
		klog.Errorf("JSON序列化失败: %v", err)
		return ""
	}
	return string(jsonData)
}
