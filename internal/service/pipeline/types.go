package pipeline

import (
	"strings"

	"github.com/plan2code/backend/internal/service/intake"
)

// StageSpec 流水线中一个命名阶段
// BuildPrompt 基于当前概要和已有 Trace 构造该阶段的提示词
type StageSpec struct {
	Name        string
	Role        string
	BuildPrompt func(summary *intake.ProjectSummary, trace Trace) string
}

// StageResult 单个阶段的原始输出
type StageResult struct {
	StageName  string `json:"stage_name"`
	OutputText string `json:"output_text"`
}

// Trace 一次流水线运行的有序阶段输出
type Trace []StageResult

// Combined 按顺序拼接全部阶段输出，供最终成文使用
func (t Trace) Combined() string {
	var b strings.Builder
	for i, result := range t {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## ")
		b.WriteString(result.StageName)
		b.WriteString("\n")
		b.WriteString(result.OutputText)
	}
	return b.String()
}
