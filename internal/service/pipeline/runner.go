package pipeline

import (
	"context"
	"fmt"

	"github.com/plan2code/backend/internal/pkg/llm"
	"github.com/plan2code/backend/internal/service/intake"
	"k8s.io/klog/v2"
)

// Runner 顺序执行流水线阶段
// 阶段之间严格串行：靠后阶段的提示词可能引用之前阶段的叙述
type Runner struct {
	llm *llm.Client
}

// NewRunner 创建流水线执行器
func NewRunner(client *llm.Client) *Runner {
	return &Runner{llm: client}
}

// Run 按给定顺序执行全部阶段并收集输出
// 任一阶段调用失败整次运行作废，不返回部分 Trace
func (r *Runner) Run(ctx context.Context, summary *intake.ProjectSummary, stages []StageSpec) (Trace, error) {
	trace := make(Trace, 0, len(stages))

	for i, stage := range stages {
		klog.V(6).Infof("执行流水线阶段 %d/%d: %s", i+1, len(stages), stage.Name)

		prompt := stage.BuildPrompt(summary, trace)
		output, err := r.llm.Complete(ctx, stage.Role, prompt)
		if err != nil {
			klog.Errorf("阶段 %s 执行失败: %v", stage.Name, err)
			return nil, fmt.Errorf("stage %s failed: %w", stage.Name, err)
		}

		trace = append(trace, StageResult{
			StageName:  stage.Name,
			OutputText: output,
		})
	}

	return trace, nil
}
