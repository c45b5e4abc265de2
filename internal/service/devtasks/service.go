package devtasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/plan2code/backend/internal/pkg/llm"
	"github.com/plan2code/backend/internal/utils"
	"k8s.io/klog/v2"
)

// Service 单阶段开发任务与工单抽取服务
type Service struct {
	llm *llm.Client
}

// NewService 创建开发任务服务
func NewService(client *llm.Client) *Service {
	return &Service{llm: client}
}

// ExtractTickets 从规划文档中抽取 JIRA 工单建议
// 应答里截取第一个 '[' 到最后一个 ']' 之间的内容按 JSON 数组解析
// 截取不到或解析失败返回 ErrMalformedTicketResponse
func (s *Service) ExtractTickets(ctx context.Context, sourceText string) ([]TicketCandidate, error) {
	prompt := fmt.Sprintf("Generate JIRA ticket suggestions from this plan:\n%s\n\nRespond with a plain JSON list of objects — do not wrap in code fences, return ONLY JSON: [{\"summary\": \"...\", \"description\": \"...\"}]", sourceText)

	raw, err := s.llm.Complete(ctx, RoleTicketGenerator.Instruction(), prompt)
	if err != nil {
		return nil, err
	}

	return parseTicketArray(raw)
}

// SuggestedDevTasks 从规划文档中抽取纯开发性任务
func (s *Service) SuggestedDevTasks(ctx context.Context, finalPlan string) ([]TicketCandidate, error) {
	prompt := fmt.Sprintf(`
Review the following project plan and extract only development tasks (APIs, DB setup, CI/CD, frontend components, etc).
Avoid planning or meetings.

PROJECT PLAN:
%s

Respond ONLY with JSON list:
[{"summary": "...", "description": "..."}]
`, finalPlan)

	raw, err := s.llm.Complete(ctx, RoleDevTaskExtractor.Instruction(), prompt)
	if err != nil {
		return nil, err
	}

	return parseTicketArray(raw)
}

// TasksByCategory 按技术栈分类抽取开发任务，未知分类直接拒绝
func (s *Service) TasksByCategory(ctx context.Context, finalPlan, category string) ([]TicketCandidate, error) {
	role, err := RoleForCategory(category)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`
Given this project plan, list 5-10 dev tasks for %s.
Respond ONLY JSON: [{"summary": "...", "description": "..."}]
PROJECT PLAN:
%s
`, category, finalPlan)

	raw, err := s.llm.Complete(ctx, role.Instruction(), prompt)
	if err != nil {
		return nil, err
	}

	return parseTicketArray(raw)
}

// DevCategories 从规划文档中抽取各分类的技术栈
func (s *Service) DevCategories(ctx context.Context, finalPlan string) ([]CategoryTech, error) {
	prompt := fmt.Sprintf(`
Given this plan, extract the tech stack across: Frontend, Backend, Database, Cloud, DevOps, Design.
Respond ONLY JSON:
[{"name": "Frontend", "tech": ["React"]}, ...]
PROJECT PLAN:
%s
`, finalPlan)

	raw, err := s.llm.Complete(ctx, "You extract tech stack.", prompt)
	if err != nil {
		return nil, err
	}

	var categories []CategoryTech
	if jsonErr := json.Unmarshal([]byte(raw), &categories); jsonErr != nil {
		cleaned := utils.StripCodeFence(raw)
		if jsonErr = json.Unmarshal([]byte(cleaned), &categories); jsonErr != nil {
			// 数组前后带说明性文字时按括号截取再试
			arrayText, arrErr := utils.ExtractJSONArray(cleaned)
			if arrErr != nil || json.Unmarshal([]byte(arrayText), &categories) != nil {
				klog.Warningf("技术栈分类解析失败: %v", jsonErr)
				return nil, fmt.Errorf("failed to parse categories response: %w", jsonErr)
			}
		}
	}
	return categories, nil
}

// CodeSnippet 针对单个任务生成代码片段，返回解析后的 JSON 对象
func (s *Service) CodeSnippet(ctx context.Context, taskName, taskDescription, finalPlan string) (map[string]any, error) {
	prompt := fmt.Sprintf(`
You are an experienced senior software engineer. Based on the project plan below, generate a code snippet.

### PROJECT PLAN
%s

### TASK
%s
%s

Return ONLY JSON:
{"task": "Task name", "language": "Python | JS | etc.", "snippet": "your code"}
`, finalPlan, taskName, taskDescription)

	raw, err := s.llm.Complete(ctx, RoleCodeGenerator.Instruction(), prompt)
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if jsonErr := json.Unmarshal([]byte(raw), &result); jsonErr != nil {
		cleaned := utils.StripCodeFence(raw)
		if jsonErr = json.Unmarshal([]byte(cleaned), &result); jsonErr != nil {
			// 应答可能在对象前后带说明性文字，按花括号配对再截一次
			if jsonErr = json.Unmarshal([]byte(utils.ExtractJSON(cleaned)), &result); jsonErr != nil {
				return nil, fmt.Errorf("failed to parse code snippet response: %w", jsonErr)
			}
		}
	}
	return result, nil
}

// parseTicketArray 括号扫描解析工单数组
func parseTicketArray(raw string) ([]TicketCandidate, error) {
	arrayText, err := utils.ExtractJSONArray(raw)
	if err != nil {
		klog.Warningf("应答中未找到 JSON 数组: %v", err)
		return nil, ErrMalformedTicketResponse
	}

	var tickets []TicketCandidate
	if err := json.Unmarshal([]byte(arrayText), &tickets); err != nil {
		klog.Warningf("工单数组解析失败: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedTicketResponse, err)
	}

	return tickets, nil
}
