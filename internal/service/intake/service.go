package intake

import (
	"context"
	"encoding/json"

	"github.com/plan2code/backend/internal/pkg/llm"
	"github.com/plan2code/backend/internal/utils"
	"k8s.io/klog/v2"
)

// Service 输入规范化服务
type Service struct {
	llm *llm.Client
}

// NewService 创建输入规范化服务
func NewService(client *llm.Client) *Service {
	return &Service{llm: client}
}

// Normalize 把判定后的输入转成规范概要
// 规范化本身不失败：解释失败一律降级为只带描述的概要
// 唯一的错误来源是自由文本抽取时 LLM 调用的传输层失败，按整请求失败处理
func (s *Service) Normalize(ctx context.Context, req *Request) (*ProjectSummary, error) {
	switch req.Kind {
	case KindStructured:
		return FromInput(req.Structured), nil

	case KindMapping:
		if input, ok := interpretAsInput([]byte(utils.ToJSON(req.Mapping))); ok {
			return FromInput(input), nil
		}
		klog.V(6).Infof("映射输入无法按表单解释，降级为纯描述")
		summary := NewProjectSummary()
		summary.ProjectDescription = utils.ToJSON(req.Mapping)
		return summary, nil

	case KindFreeText:
		summary, err := s.extractFromText(ctx, req.Text)
		if err != nil {
			return nil, err
		}
		if summary != nil {
			return summary, nil
		}
		klog.V(6).Infof("自由文本抽取结果不可用，降级为纯描述")
		degraded := NewProjectSummary()
		degraded.ProjectDescription = req.Text
		return degraded, nil
	}

	// 不可达，ParseRequest 只产生上述三种形状
	summary := NewProjectSummary()
	return summary, nil
}

// extractFromText 调用 LLM 从自由文本中抽取结构化字段
// 解析失败（含去围栏重试后）返回 nil 触发降级；传输失败返回 error
func (s *Service) extractFromText(ctx context.Context, text string) (*ProjectSummary, error) {
	raw, err := s.llm.CompleteDeterministic(ctx, extractionSystemPrompt, buildExtractionPrompt(text))
	if err != nil {
		klog.Errorf("自由文本抽取调用失败: %v", err)
		return nil, err
	}

	var input ProjectInput
	if jsonErr := json.Unmarshal([]byte(raw), &input); jsonErr != nil {
		cleaned := utils.StripCodeFence(raw)
		if jsonErr = json.Unmarshal([]byte(cleaned), &input); jsonErr != nil {
			klog.Warningf("自由文本抽取结果解析失败: %v", jsonErr)
			return nil, nil
		}
	}

	return FromInput(&input), nil
}
