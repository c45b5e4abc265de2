package planner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/plan2code/backend/internal/eventbus"
	"github.com/plan2code/backend/internal/model"
	"github.com/plan2code/backend/internal/pkg/llm"
	"github.com/plan2code/backend/internal/repository"
	"github.com/plan2code/backend/internal/service/intake"
	"github.com/plan2code/backend/internal/service/pipeline"
	"k8s.io/klog/v2"
)

// Service 规划编排服务：规范化 → 流水线 → 成文 → 落库
type Service struct {
	intake      *intake.Service
	runner      *pipeline.Runner
	synthesizer *pipeline.Synthesizer
	llm         *llm.Client
	planRepo    repository.PlanRepository
	bus         *eventbus.PlanEventBus
}

// NewService 创建规划编排服务
func NewService(
	intakeService *intake.Service,
	runner *pipeline.Runner,
	synthesizer *pipeline.Synthesizer,
	client *llm.Client,
	planRepo repository.PlanRepository,
	bus *eventbus.PlanEventBus,
) *Service {
	return &Service{
		intake:      intakeService,
		runner:      runner,
		synthesizer: synthesizer,
		llm:         client,
		planRepo:    planRepo,
		bus:         bus,
	}
}

// GeneratePlan 对一份原始请求体执行完整规划流程
// 输入形状不合法返回 intake.ErrMissingInput；任何阶段调用失败整个请求失败
func (s *Service) GeneratePlan(ctx context.Context, raw []byte) (*model.Plan, error) {
	req, err := intake.ParseRequest(raw)
	if err != nil {
		return nil, err
	}

	traceID := uuid.New().String()
	klog.V(6).Infof("开始生成规划: traceID=%s, kind=%d", traceID, req.Kind)

	summary, err := s.intake.Normalize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("normalize input failed: %w", err)
	}

	trace, err := s.runner.Run(ctx, summary, pipeline.PlanningStages())
	if err != nil {
		return nil, err
	}

	document, err := s.synthesizer.Synthesize(ctx, trace)
	if err != nil {
		return nil, err
	}

	plan := &model.Plan{
		TraceID:     traceID,
		ProjectName: summary.ProjectName,
		Source:      sourceForKind(req.Kind),
		Content:     document,
	}
	if err := s.planRepo.Create(plan); err != nil {
		// 文档已经生成，落库失败只记录，不作废本次结果
		klog.Errorf("规划落库失败: %v", err)
	} else if s.bus != nil {
		if err := s.bus.Publish(ctx, eventbus.PlanEvent{
			Type:    eventbus.PlanEventGenerated,
			PlanID:  plan.ID,
			TraceID: traceID,
			Source:  plan.Source,
		}); err != nil {
			klog.Errorf("发布规划事件失败: %v", err)
		}
	}

	return plan, nil
}

// RefinePlan 按用户反馈润色既有规划文档
func (s *Service) RefinePlan(ctx context.Context, originalPlan, userFeedback string) (string, error) {
	prompt := fmt.Sprintf(`
You are a senior project planning assistant. A user has submitted feedback to refine the following project plan.

---
USER FEEDBACK:
%s

---
ORIGINAL PROJECT PLAN:
%s

---
Apply the feedback precisely. Keep the overall structure of the document, and modify only what's necessary.
Output the full refined plan with improved clarity and consistency.
`, userFeedback, originalPlan)

	refined, err := s.llm.Complete(ctx, "You are an expert planner and editor.", prompt)
	if err != nil {
		return "", err
	}

	plan := &model.Plan{
		TraceID: uuid.New().String(),
		Source:  model.PlanSourceRefined,
		Content: refined,
	}
	if err := s.planRepo.Create(plan); err != nil {
		klog.Errorf("润色结果落库失败: %v", err)
	} else if s.bus != nil {
		if err := s.bus.Publish(ctx, eventbus.PlanEvent{
			Type:    eventbus.PlanEventRefined,
			PlanID:  plan.ID,
			TraceID: plan.TraceID,
			Source:  plan.Source,
		}); err != nil {
			klog.Errorf("发布规划事件失败: %v", err)
		}
	}

	return refined, nil
}

// ListPlans 返回全部历史规划
func (s *Service) ListPlans() ([]model.Plan, error) {
	return s.planRepo.List()
}

// GetPlan 返回单份规划
func (s *Service) GetPlan(id uint) (*model.Plan, error) {
	return s.planRepo.Get(id)
}

// DeletePlan 删除规划
func (s *Service) DeletePlan(id uint) error {
	return s.planRepo.Delete(id)
}

func sourceForKind(kind intake.Kind) string {
	switch kind {
	case intake.KindStructured:
		return model.PlanSourceStructured
	case intake.KindMapping:
		return model.PlanSourceMapping
	case intake.KindFreeText:
		return model.PlanSourceFreeText
	}
	return ""
}
