package eventsubscriber

import (
	"context"

	"github.com/plan2code/backend/internal/eventbus"
	"k8s.io/klog/v2"
)

// PlanActivityLogger 订阅规划事件并记录活动日志
type PlanActivityLogger struct{}

func NewPlanActivityLogger() *PlanActivityLogger {
	return &PlanActivityLogger{}
}

// Register 同时订阅生成与润色两类事件
func (s *PlanActivityLogger) Register(bus *eventbus.PlanEventBus) func() {
	unsubGenerated := bus.Subscribe(eventbus.PlanEventGenerated, s.handle)
	unsubRefined := bus.Subscribe(eventbus.PlanEventRefined, s.handle)
	return func() {
		unsubGenerated()
		unsubRefined()
	}
}

func (s *PlanActivityLogger) handle(ctx context.Context, event eventbus.PlanEvent) error {
	klog.V(6).Infof("规划事件: type=%s, planID=%d, traceID=%s, source=%s",
		event.Type, event.PlanID, event.TraceID, event.Source)
	return nil
}
