package eventsubscriber

import (
	"context"

	"github.com/plan2code/backend/internal/eventbus"
	"github.com/plan2code/backend/internal/model"
	"github.com/plan2code/backend/internal/repository"
	"k8s.io/klog/v2"
)

// TicketRecorder 订阅工单推送事件，把成功创建的工单落库
type TicketRecorder struct {
	ticketRepo repository.TicketRepository
}

func NewTicketRecorder(ticketRepo repository.TicketRepository) *TicketRecorder {
	return &TicketRecorder{ticketRepo: ticketRepo}
}

// Register 挂到总线上，返回取消订阅函数
func (s *TicketRecorder) Register(bus *eventbus.TicketEventBus) func() {
	return bus.Subscribe(eventbus.TicketEventPushed, s.handlePushed)
}

func (s *TicketRecorder) handlePushed(ctx context.Context, event eventbus.TicketEvent) error {
	if len(event.Tickets) == 0 {
		return nil
	}

	records := make([]model.TicketRecord, 0, len(event.Tickets))
	for _, ticket := range event.Tickets {
		records = append(records, model.TicketRecord{
			Summary:     ticket.Summary,
			Description: ticket.Description,
			IssueKey:    ticket.Key,
			IssueURL:    ticket.URL,
		})
	}

	if err := s.ticketRepo.CreateBatch(records); err != nil {
		klog.Errorf("推送工单落库失败: %v", err)
		return err
	}
	klog.V(6).Infof("推送工单已落库: count=%d", len(records))
	return nil
}
