package tracker

import (
	"context"

	"github.com/plan2code/backend/internal/eventbus"
	"github.com/plan2code/backend/internal/service/devtasks"
	"k8s.io/klog/v2"
)

// PushResult 单条工单的推送结果
// 成功时带 Key/URL，失败时带 Error；二者互斥
type PushResult struct {
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Key         string `json:"key,omitempty"`
	URL         string `json:"url,omitempty"`
	Error       string `json:"error,omitempty"`
}

// IssueCreator 外部工单创建接口，便于测试替换
type IssueCreator interface {
	CreateIssue(ctx context.Context, ticket devtasks.TicketCandidate) (key, url string, err error)
}

// Service 工单批量推送服务
type Service struct {
	creator IssueCreator
	store   *Store
	bus     *eventbus.TicketEventBus
}

// NewService 创建推送服务
func NewService(creator IssueCreator, store *Store, bus *eventbus.TicketEventBus) *Service {
	return &Service{
		creator: creator,
		store:   store,
		bus:     bus,
	}
}

// Push 逐条推送工单
// 单条失败只记录在该条结果里，不中断批次；结果条数恒等于输入条数
// 只有成功条目进入本地日志并发布事件
func (s *Service) Push(ctx context.Context, tickets []devtasks.TicketCandidate) []PushResult {
	results := make([]PushResult, 0, len(tickets))
	var successes []PushResult

	for _, ticket := range tickets {
		key, url, err := s.creator.CreateIssue(ctx, ticket)
		if err != nil {
			klog.Warningf("推送工单失败: summary=%s, err=%v", ticket.Summary, err)
			results = append(results, PushResult{
				Summary: ticket.Summary,
				Error:   err.Error(),
			})
			continue
		}

		result := PushResult{
			Summary:     ticket.Summary,
			Description: ticket.Description,
			Key:         key,
			URL:         url,
		}
		results = append(results, result)
		successes = append(successes, result)
	}

	if err := s.store.Append(successes); err != nil {
		// 日志文件写失败不影响已创建的工单结果
		klog.Errorf("保存本地工单日志失败: %v", err)
	}

	if s.bus != nil && len(successes) > 0 {
		pushed := make([]eventbus.PushedTicket, 0, len(successes))
		for _, success := range successes {
			pushed = append(pushed, eventbus.PushedTicket{
				Summary:     success.Summary,
				Description: success.Description,
				Key:         success.Key,
				URL:         success.URL,
			})
		}
		if err := s.bus.Publish(ctx, eventbus.TicketEvent{Type: eventbus.TicketEventPushed, Tickets: pushed}); err != nil {
			klog.Errorf("发布工单推送事件失败: %v", err)
		}
	}

	return results
}
