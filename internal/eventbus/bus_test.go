package eventbus

import (
	"context"
	"errors"
	"testing"
)

func TestPlanEventBusPublishSubscribe(t *testing.T) {
	bus := NewPlanEventBus()

	var received []PlanEvent
	unsubscribe := bus.Subscribe(PlanEventGenerated, func(ctx context.Context, event PlanEvent) error {
		received = append(received, event)
		return nil
	})

	event := PlanEvent{Type: PlanEventGenerated, PlanID: 1, TraceID: "trace-1", Source: "structured"}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if len(received) != 1 || received[0].PlanID != 1 {
		t.Fatalf("unexpected received events: %+v", received)
	}

	// 其他类型的事件不触发
	if err := bus.Publish(context.Background(), PlanEvent{Type: PlanEventRefined, PlanID: 2}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("expected no delivery for other event type, got %d", len(received))
	}

	unsubscribe()
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("expected no delivery after unsubscribe, got %d", len(received))
	}
}

func TestBusCollectsHandlerErrors(t *testing.T) {
	bus := NewTicketEventBus()
	wantErr := errors.New("handler failed")

	bus.Subscribe(TicketEventPushed, func(ctx context.Context, event TicketEvent) error {
		return wantErr
	})
	bus.Subscribe(TicketEventPushed, func(ctx context.Context, event TicketEvent) error {
		return nil
	})

	err := bus.Publish(context.Background(), TicketEvent{Type: TicketEventPushed})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected handler error to surface, got %v", err)
	}
}

func TestBusNilHandler(t *testing.T) {
	bus := NewPlanEventBus()
	unsubscribe := bus.Subscribe(PlanEventGenerated, nil)
	unsubscribe() // 不应 panic

	if err := bus.Publish(context.Background(), PlanEvent{Type: PlanEventGenerated}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
}
