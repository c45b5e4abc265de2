package eventsubscriber

import (
	"context"
	"testing"

	"github.com/plan2code/backend/internal/eventbus"
	"github.com/plan2code/backend/internal/model"
)

type mockTicketRepo struct {
	records []model.TicketRecord
}

func (m *mockTicketRepo) Create(ticket *model.TicketRecord) error {
	m.records = append(m.records, *ticket)
	return nil
}

func (m *mockTicketRepo) CreateBatch(tickets []model.TicketRecord) error {
	m.records = append(m.records, tickets...)
	return nil
}

func (m *mockTicketRepo) List() ([]model.TicketRecord, error) {
	return m.records, nil
}

func TestTicketRecorderPersistsPushedTickets(t *testing.T) {
	repo := &mockTicketRepo{}
	bus := eventbus.NewTicketEventBus()
	unsubscribe := NewTicketRecorder(repo).Register(bus)
	defer unsubscribe()

	event := eventbus.TicketEvent{
		Type: eventbus.TicketEventPushed,
		Tickets: []eventbus.PushedTicket{
			{Summary: "setup repo", Key: "PRJ-1", URL: "https://example.atlassian.net/browse/PRJ-1"},
			{Summary: "ci pipeline", Key: "PRJ-2", URL: "https://example.atlassian.net/browse/PRJ-2"},
		},
	}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	if len(repo.records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(repo.records))
	}
	if repo.records[0].IssueKey != "PRJ-1" {
		t.Errorf("unexpected record: %+v", repo.records[0])
	}
}

func TestTicketRecorderIgnoresEmptyEvent(t *testing.T) {
	repo := &mockTicketRepo{}
	bus := eventbus.NewTicketEventBus()
	defer NewTicketRecorder(repo).Register(bus)()

	if err := bus.Publish(context.Background(), eventbus.TicketEvent{Type: eventbus.TicketEventPushed}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if len(repo.records) != 0 {
		t.Fatalf("expected no records, got %d", len(repo.records))
	}
}
