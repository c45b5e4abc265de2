package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/plan2code/backend/internal/model"
	"github.com/plan2code/backend/internal/service/devtasks"
	"github.com/plan2code/backend/internal/service/tracker"
)

type mockExtractor struct {
	tickets []devtasks.TicketCandidate
	err     error
}

func (m *mockExtractor) ExtractTickets(ctx context.Context, sourceText string) ([]devtasks.TicketCandidate, error) {
	return m.tickets, m.err
}

type mockPusher struct {
	received []devtasks.TicketCandidate
	results  []tracker.PushResult
}

func (m *mockPusher) Push(ctx context.Context, tickets []devtasks.TicketCandidate) []tracker.PushResult {
	m.received = tickets
	return m.results
}

type stubTicketRepo struct {
	records []model.TicketRecord
	err     error
}

func (s *stubTicketRepo) Create(record *model.TicketRecord) error        { return s.err }
func (s *stubTicketRepo) CreateBatch(records []model.TicketRecord) error { return s.err }
func (s *stubTicketRepo) List() ([]model.TicketRecord, error)            { return s.records, s.err }

func newTicketRouter(h *TicketHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/generate-jira-tickets-from-plan", h.GenerateFromPlan)
	r.POST("/api/push-finalized-tickets", h.Push)
	r.GET("/api/tickets", h.ListRecords)
	return r
}

func TestTicketHandlerGenerateFromPlan(t *testing.T) {
	extractor := &mockExtractor{tickets: []devtasks.TicketCandidate{{Summary: "setup", Description: "init repo"}}}
	r := newTicketRouter(NewTicketHandler(extractor, &mockPusher{}, &stubTicketRepo{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-jira-tickets-from-plan", bytes.NewBufferString(`{"plan":"doc"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Tickets []devtasks.TicketCandidate `json:"tickets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Tickets) != 1 || resp.Tickets[0].Summary != "setup" {
		t.Errorf("unexpected tickets: %+v", resp.Tickets)
	}
}

func TestTicketHandlerGenerateFromPlanMissingPlan(t *testing.T) {
	r := newTicketRouter(NewTicketHandler(&mockExtractor{}, &mockPusher{}, &stubTicketRepo{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-jira-tickets-from-plan", bytes.NewBufferString(`{}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTicketHandlerGenerateFromPlanExtractFailure(t *testing.T) {
	extractor := &mockExtractor{err: errors.New("no JSON array in response")}
	r := newTicketRouter(NewTicketHandler(extractor, &mockPusher{}, &stubTicketRepo{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-jira-tickets-from-plan", bytes.NewBufferString(`{"plan":"doc"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestTicketHandlerPush(t *testing.T) {
	pusher := &mockPusher{results: []tracker.PushResult{
		{Summary: "a", Key: "PROJ-1", URL: "https://jira.example.com/browse/PROJ-1"},
		{Summary: "b", Error: "jira create issue: status 400"},
	}}
	r := newTicketRouter(NewTicketHandler(&mockExtractor{}, pusher, &stubTicketRepo{}))

	body := bytes.NewBufferString(`[{"summary":"a","description":"x"},{"summary":"b","description":"y"}]`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/push-finalized-tickets", body)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(pusher.received) != 2 {
		t.Fatalf("expected 2 tickets forwarded, got %d", len(pusher.received))
	}
	var resp struct {
		CreatedIssues []tracker.PushResult `json:"created_issues"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.CreatedIssues) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.CreatedIssues))
	}
	if resp.CreatedIssues[0].Key != "PROJ-1" {
		t.Errorf("unexpected first result: %+v", resp.CreatedIssues[0])
	}
	if resp.CreatedIssues[1].Error == "" {
		t.Errorf("expected error recorded on second result")
	}
}

// TestTicketHandlerPushEmptySummary 提交的工单缺 summary 时整批拒绝
func TestTicketHandlerPushEmptySummary(t *testing.T) {
	pusher := &mockPusher{}
	r := newTicketRouter(NewTicketHandler(&mockExtractor{}, pusher, &stubTicketRepo{}))

	body := bytes.NewBufferString(`[{"summary":"ok","description":"x"},{"summary":"","description":"y"}]`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/push-finalized-tickets", body)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if pusher.received != nil {
		t.Errorf("no tickets should be pushed: %+v", pusher.received)
	}
}

func TestTicketHandlerListRecords(t *testing.T) {
	repo := &stubTicketRepo{records: []model.TicketRecord{{Summary: "a", IssueKey: "PROJ-1"}}}
	r := newTicketRouter(NewTicketHandler(&mockExtractor{}, &mockPusher{}, repo))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Tickets []model.TicketRecord `json:"tickets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Tickets) != 1 || resp.Tickets[0].IssueKey != "PROJ-1" {
		t.Errorf("unexpected records: %+v", resp.Tickets)
	}
}
