package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/plan2code/backend/internal/model"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.Plan{}, &model.TicketRecord{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}
	return db
}

func TestPlanRepositoryRoundTrip(t *testing.T) {
	repo := NewPlanRepository(newTestDB(t))

	plan := &model.Plan{
		TraceID:     "trace-1",
		ProjectName: "Shop",
		Source:      model.PlanSourceStructured,
		Content:     "### 1. Executive Summary",
	}
	if err := repo.Create(plan); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if plan.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := repo.Get(plan.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.ProjectName != "Shop" || got.Source != model.PlanSourceStructured {
		t.Fatalf("unexpected plan: %+v", got)
	}

	plans, err := repo.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}

	if err := repo.Delete(plan.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := repo.Get(plan.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTicketRepositoryCreateBatch(t *testing.T) {
	repo := NewTicketRepository(newTestDB(t))

	if err := repo.CreateBatch(nil); err != nil {
		t.Fatalf("CreateBatch empty error: %v", err)
	}

	batch := []model.TicketRecord{
		{Summary: "setup repo", IssueKey: "PRJ-1", IssueURL: "https://example.atlassian.net/browse/PRJ-1"},
		{Summary: "ci pipeline", IssueKey: "PRJ-2", IssueURL: "https://example.atlassian.net/browse/PRJ-2"},
	}
	if err := repo.CreateBatch(batch); err != nil {
		t.Fatalf("CreateBatch error: %v", err)
	}

	tickets, err := repo.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(tickets))
	}
}
