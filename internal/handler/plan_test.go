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
	"github.com/plan2code/backend/internal/repository"
	"github.com/plan2code/backend/internal/service/intake"
)

type mockPlanService struct {
	plan      *model.Plan
	refined   string
	plans     []model.Plan
	err       error
	deletedID uint
}

func (m *mockPlanService) GeneratePlan(ctx context.Context, raw []byte) (*model.Plan, error) {
	return m.plan, m.err
}

func (m *mockPlanService) RefinePlan(ctx context.Context, originalPlan, userFeedback string) (string, error) {
	return m.refined, m.err
}

func (m *mockPlanService) ListPlans() ([]model.Plan, error) {
	return m.plans, m.err
}

func (m *mockPlanService) GetPlan(id uint) (*model.Plan, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.plan, nil
}

func (m *mockPlanService) DeletePlan(id uint) error {
	m.deletedID = id
	return m.err
}

func newPlanRouter(h *PlanHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/generate-project-plan", h.Generate)
	r.POST("/api/refine-project-plan", h.Refine)
	r.GET("/api/plans", h.List)
	r.GET("/api/plans/:id", h.Get)
	r.DELETE("/api/plans/:id", h.Delete)
	return r
}

func TestPlanHandlerGenerate(t *testing.T) {
	svc := &mockPlanService{plan: &model.Plan{Content: "final document"}}
	r := newPlanRouter(NewPlanHandler(svc))

	body := bytes.NewBufferString(`{"projectName":"demo","projectDescription":"a demo"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-project-plan", body)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["project_plan"] != "final document" {
		t.Errorf("unexpected project_plan: %q", resp["project_plan"])
	}
}

func TestPlanHandlerGenerateMissingInput(t *testing.T) {
	svc := &mockPlanService{err: intake.ErrMissingInput}
	r := newPlanRouter(NewPlanHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-project-plan", bytes.NewBufferString(`{}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["detail"] != "Input must include either 'projectName' or 'text'." {
		t.Errorf("unexpected detail: %q", resp["detail"])
	}
}

func TestPlanHandlerGenerateServiceError(t *testing.T) {
	svc := &mockPlanService{err: errors.New("stage failed")}
	r := newPlanRouter(NewPlanHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-project-plan", bytes.NewBufferString(`{"text":"x"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestPlanHandlerRefine(t *testing.T) {
	svc := &mockPlanService{refined: "better plan"}
	r := newPlanRouter(NewPlanHandler(svc))

	body := bytes.NewBufferString(`{"original_plan":"plan","user_feedback":"shorter"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/refine-project-plan", body)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["refined_plan"] != "better plan" {
		t.Errorf("unexpected refined_plan: %q", resp["refined_plan"])
	}
}

func TestPlanHandlerRefineMissingFields(t *testing.T) {
	r := newPlanRouter(NewPlanHandler(&mockPlanService{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/refine-project-plan", bytes.NewBufferString(`{"original_plan":"plan"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPlanHandlerGetNotFound(t *testing.T) {
	svc := &mockPlanService{err: repository.ErrNotFound}
	r := newPlanRouter(NewPlanHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plans/42", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPlanHandlerDelete(t *testing.T) {
	svc := &mockPlanService{}
	r := newPlanRouter(NewPlanHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/plans/7", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.deletedID != 7 {
		t.Errorf("expected deleted id 7, got %d", svc.deletedID)
	}
}
