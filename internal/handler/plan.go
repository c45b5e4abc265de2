package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/plan2code/backend/internal/model"
	"github.com/plan2code/backend/internal/repository"
	"github.com/plan2code/backend/internal/service/intake"
)

// PlanService 规划编排能力
type PlanService interface {
	GeneratePlan(ctx context.Context, raw []byte) (*model.Plan, error)
	RefinePlan(ctx context.Context, originalPlan, userFeedback string) (string, error)
	ListPlans() ([]model.Plan, error)
	GetPlan(id uint) (*model.Plan, error)
	DeletePlan(id uint) error
}

type PlanHandler struct {
	service PlanService
}

// NewPlanHandler 创建规划处理器
func NewPlanHandler(service PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// Generate 生成规划文档，接受结构化表单或自由文本两种请求体
func (h *PlanHandler) Generate(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	plan, err := h.service.GeneratePlan(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, intake.ErrMissingInput) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Input must include either 'projectName' or 'text'."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project_plan": plan.Content})
}

// Refine 按用户反馈润色规划文档
func (h *PlanHandler) Refine(c *gin.Context) {
	var req struct {
		OriginalPlan string `json:"original_plan" binding:"required"`
		UserFeedback string `json:"user_feedback" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	refined, err := h.service.RefinePlan(c.Request.Context(), req.OriginalPlan, req.UserFeedback)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"refined_plan": refined})
}

// List 历史规划列表
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.service.ListPlans()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// Get 单份规划详情
func (h *PlanHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return
	}

	plan, err := h.service.GetPlan(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Delete 删除规划
func (h *PlanHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return
	}

	if err := h.service.DeletePlan(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
