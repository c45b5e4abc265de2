package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plan2code/backend/internal/service/devtasks"
)

// DevTaskService 单阶段开发任务能力
type DevTaskService interface {
	SuggestedDevTasks(ctx context.Context, finalPlan string) ([]devtasks.TicketCandidate, error)
	DevCategories(ctx context.Context, finalPlan string) ([]devtasks.CategoryTech, error)
	TasksByCategory(ctx context.Context, finalPlan, category string) ([]devtasks.TicketCandidate, error)
	CodeSnippet(ctx context.Context, taskName, taskDescription, finalPlan string) (map[string]any, error)
}

type DevTaskHandler struct {
	service DevTaskService
}

// NewDevTaskHandler 创建开发任务处理器
func NewDevTaskHandler(service DevTaskService) *DevTaskHandler {
	return &DevTaskHandler{service: service}
}

// SuggestedTasks 从规划文档抽取开发性任务
func (h *DevTaskHandler) SuggestedTasks(c *gin.Context) {
	var req struct {
		FinalPlan string `json:"final_plan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.FinalPlan == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing 'final_plan' in request"})
		return
	}

	tasks, err := h.service.SuggestedDevTasks(c.Request.Context(), req.FinalPlan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggested_tasks": tasks})
}

// Categories 抽取各分类的技术栈
func (h *DevTaskHandler) Categories(c *gin.Context) {
	var req struct {
		FinalPlan string `json:"final_plan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.FinalPlan == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing final_plan"})
		return
	}

	categories, err := h.service.DevCategories(c.Request.Context(), req.FinalPlan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// TasksByCategory 按分类抽取开发任务
func (h *DevTaskHandler) TasksByCategory(c *gin.Context) {
	var req struct {
		Category  string `json:"category"`
		FinalPlan string `json:"final_plan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Category == "" || req.FinalPlan == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing category or final_plan"})
		return
	}

	tasks, err := h.service.TasksByCategory(c.Request.Context(), req.FinalPlan, req.Category)
	if err != nil {
		if errors.Is(err, devtasks.ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "No agent found for '" + req.Category + "'"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// CodeSnippet 为单个任务生成代码片段
func (h *DevTaskHandler) CodeSnippet(c *gin.Context) {
	var req struct {
		TaskName        string `json:"task_name" binding:"required"`
		TaskDescription string `json:"task_description" binding:"required"`
		FinalPlan       string `json:"final_plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := h.service.CodeSnippet(c.Request.Context(), req.TaskName, req.TaskDescription, req.FinalPlan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
