package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plan2code/backend/internal/repository"
	"github.com/plan2code/backend/internal/service/devtasks"
	"github.com/plan2code/backend/internal/service/tracker"
)

// TicketExtractor 从规划文档抽取工单建议
type TicketExtractor interface {
	ExtractTickets(ctx context.Context, sourceText string) ([]devtasks.TicketCandidate, error)
}

// TicketPusher 批量推送工单到外部跟踪器
type TicketPusher interface {
	Push(ctx context.Context, tickets []devtasks.TicketCandidate) []tracker.PushResult
}

type TicketHandler struct {
	extractor  TicketExtractor
	pusher     TicketPusher
	ticketRepo repository.TicketRepository
}

// NewTicketHandler 创建工单处理器
func NewTicketHandler(extractor TicketExtractor, pusher TicketPusher, ticketRepo repository.TicketRepository) *TicketHandler {
	return &TicketHandler{
		extractor:  extractor,
		pusher:     pusher,
		ticketRepo: ticketRepo,
	}
}

// GenerateFromPlan 从规划文档生成工单建议
func (h *TicketHandler) GenerateFromPlan(c *gin.Context) {
	var req struct {
		Plan string `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	tickets, err := h.extractor.ExtractTickets(c.Request.Context(), req.Plan)
	if err != nil {
		// 解析失败与空列表是两种结果，统一按请求失败返回
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// Push 推送定稿工单，单条失败不中断批次
func (h *TicketHandler) Push(c *gin.Context) {
	var tickets []devtasks.TicketCandidate
	if err := c.ShouldBindJSON(&tickets); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	for _, ticket := range tickets {
		if ticket.Summary == "" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "each ticket requires a non-empty summary"})
			return
		}
	}

	results := h.pusher.Push(c.Request.Context(), tickets)
	c.JSON(http.StatusOK, gin.H{"created_issues": results})
}

// ListRecords 已推送工单的历史记录
func (h *TicketHandler) ListRecords(c *gin.Context) {
	records, err := h.ticketRepo.List()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"tickets": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": records})
}
