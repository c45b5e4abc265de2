package model

import (
	"time"
)

// Plan 一次生成的规划文档
type Plan struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TraceID     string    `json:"trace_id" gorm:"size:64;index"`
	ProjectName string    `json:"project_name" gorm:"size:255"`
	Source      string    `json:"source" gorm:"size:50"` // structured, mapping, free_text, refined
	Content     string    `json:"content" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// 输入来源取值
const (
	PlanSourceStructured = "structured"
	PlanSourceMapping    = "mapping"
	PlanSourceFreeText   = "free_text"
	PlanSourceRefined    = "refined"
)

// TicketRecord 成功推送到外部跟踪器的工单
type TicketRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Summary     string    `json:"summary" gorm:"size:500;not null"`
	Description string    `json:"description" gorm:"type:text"`
	IssueKey    string    `json:"issue_key" gorm:"size:50;index"`
	IssueURL    string    `json:"issue_url" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
