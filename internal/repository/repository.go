package repository

import (
	"errors"

	"github.com/plan2code/backend/internal/model"
)

// ErrNotFound 记录不存在错误
var ErrNotFound = errors.New("record not found")

type PlanRepository interface {
	Create(plan *model.Plan) error
	List() ([]model.Plan, error)
	Get(id uint) (*model.Plan, error)
	Delete(id uint) error
}

type TicketRepository interface {
	Create(ticket *model.TicketRecord) error
	CreateBatch(tickets []model.TicketRecord) error
	List() ([]model.TicketRecord, error)
}
