package repository

import (
	"github.com/plan2code/backend/internal/model"
	"gorm.io/gorm"
)

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ticket *model.TicketRecord) error {
	return r.db.Create(ticket).Error
}

func (r *ticketRepository) CreateBatch(tickets []model.TicketRecord) error {
	if len(tickets) == 0 {
		return nil
	}
	return r.db.Create(&tickets).Error
}

func (r *ticketRepository) List() ([]model.TicketRecord, error) {
	var tickets []model.TicketRecord
	err := r.db.Order("created_at DESC").Find(&tickets).Error
	return tickets, err
}
