package repository

import (
	"errors"

	"github.com/plan2code/backend/internal/model"
	"gorm.io/gorm"
)

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(plan *model.Plan) error {
	return r.db.Create(plan).Error
}

func (r *planRepository) List() ([]model.Plan, error) {
	var plans []model.Plan
	err := r.db.Order("created_at DESC").Find(&plans).Error
	return plans, err
}

func (r *planRepository) Get(id uint) (*model.Plan, error) {
	var plan model.Plan
	err := r.db.First(&plan, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) Delete(id uint) error {
	return r.db.Delete(&model.Plan{}, id).Error
}
