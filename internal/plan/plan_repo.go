package plan

import (
	"gorm.io/gorm"
)

type PlanRepository interface {
	Create(p *Plan) error
	GetByID(id uint) (*Plan, error)
	ListActive(teamID uint) ([]Plan, error)
	Update(p *Plan) error
	Delete(id uint) error
	CreateSubscription(s *Subscription) error
	GetActiveSubscription(userID uint) (*Subscription, error)
	CancelSubscription(userID uint) error
}

type gormPlanRepository struct {
	db *gorm.DB
}

func NewGormPlanRepository(db *gorm.DB) PlanRepository {
	return &gormPlanRepository{db: db}
}

func (r *gormPlanRepository) Create(p *Plan) error {
	return r.db.Create(p).Error
}

func (r *gormPlanRepository) GetByID(id uint) (*Plan, error) {
	var p Plan
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormPlanRepository) ListActive(teamID uint) ([]Plan, error) {
	var plans []Plan
	err := r.db.Where("team_id = ? AND active = ?", teamID, true).
		Order("price ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *gormPlanRepository) Update(p *Plan) error {
	return r.db.Save(p).Error
}

func (r *gormPlanRepository) Delete(id uint) error {
	return r.db.Delete(&Plan{}, id).Error
}

func (r *gormPlanRepository) CreateSubscription(s *Subscription) error {
	return r.db.Create(s).Error
}

func (r *gormPlanRepository) GetActiveSubscription(userID uint) (*Subscription, error) {
	var s Subscription
	err := r.db.Where("user_id = ? AND status = ?", userID, "active").
		Order("id DESC").First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *gormPlanRepository) CancelSubscription(userID uint) error {
	return r.db.Model(&Subscription{}).
		Where("user_id = ? AND status = ?", userID, "active").
		Update("status", "cancelled").Error
}
