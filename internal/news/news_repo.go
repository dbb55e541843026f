package news

import (
	"gorm.io/gorm"
)

type NewsRepository interface {
	Create(n *News) error
	GetByID(id uint) (*News, error)
	// ListPublished returns only published items, newest first, for the
	// public page.
	ListPublished(teamID uint) ([]News, error)
	ListAll(teamID uint) ([]News, error)
	Update(n *News) error
	Delete(id uint) error
}

type gormNewsRepository struct {
	db *gorm.DB
}

func NewGormNewsRepository(db *gorm.DB) NewsRepository {
	return &gormNewsRepository{db: db}
}

func (r *gormNewsRepository) Create(n *News) error {
	return r.db.Create(n).Error
}

func (r *gormNewsRepository) GetByID(id uint) (*News, error) {
	var n News
	if err := r.db.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *gormNewsRepository) ListPublished(teamID uint) ([]News, error) {
	var items []News
	err := r.db.Where("team_id = ? AND published = ?", teamID, true).
		Order("published_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormNewsRepository) ListAll(teamID uint) ([]News, error) {
	var items []News
	if err := r.db.Where("team_id = ?", teamID).Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormNewsRepository) Update(n *News) error {
	return r.db.Save(n).Error
}

func (r *gormNewsRepository) Delete(id uint) error {
	return r.db.Delete(&News{}, id).Error
}
