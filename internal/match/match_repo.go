package match

import (
	"gorm.io/gorm"
)

type MatchRepository interface {
	Create(m *Match) error
	GetByID(id uint) (*Match, error)
	Update(m *Match) error
	Delete(id uint) error
	// ListByTeam returns the full match set in insertion (ID) order, which
	// is what keeps Reconcile's tie-breaking deterministic.
	ListByTeam(teamID uint) ([]Match, error)
}

type gormMatchRepository struct {
	db *gorm.DB
}

func NewGormMatchRepository(db *gorm.DB) MatchRepository {
	return &gormMatchRepository{db: db}
}

func (r *gormMatchRepository) Create(m *Match) error {
	return r.db.Create(m).Error
}

func (r *gormMatchRepository) GetByID(id uint) (*Match, error) {
	var m Match
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormMatchRepository) Update(m *Match) error {
	return r.db.Save(m).Error
}

func (r *gormMatchRepository) Delete(id uint) error {
	return r.db.Delete(&Match{}, id).Error
}

func (r *gormMatchRepository) ListByTeam(teamID uint) ([]Match, error) {
	var matches []Match
	if err := r.db.Where("team_id = ?", teamID).Order("id ASC").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}
