package team

import (
	"gorm.io/gorm"
)

type TeamRepository interface {
	Create(t *Team) error
	GetByID(id uint) (*Team, error)
	GetBySlug(slug string) (*Team, error)
	List() ([]Team, error)
	Update(t *Team) error
	Delete(id uint) error
	SetNextMatch(teamID uint, matchID *uint) error
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(t *Team) error {
	return r.db.Create(t).Error
}

func (r *teamRepository) GetByID(id uint) (*Team, error) {
	var t Team
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetBySlug(slug string) (*Team, error) {
	var t Team
	if err := r.db.Where("slug = ?", slug).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) List() ([]Team, error) {
	var teams []Team
	if err := r.db.Order("name ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) Update(t *Team) error {
	return r.db.Save(t).Error
}

func (r *teamRepository) Delete(id uint) error {
	return r.db.Delete(&Team{}, id).Error
}

// SetNextMatch writes the aggregate pointer. A nil matchID clears it when
// no future match exists.
func (r *teamRepository) SetNextMatch(teamID uint, matchID *uint) error {
	return r.db.Model(&Team{}).Where("id = ?", teamID).Update("next_match_id", matchID).Error
}
