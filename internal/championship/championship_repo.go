package championship

import (
	"gorm.io/gorm"
)

type ChampionshipRepository interface {
	Create(ch *Championship) error
	GetByID(id uint) (*Championship, error)
	ListByTeam(teamID uint) ([]Championship, error)
	Update(ch *Championship) error
	Delete(id uint) error
	GetStandings(championshipID uint) ([]StandingsRow, error)
	// ReplaceStandings swaps the whole table in one transaction; partial
	// updates are not supported.
	ReplaceStandings(championshipID uint, rows []StandingsRow) error
}

type gormChampionshipRepository struct {
	db *gorm.DB
}

func NewGormChampionshipRepository(db *gorm.DB) ChampionshipRepository {
	return &gormChampionshipRepository{db: db}
}

func (r *gormChampionshipRepository) Create(ch *Championship) error {
	return r.db.Create(ch).Error
}

func (r *gormChampionshipRepository) GetByID(id uint) (*Championship, error) {
	var ch Championship
	if err := r.db.First(&ch, id).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *gormChampionshipRepository) ListByTeam(teamID uint) ([]Championship, error) {
	var items []Championship
	if err := r.db.Where("team_id = ?", teamID).Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormChampionshipRepository) Update(ch *Championship) error {
	return r.db.Save(ch).Error
}

func (r *gormChampionshipRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("championship_id = ?", id).Delete(&StandingsRow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Championship{}, id).Error
	})
}

func (r *gormChampionshipRepository) GetStandings(championshipID uint) ([]StandingsRow, error) {
	var rows []StandingsRow
	err := r.db.Where("championship_id = ?", championshipID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	SortStandings(rows)
	return rows, nil
}

func (r *gormChampionshipRepository) ReplaceStandings(championshipID uint, rows []StandingsRow) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("championship_id = ?", championshipID).Delete(&StandingsRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			rows[i].ChampionshipID = championshipID
		}
		return tx.Create(&rows).Error
	})
}
