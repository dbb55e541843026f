package user

import (
	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id uint) (*User, error)
	Update(u *User) error
	// SetSocio flips the membership flag without touching other columns.
	SetSocio(userID uint, isSocio bool) error
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) GetByID(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *gormUserRepository) Update(u *User) error {
	return r.db.Save(u).Error
}

func (r *gormUserRepository) SetSocio(userID uint, isSocio bool) error {
	return r.db.Model(&User{}).Where("id = ?", userID).Update("is_socio", isSocio).Error
}
