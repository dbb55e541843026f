package auth

import (
	"time"

	"github.com/meutimefc/api/internal/user"
	"gorm.io/gorm"
)

type AuthRepository interface {
	CreateUser(u *user.User) error
	GetUserByEmail(email string) (*user.User, error)
	GetUserByPhone(phone string) (*user.User, error)
	GetUserByID(id uint) (*user.User, error)
	UpdateUser(u *user.User) error

	CreatePasswordReset(pr *PasswordReset) error
	GetPasswordReset(token string) (*PasswordReset, error)
	ConsumePasswordReset(token string) (bool, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *authRepository) GetUserByEmail(email string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByPhone(phone string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("phone = ?", phone).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByID(id uint) (*user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) UpdateUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *authRepository) CreatePasswordReset(pr *PasswordReset) error {
	return r.db.Create(pr).Error
}

func (r *authRepository) GetPasswordReset(token string) (*PasswordReset, error) {
	var pr PasswordReset
	if err := r.db.Where("id = ?", token).First(&pr).Error; err != nil {
		return nil, err
	}
	return &pr, nil
}

// ConsumePasswordReset marks a reset record used. The WHERE used = false
// guard makes consumption atomic: of two concurrent attempts with the same
// token, exactly one sees a row affected.
func (r *authRepository) ConsumePasswordReset(token string) (bool, error) {
	result := r.db.Model(&PasswordReset{}).
		Where("id = ? AND used = ? AND expires_at > ?", token, false, time.Now()).
		Update("used", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
