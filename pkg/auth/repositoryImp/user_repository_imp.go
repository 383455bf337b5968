package repositoryImp

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"greengreen/entities"
	"greengreen/pkg/apperr"
	"greengreen/pkg/auth/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error {
	var n int64
	if err := r.db.Model(&entities.User{}).Where("email = ?", u.Email).Count(&n).Error; err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if n > 0 {
		return apperr.ErrEmailTaken
	}
	if err := r.db.Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepo) FindByEmail(email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *userRepo) FindByID(id string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("user_id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *userRepo) TouchLogin(id string, at time.Time) error {
	return r.db.Model(&entities.User{}).Where("user_id = ?", id).Update("last_login_at", at).Error
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return fmt.Errorf("find user: %w", err)
}
