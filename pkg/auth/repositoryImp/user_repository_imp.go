package repositoryImp

import (
	"gorm.io/gorm"

	"agritrust/entities"
	"agritrust/pkg/auth/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) FindByEmail(email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil { return nil, err }
	return &u, nil
}

func (r *userRepo) FindByID(id string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("user_id = ?", id).First(&u).Error; err != nil { return nil, err }
	return &u, nil
}

func (r *userRepo) CreateReset(pr *entities.PasswordReset) error { return r.db.Create(pr).Error }
