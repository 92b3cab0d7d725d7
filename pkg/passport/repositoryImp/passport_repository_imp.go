package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agritrust/entities"
	"agritrust/pkg/passport/repository"
)

type passportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PassportRepository { return &passportRepo{db} }

func (r *passportRepo) Find(userID string) (*entities.Passport, error) {
	var p entities.Passport
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil { return nil, err }
	return &p, nil
}

func (r *passportRepo) Upsert(p *entities.Passport) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(p).Error
}

func (r *passportRepo) FindUser(userID string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("user_id = ?", userID).First(&u).Error; err != nil { return nil, err }
	return &u, nil
}
