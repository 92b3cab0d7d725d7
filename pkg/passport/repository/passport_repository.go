package repository

import "agritrust/entities"

type PassportRepository interface {
	Find(userID string) (*entities.Passport, error)
	Upsert(p *entities.Passport) error
	FindUser(userID string) (*entities.User, error)
}
