package repositoryImp

import (
	"gorm.io/gorm"

	"agritrust/entities"
	"agritrust/pkg/farmer/repository"
)

type farmerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmerRepository { return &farmerRepo{db} }

func (r *farmerRepo) ListFarmers() ([]entities.User, error) {
	var out []entities.User
	if err := r.db.Where("role = ?", entities.RoleFarmer).Order("created_at ASC").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}

func (r *farmerRepo) FindByID(id string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("user_id = ? AND role = ?", id, entities.RoleFarmer).First(&u).Error; err != nil { return nil, err }
	return &u, nil
}

func (r *farmerRepo) AllProducts() ([]entities.Product, error) {
	var out []entities.Product
	if err := r.db.Order("created_at ASC").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}

func (r *farmerRepo) ProductsByFarmer(id string) ([]entities.Product, error) {
	var out []entities.Product
	if err := r.db.Where("farmer_id = ?", id).Order("created_at ASC").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}
