package repositoryImp

import (
	"gorm.io/gorm"

	"agritrust/entities"
	"agritrust/pkg/product/repository"
)

type productRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProductRepository { return &productRepo{db} }

func (r *productRepo) Create(p *entities.Product) error { return r.db.Create(p).Error }

func (r *productRepo) Update(p *entities.Product) error { return r.db.Save(p).Error }

func (r *productRepo) Delete(id string) error {
	return r.db.Where("product_id = ?", id).Delete(&entities.Product{}).Error
}

func (r *productRepo) FindByID(id string) (*entities.Product, error) {
	var p entities.Product
	if err := r.db.Where("product_id = ?", id).First(&p).Error; err != nil { return nil, err }
	return &p, nil
}

func (r *productRepo) All() ([]entities.Product, error) {
	var out []entities.Product
	if err := r.db.Order("created_at ASC, product_id ASC").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}

func (r *productRepo) ByFarmer(farmerID string) ([]entities.Product, error) {
	var out []entities.Product
	if err := r.db.Where("farmer_id = ?", farmerID).Order("created_at ASC").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}

func (r *productRepo) OwnersByIDs(ids []string) (map[string]entities.User, error) {
	if len(ids) == 0 {
		return map[string]entities.User{}, nil
	}
	var users []entities.User
	if err := r.db.Where("user_id IN ?", ids).Find(&users).Error; err != nil { return nil, err }
	out := make(map[string]entities.User, len(users))
	for _, u := range users {
		out[u.UserID] = u
	}
	return out, nil
}
