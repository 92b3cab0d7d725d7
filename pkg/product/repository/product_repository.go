package repository

import "agritrust/entities"

type ProductRepository interface {
	Create(p *entities.Product) error
	Update(p *entities.Product) error
	Delete(id string) error
	FindByID(id string) (*entities.Product, error)
	All() ([]entities.Product, error)
	ByFarmer(farmerID string) ([]entities.Product, error)
	// OwnersByIDs resolves the farmer snapshots attached to product views.
	OwnersByIDs(ids []string) (map[string]entities.User, error)
}
