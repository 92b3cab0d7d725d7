package repository

import "agritrust/entities"

type FarmerRepository interface {
	ListFarmers() ([]entities.User, error)
	FindByID(id string) (*entities.User, error)
	AllProducts() ([]entities.Product, error)
	ProductsByFarmer(id string) ([]entities.Product, error)
}
