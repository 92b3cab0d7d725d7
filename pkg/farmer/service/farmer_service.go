package service

import (
	"agritrust/entities"
	"agritrust/pkg/catalog"
)

// Profile is the public farmer page: the directory entry plus the farmer's
// products.
type Profile struct {
	catalog.FarmerEntry
	Products []entities.ProductView `json:"products"`
}

type FarmerService interface {
	// Directory returns the filtered farmer list and the emergent category
	// list derived from the full product collection.
	Directory(c catalog.FarmerCriteria) ([]catalog.FarmerEntry, []string, error)
	Profile(id string) (*Profile, error)
}
