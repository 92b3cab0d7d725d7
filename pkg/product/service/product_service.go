package service

import (
	"context"
	"errors"

	"agritrust/entities"
	"agritrust/pkg/catalog"
	"agritrust/pkg/form"
)

var (
	ErrNotFound  = errors.New("product not found")
	ErrForbidden = errors.New("only the owning farmer may modify this product")
)

// ListResult carries the filtered subset plus the emergent category list of
// the FULL collection, which drives the filter checkboxes.
type ListResult struct {
	Products   []entities.ProductView `json:"products"`
	Categories []string               `json:"categories"`
	Total      int                    `json:"total"`
}

type ProductService interface {
	List(ctx context.Context, c catalog.ProductCriteria) (*ListResult, error)
	Create(ctx context.Context, farmerID string, values form.Values) (form.Errors, error)
	Update(ctx context.Context, farmerID, productID string, values form.Values) (form.Errors, error)
	Delete(ctx context.Context, farmerID, productID string) error
	// ExportXLSX renders the full catalog as a spreadsheet.
	ExportXLSX(ctx context.Context) ([]byte, error)
}
