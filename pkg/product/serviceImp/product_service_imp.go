package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agritrust/entities"
	"agritrust/pkg/cache"
	"agritrust/pkg/catalog"
	"agritrust/pkg/form"
	"agritrust/pkg/product/repository"
	"agritrust/pkg/product/service"
)

const collectionKey = "products:all"

type productSvc struct {
	r      repository.ProductRepository
	store  cache.Store
	ttl    time.Duration
	loader *catalog.Loader
}

func New(r repository.ProductRepository, store cache.Store, ttl time.Duration) service.ProductService {
	s := &productSvc{r: r, store: store, ttl: ttl}
	s.loader = catalog.NewLoader(s.fetchViews)
	return s
}

// fetchViews is the cache-aside read of the full collection: cached JSON if
// present, otherwise products joined with their owner snapshots.
func (s *productSvc) fetchViews(ctx context.Context) ([]entities.ProductView, error) {
	var cached []entities.ProductView
	if hit, err := s.store.Get(ctx, collectionKey, &cached); err == nil && hit {
		return cached, nil
	}

	products, err := s.r.All()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(products))
	seen := map[string]bool{}
	for _, p := range products {
		if !seen[p.FarmerID] {
			seen[p.FarmerID] = true
			ids = append(ids, p.FarmerID)
		}
	}
	owners, err := s.r.OwnersByIDs(ids)
	if err != nil {
		return nil, err
	}

	views := make([]entities.ProductView, len(products))
	for i, p := range products {
		o := owners[p.FarmerID]
		views[i] = entities.ProductView{
			Product: p,
			Farmer:  entities.FarmerRef{ID: p.FarmerID, Name: o.Name, Image: o.Image},
		}
	}
	if err := s.store.Set(ctx, collectionKey, views, s.ttl); err != nil {
		return views, nil // cache write failure is not a read failure
	}
	return views, nil
}

func (s *productSvc) List(ctx context.Context, c catalog.ProductCriteria) (*service.ListResult, error) {
	views, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := catalog.FilterProducts(views, c)
	return &service.ListResult{
		Products:   filtered,
		Categories: catalog.Categories(views),
		Total:      len(filtered),
	}, nil
}

func (s *productSvc) Create(ctx context.Context, farmerID string, values form.Values) (form.Errors, error) {
	d := form.NewDialog(form.ProductSchema(), func(ctx context.Context, _ string, rec form.Record) error {
		return s.r.Create(recordToProduct(uuid.NewString(), farmerID, rec))
	}, s.invalidate)
	d.OpenBlank()
	return d.Submit(ctx, values)
}

func (s *productSvc) Update(ctx context.Context, farmerID, productID string, values form.Values) (form.Errors, error) {
	p, err := s.owned(farmerID, productID)
	if err != nil {
		return nil, err
	}

	d := form.NewDialog(form.ProductSchema(), func(ctx context.Context, id string, rec form.Record) error {
		up := recordToProduct(id, farmerID, rec)
		up.CreatedAt = p.CreatedAt
		return s.r.Update(up)
	}, s.invalidate)
	d.OpenEdit(productID, form.Values{
		"name":        p.Name,
		"description": p.Description,
		"price":       fmt.Sprintf("%g", p.Price),
		"category":    p.Category,
		"isOrganic":   p.IsOrganic,
		"image":       p.Image,
	})
	return d.Submit(ctx, values)
}

func (s *productSvc) Delete(ctx context.Context, farmerID, productID string) error {
	if _, err := s.owned(farmerID, productID); err != nil {
		return err
	}
	if err := s.r.Delete(productID); err != nil {
		return err
	}
	return s.invalidate(ctx)
}

func (s *productSvc) owned(farmerID, productID string) (*entities.Product, error) {
	p, err := s.r.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	if p.FarmerID != farmerID {
		return nil, service.ErrForbidden
	}
	return p, nil
}

// invalidate drops the cached collection so the next read repopulates it.
// Every successful mutation funnels through here (read-after-write).
func (s *productSvc) invalidate(ctx context.Context) error {
	s.loader.Invalidate()
	return s.store.Delete(ctx, collectionKey)
}

func recordToProduct(id, farmerID string, rec form.Record) *entities.Product {
	p := &entities.Product{
		ProductID:   id,
		FarmerID:    farmerID,
		Name:        rec["name"].(string),
		Description: rec["description"].(string),
		Price:       rec["price"].(float64),
		Category:    rec["category"].(string),
		IsOrganic:   rec["isOrganic"].(bool),
	}
	if img, ok := rec["image"].(string); ok {
		p.Image = img
	}
	return p
}
