package serviceImp

import (
	"agritrust/entities"
	"agritrust/pkg/catalog"
	"agritrust/pkg/farmer/repository"
	"agritrust/pkg/farmer/service"
)

type farmerSvc struct {
	r       repository.FarmerRepository
	ratings catalog.RatingSource
}

func New(r repository.FarmerRepository, ratings catalog.RatingSource) service.FarmerService {
	return &farmerSvc{r: r, ratings: ratings}
}

func (s *farmerSvc) Directory(c catalog.FarmerCriteria) ([]catalog.FarmerEntry, []string, error) {
	farmers, err := s.r.ListFarmers()
	if err != nil {
		return nil, nil, err
	}
	products, err := s.r.AllProducts()
	if err != nil {
		return nil, nil, err
	}

	views := viewsOf(products, farmers)
	stats := catalog.DeriveFarmerStats(views)

	entries := make([]catalog.FarmerEntry, len(farmers))
	for i, f := range farmers {
		entries[i] = s.entry(f, stats[f.UserID])
	}
	return catalog.FilterFarmers(entries, c), catalog.Categories(views), nil
}

func (s *farmerSvc) Profile(id string) (*service.Profile, error) {
	f, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	products, err := s.r.ProductsByFarmer(id)
	if err != nil {
		return nil, err
	}
	views := viewsOf(products, []entities.User{*f})
	stats := catalog.DeriveFarmerStats(views)
	return &service.Profile{
		FarmerEntry: s.entry(*f, stats[id]),
		Products:    views,
	}, nil
}

func (s *farmerSvc) entry(f entities.User, st catalog.FarmerStats) catalog.FarmerEntry {
	return catalog.FarmerEntry{
		ID:           f.UserID,
		Name:         f.Name,
		Location:     f.Location,
		Bio:          f.Bio,
		Image:        f.Image,
		Rating:       s.ratings.Rating(f.UserID),
		Categories:   st.Categories,
		ProductCount: st.ProductCount,
	}
}

func viewsOf(products []entities.Product, farmers []entities.User) []entities.ProductView {
	byID := make(map[string]entities.User, len(farmers))
	for _, f := range farmers {
		byID[f.UserID] = f
	}
	views := make([]entities.ProductView, len(products))
	for i, p := range products {
		o := byID[p.FarmerID]
		views[i] = entities.ProductView{
			Product: p,
			Farmer:  entities.FarmerRef{ID: p.FarmerID, Name: o.Name, Image: o.Image},
		}
	}
	return views
}
