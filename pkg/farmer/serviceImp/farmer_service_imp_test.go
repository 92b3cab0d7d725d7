package serviceImp

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"agritrust/entities"
	"agritrust/pkg/catalog"
)

type fakeRepo struct {
	farmers  []entities.User
	products []entities.Product
}

func (f *fakeRepo) ListFarmers() ([]entities.User, error) { return f.farmers, nil }

func (f *fakeRepo) FindByID(id string) (*entities.User, error) {
	for i := range f.farmers {
		if f.farmers[i].UserID == id {
			u := f.farmers[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) AllProducts() ([]entities.Product, error) { return f.products, nil }

func (f *fakeRepo) ProductsByFarmer(id string) ([]entities.Product, error) {
	var out []entities.Product
	for _, p := range f.products {
		if p.FarmerID == id {
			out = append(out, p)
		}
	}
	return out, nil
}

func seededRepo() *fakeRepo {
	return &fakeRepo{
		farmers: []entities.User{
			{UserID: "f1", Name: "Green Valley Farm", Role: entities.RoleFarmer, Location: "Vermont", Bio: "Organic vegetables"},
			{UserID: "f2", Name: "Sunny Meadow Farm", Role: entities.RoleFarmer, Location: "Oregon", Bio: "Free-range eggs"},
		},
		products: []entities.Product{
			{ProductID: "p1", FarmerID: "f1", Name: "Tomatoes", Category: "Vegetables", Price: 4.99},
			{ProductID: "p2", FarmerID: "f1", Name: "Carrots", Category: "Vegetables", Price: 2.99},
			{ProductID: "p3", FarmerID: "f1", Name: "Strawberries", Category: "Fruits", Price: 6.49},
			{ProductID: "p4", FarmerID: "f2", Name: "Eggs", Category: "Dairy & Eggs", Price: 5.99},
		},
	}
}

func TestDirectory_DerivesStatsFromProducts(t *testing.T) {
	svc := New(seededRepo(), catalog.FixedRating(4.5))

	entries, cats, err := svc.Directory(catalog.FarmerCriteria{})
	if err != nil {
		t.Fatalf("Directory() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	f1 := entries[0]
	if f1.ID != "f1" || f1.ProductCount != 3 {
		t.Errorf("f1 = %+v", f1)
	}
	if len(f1.Categories) != 2 {
		t.Errorf("f1 categories = %v, want [Vegetables Fruits]", f1.Categories)
	}
	if f1.Rating != 4.5 {
		t.Errorf("rating = %v", f1.Rating)
	}
	if len(cats) != 3 {
		t.Errorf("category list = %v, want 3 distinct", cats)
	}
}

func TestDirectory_Filtered(t *testing.T) {
	svc := New(seededRepo(), catalog.FixedRating(4.5))

	entries, _, err := svc.Directory(catalog.FarmerCriteria{Search: "vermont"})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].ID != "f1" {
		t.Fatalf("got %v", entries)
	}

	entries, _, err = svc.Directory(catalog.FarmerCriteria{Categories: []string{"dairy & eggs"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].ID != "f2" {
		t.Fatalf("got %v", entries)
	}
}

func TestProfile(t *testing.T) {
	svc := New(seededRepo(), catalog.FixedRating(4.5))

	p, err := svc.Profile("f1")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if p.Name != "Green Valley Farm" || p.ProductCount != 3 || len(p.Products) != 3 {
		t.Fatalf("profile = %+v", p)
	}
	if p.Products[0].Farmer.Name != "Green Valley Farm" {
		t.Errorf("owner snapshot missing: %+v", p.Products[0].Farmer)
	}

	if _, err := svc.Profile("nope"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("unknown farmer = %v", err)
	}
}
