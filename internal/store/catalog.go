package store

import (
	"fmt"
	"sort"
	"time"

	"shivasadhana-api/internal/models"
)

// Catalog entities follow the same contract: list all, point lookup,
// create with fresh id + createdAt, partial update that fails with
// ErrNotFound for absent ids, and delete as a silent no-op.

// Products

func (s *Store) GetProducts() []models.Product {
	return s.products.list()
}

func (s *Store) GetProduct(id string) (models.Product, bool) {
	return s.products.get(id)
}

func (s *Store) CreateProduct(product models.Product) models.Product {
	product.ID = newID()
	product.CreatedAt = time.Now()
	s.products.insert(product.ID, product)
	return product
}

func (s *Store) UpdateProduct(id string, updates *models.ProductUpdate) (models.Product, error) {
	product, ok := s.products.update(id, updates.Apply)
	if !ok {
		return models.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return product, nil
}

func (s *Store) DeleteProduct(id string) {
	s.products.remove(id)
}

// Travels

func (s *Store) GetTravels() []models.Travel {
	return s.travels.list()
}

func (s *Store) GetTravel(id string) (models.Travel, bool) {
	return s.travels.get(id)
}

func (s *Store) CreateTravel(travel models.Travel) models.Travel {
	travel.ID = newID()
	travel.CreatedAt = time.Now()
	s.travels.insert(travel.ID, travel)
	return travel
}

func (s *Store) UpdateTravel(id string, updates *models.TravelUpdate) (models.Travel, error) {
	travel, ok := s.travels.update(id, updates.Apply)
	if !ok {
		return models.Travel{}, fmt.Errorf("travel package %s: %w", id, ErrNotFound)
	}
	return travel, nil
}

func (s *Store) DeleteTravel(id string) {
	s.travels.remove(id)
}

// Accommodations

func (s *Store) GetAccommodations() []models.Accommodation {
	return s.accommodations.list()
}

func (s *Store) GetAccommodation(id string) (models.Accommodation, bool) {
	return s.accommodations.get(id)
}

func (s *Store) CreateAccommodation(accommodation models.Accommodation) models.Accommodation {
	accommodation.ID = newID()
	accommodation.CreatedAt = time.Now()
	s.accommodations.insert(accommodation.ID, accommodation)
	return accommodation
}

func (s *Store) UpdateAccommodation(id string, updates *models.AccommodationUpdate) (models.Accommodation, error) {
	accommodation, ok := s.accommodations.update(id, updates.Apply)
	if !ok {
		return models.Accommodation{}, fmt.Errorf("accommodation %s: %w", id, ErrNotFound)
	}
	return accommodation, nil
}

func (s *Store) DeleteAccommodation(id string) {
	s.accommodations.remove(id)
}

// Shraddha packages

func (s *Store) GetShraddhaPackages() []models.ShraddhaPackage {
	return s.shraddhaPackages.list()
}

func (s *Store) GetShraddhaPackage(id string) (models.ShraddhaPackage, bool) {
	return s.shraddhaPackages.get(id)
}

func (s *Store) CreateShraddhaPackage(pkg models.ShraddhaPackage) models.ShraddhaPackage {
	pkg.ID = newID()
	pkg.CreatedAt = time.Now()
	s.shraddhaPackages.insert(pkg.ID, pkg)
	return pkg
}

func (s *Store) UpdateShraddhaPackage(id string, updates *models.ShraddhaPackageUpdate) (models.ShraddhaPackage, error) {
	pkg, ok := s.shraddhaPackages.update(id, updates.Apply)
	if !ok {
		return models.ShraddhaPackage{}, fmt.Errorf("shraddha package %s: %w", id, ErrNotFound)
	}
	return pkg, nil
}

func (s *Store) DeleteShraddhaPackage(id string) {
	s.shraddhaPackages.remove(id)
}

// Banners

// GetBanners returns all banners sorted ascending by their order field.
func (s *Store) GetBanners() []models.Banner {
	banners := s.banners.list()
	sort.SliceStable(banners, func(i, j int) bool {
		return banners[i].Order < banners[j].Order
	})
	return banners
}

func (s *Store) GetBanner(id string) (models.Banner, bool) {
	return s.banners.get(id)
}

// CreateBanner stores a banner. IsActive defaults to 1 when omitted;
// Order already defaults to 0 through its zero value.
func (s *Store) CreateBanner(banner models.Banner) models.Banner {
	banner.ID = newID()
	if banner.IsActive == nil {
		active := 1
		banner.IsActive = &active
	}
	banner.CreatedAt = time.Now()
	s.banners.insert(banner.ID, banner)
	return banner
}

func (s *Store) UpdateBanner(id string, updates *models.BannerUpdate) (models.Banner, error) {
	banner, ok := s.banners.update(id, updates.Apply)
	if !ok {
		return models.Banner{}, fmt.Errorf("banner %s: %w", id, ErrNotFound)
	}
	return banner, nil
}

func (s *Store) DeleteBanner(id string) {
	s.banners.remove(id)
}
