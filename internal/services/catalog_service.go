package services

import (
	"database/sql"
	"errors"

	"ajir/internal/domain"
	"ajir/internal/repos"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) Create(p domain.Product) (domain.Product, error) {
	p.ID = uuid.NewString()
	if err := s.Prods.Create(&p); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(p.ID)
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrProductNotFound
	}
	return p, err
}

func (s *CatalogService) ListByCategory(category string) ([]domain.Product, error) {
	return s.Prods.ListByCategory(category)
}

// ProductPatch carries the fields of a partial update; nil means untouched.
type ProductPatch struct {
	Category    *string  `json:"category"`
	RentalPlace *string  `json:"rentalPlace"`
	Description *string  `json:"description"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
}

func (s *CatalogService) Update(id string, patch ProductPatch) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, err
	}

	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.RentalPlace != nil {
		p.RentalPlace = *patch.RentalPlace
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}

	ok, err := s.Prods.Update(&p)
	if err != nil {
		return domain.Product{}, err
	}
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return s.Prods.Get(id)
}

func (s *CatalogService) Delete(id string) error {
	ok, err := s.Prods.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}
