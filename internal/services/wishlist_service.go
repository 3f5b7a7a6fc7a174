package services

import (
	"ajir/internal/domain"
	"ajir/internal/repos"
)

type WishlistService struct {
	Repo *repos.WishlistRepo
}

func NewWishlistService(r *repos.WishlistRepo) *WishlistService { return &WishlistService{Repo: r} }

// Toggle flips membership of the pair and returns the user's wishlist as
// resolved product records, plus whether the product is now a member.
func (s *WishlistService) Toggle(userID, productID string) ([]domain.Product, bool, error) {
	member, err := s.Repo.Toggle(userID, productID)
	if err != nil {
		return nil, false, err
	}
	items, err := s.Repo.ListProducts(userID)
	if err != nil {
		return nil, false, err
	}
	return items, member, nil
}

func (s *WishlistService) List(userID string) ([]domain.Product, error) {
	return s.Repo.ListProducts(userID)
}

func (s *WishlistService) Remove(userID, productID string) error {
	return s.Repo.Remove(userID, productID)
}
