package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/repository"

	"gorm.io/gorm"
)

// ReviewService gates review creation: one review per (customer, order),
// delivered orders only, reviewer must own the order.
type ReviewService struct {
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
}

func NewReviewService(repo *repository.ReviewRepository, orderRepo *repository.OrderRepository) *ReviewService {
	return &ReviewService{Repo: repo, OrderRepo: orderRepo}
}

// CanReview reports eligibility without side effects. Any failed condition
// yields false; Create re-validates everything anyway.
func (s *ReviewService) CanReview(userID, orderID uint) (bool, error) {
	exists, err := s.Repo.ExistsForOrder(userID, orderID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	o, err := s.OrderRepo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return o.UserID == userID && o.Status == entity.StatusDelivered, nil
}

// Create validates the full rule set and stores the review with an item
// snapshot copied from the order. Two racing submissions both pass the
// pre-check at worst; the unique index on (user_id, order_id) then rejects
// one, and that duplicate-key signal is translated here so both detection
// paths fail with ErrAlreadyReviewed.
func (s *ReviewService) Create(userID, orderID uint, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	exists, err := s.Repo.ExistsForOrder(userID, orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	o, err := s.OrderRepo.GetWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}
	if o.UserID != userID {
		return nil, fmt.Errorf("%w: not your order", ErrForbidden)
	}
	if o.Status != entity.StatusDelivered {
		return nil, ErrNotDelivered
	}

	items := make([]entity.ReviewItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, entity.ReviewItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
		})
	}

	review := &entity.Review{
		UserID:   userID,
		VendorID: o.VendorID,
		OrderID:  orderID,
		Rating:   rating,
		Comment:  strings.TrimSpace(comment),
		Items:    items,
	}
	if err := s.Repo.Create(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListForVendor(vendorID uint, limit, offset int) ([]entity.Review, repository.RatingSummary, error) {
	reviews, err := s.Repo.ListForVendor(vendorID, limit, offset)
	if err != nil {
		return nil, repository.RatingSummary{}, err
	}
	agg, err := s.Repo.AggregateForVendor(vendorID)
	if err != nil {
		return nil, repository.RatingSummary{}, err
	}
	return reviews, agg, nil
}

func (s *ReviewService) ListForUser(userID uint, limit, offset int) ([]entity.Review, error) {
	return s.Repo.ListForUser(userID, limit, offset)
}
