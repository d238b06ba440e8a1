package services

import (
	"fmt"
	"strings"

	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/repository"
)

// VendorService covers the vendor's own restaurant management and the
// dashboard analytics.
type VendorService struct {
	UserRepo   *repository.UserRepository
	OrderRepo  *repository.OrderRepository
	ReviewRepo *repository.ReviewRepository
	MenuRepo   *repository.MenuRepository
}

func NewVendorService(
	userRepo *repository.UserRepository,
	orderRepo *repository.OrderRepository,
	reviewRepo *repository.ReviewRepository,
	menuRepo *repository.MenuRepository,
) *VendorService {
	return &VendorService{
		UserRepo:   userRepo,
		OrderRepo:  orderRepo,
		ReviewRepo: reviewRepo,
		MenuRepo:   menuRepo,
	}
}

// UpdateRestaurant replaces the vendor's restaurant profile. Everything but
// the image is required, matching the vendor construction invariants.
func (s *VendorService) UpdateRestaurant(vendorID uint, r entity.Restaurant) (*entity.User, error) {
	if strings.TrimSpace(r.Name) == "" || len(r.Cuisine) == 0 ||
		r.PriceRange == "" || strings.TrimSpace(r.Address) == "" ||
		r.EstimatedDelivery <= 0 {
		return nil, fmt.Errorf("%w: all restaurant fields are required", ErrValidation)
	}
	if !entity.ValidPriceRange(r.PriceRange) {
		return nil, fmt.Errorf("%w: invalid price range", ErrValidation)
	}

	updates := map[string]any{
		"restaurant_name":    strings.TrimSpace(r.Name),
		"cuisine":            entity.JoinTags(r.Cuisine),
		"price_range":        r.PriceRange,
		"estimated_delivery": r.EstimatedDelivery,
		"address":            strings.TrimSpace(r.Address),
	}
	if r.Image != "" {
		updates["restaurant_image"] = r.Image
	}

	if err := s.UserRepo.Update(vendorID, updates); err != nil {
		return nil, err
	}
	return s.UserRepo.FindByID(vendorID)
}

// SetOpen toggles whether the restaurant appears in listings.
func (s *VendorService) SetOpen(vendorID uint, isOpen bool) error {
	return s.UserRepo.Update(vendorID, map[string]any{"is_open": isOpen})
}

// Dashboard is the vendor analytics payload.
type Dashboard struct {
	TotalOrders    int64                    `json:"totalOrders"`
	OrdersByStatus []repository.StatusCount `json:"ordersByStatus"`
	Revenue        float64                  `json:"revenue"`
	AvgRating      float64                  `json:"avgRating"`
	ReviewCount    int64                    `json:"reviewCount"`
	MenuItems      int64                    `json:"menuItems"`
}

func (s *VendorService) GetDashboard(vendorID uint) (*Dashboard, error) {
	byStatus, err := s.OrderRepo.CountByStatus(vendorID)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, sc := range byStatus {
		total += sc.Count
	}

	revenue, err := s.OrderRepo.RevenueForVendor(vendorID)
	if err != nil {
		return nil, err
	}
	agg, err := s.ReviewRepo.AggregateForVendor(vendorID)
	if err != nil {
		return nil, err
	}
	menuCount, err := s.MenuRepo.CountForVendor(vendorID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TotalOrders:    total,
		OrdersByStatus: byStatus,
		Revenue:        revenue,
		AvgRating:      agg.AvgRating,
		ReviewCount:    agg.ReviewCount,
		MenuItems:      menuCount,
	}, nil
}
