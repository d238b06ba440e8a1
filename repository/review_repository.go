package repository

import (
	"github.com/nitishmehan/Eatsy/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// Create inserts the review with its item snapshot in one transaction. A
// duplicate (user, order) pair surfaces as gorm.ErrDuplicatedKey from the
// unique index.
func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) ExistsForOrder(userID, orderID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).
		Where("user_id = ? AND order_id = ?", userID, orderID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) ListForVendor(vendorID uint, limit, offset int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var reviews []entity.Review
	err := r.DB.Preload("Items").
		Where("vendor_id = ?", vendorID).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListForUser(userID uint, limit, offset int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var reviews []entity.Review
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

// RatingSummary is a vendor's aggregated review standing. Vendors with no
// reviews simply have no row.
type RatingSummary struct {
	VendorID    uint    `json:"vendorId"`
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int64   `json:"reviewCount"`
}

// AggregateByVendor computes mean rating and count per vendor in one
// GROUP BY pass.
func (r *ReviewRepository) AggregateByVendor(vendorIDs []uint) (map[uint]RatingSummary, error) {
	if len(vendorIDs) == 0 {
		return map[uint]RatingSummary{}, nil
	}
	var rows []RatingSummary
	err := r.DB.Model(&entity.Review{}).
		Select("vendor_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count").
		Where("vendor_id IN ?", vendorIDs).
		Group("vendor_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint]RatingSummary, len(rows))
	for _, row := range rows {
		out[row.VendorID] = row
	}
	return out, nil
}

// AggregateForVendor is the single-vendor variant used by the detail page
// and dashboard.
func (r *ReviewRepository) AggregateForVendor(vendorID uint) (RatingSummary, error) {
	agg, err := r.AggregateByVendor([]uint{vendorID})
	if err != nil {
		return RatingSummary{}, err
	}
	if s, ok := agg[vendorID]; ok {
		return s, nil
	}
	return RatingSummary{VendorID: vendorID}, nil
}
