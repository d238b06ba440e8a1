package repository

import (
	"time"

	"github.com/nitishmehan/Eatsy/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderSummary is the row shape for order lists.
type OrderSummary struct {
	ID        uint      `json:"id"`
	VendorID  uint      `json:"vendorId"`
	UserID    uint      `json:"userId"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListForUser returns the customer's orders, newest first.
func (r *OrderRepository) ListForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, vendor_id, user_id, status, total, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ListForVendor returns the vendor's order queue, newest first, optionally
// narrowed to one status.
func (r *OrderRepository) ListForVendor(vendorID uint, status string, limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	db := r.DB.Model(&entity.Order{}).
		Select("id, vendor_id, user_id, status, total, created_at").
		Where("vendor_id = ?", vendorID)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var out []OrderSummary
	err := db.Order("id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

// UpdateStatusFromTo applies a transition only when the row still holds the
// expected source status; the affected-row count tells the caller whether a
// concurrent mover got there first.
func (r *OrderRepository) UpdateStatusFromTo(orderID uint, from, to string) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// StatusCount is one row of the vendor dashboard's status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func (r *OrderRepository) CountByStatus(vendorID uint) ([]StatusCount, error) {
	var out []StatusCount
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Where("vendor_id = ?", vendorID).
		Group("status").
		Scan(&out).Error
	return out, err
}

// RevenueForVendor sums totals over delivered orders only.
func (r *OrderRepository) RevenueForVendor(vendorID uint) (float64, error) {
	var row struct{ Revenue float64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS revenue").
		Where("vendor_id = ? AND status = ?", vendorID, entity.StatusDelivered).
		Scan(&row).Error
	return row.Revenue, err
}
