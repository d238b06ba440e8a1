package repository

import (
	"github.com/nitishmehan/Eatsy/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

// GetForVendor loads an item only when the vendor owns it.
func (r *MenuRepository) GetForVendor(vendorID, itemID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.Where("id = ? AND vendor_id = ?", itemID, vendorID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Save(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) DeleteForVendor(vendorID, itemID uint) (int64, error) {
	res := r.DB.Where("id = ? AND vendor_id = ?", itemID, vendorID).
		Delete(&entity.MenuItem{})
	return res.RowsAffected, res.Error
}

// ListForVendor returns every item including unavailable ones, for the
// vendor's own management view.
func (r *MenuRepository) ListForVendor(vendorID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("vendor_id = ?", vendorID).Order("id DESC").Find(&items).Error
	return items, err
}

// MenuFilter narrows the public menu listing of one restaurant.
type MenuFilter struct {
	Category  string
	Dietary   string
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    string // name | price
	SortOrder string // asc | desc
}

// ListAvailable returns a restaurant's purchasable items, filtered and
// sorted at the query layer.
func (r *MenuRepository) ListAvailable(vendorID uint, f MenuFilter) ([]entity.MenuItem, error) {
	db := r.DB.Where("vendor_id = ? AND available = ?", vendorID, true)
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	if f.Dietary != "" {
		db = db.Where("(',' || dietary || ',') LIKE ?", "%,"+f.Dietary+",%")
	}
	if f.MinPrice != nil {
		db = db.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("price <= ?", *f.MaxPrice)
	}

	order := "name"
	if f.SortBy == "price" {
		order = "price"
	}
	if f.SortOrder == "desc" {
		order += " DESC"
	}

	var items []entity.MenuItem
	err := db.Order(order).Find(&items).Error
	return items, err
}

func (r *MenuRepository) CountForVendor(vendorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Where("vendor_id = ?", vendorID).Count(&count).Error
	return count, err
}

// GetBasics loads just enough of the items to price an order.
func (r *MenuRepository) GetBasics(ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Select("id, vendor_id, name, price, available").
		Where("id IN ?", ids).Find(&items).Error
	return items, err
}
