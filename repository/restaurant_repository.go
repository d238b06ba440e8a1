package repository

import (
	"strings"

	"github.com/nitishmehan/Eatsy/entity"

	"gorm.io/gorm"
)

// RestaurantRepository reads the vendor side of the users table for the
// public listing pages.
type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// FindOpenVendors selects open vendor accounts, narrowed by price range and
// free-text search at the query layer. Cuisine-set membership is matched in
// the service because the set is stored comma-joined.
func (r *RestaurantRepository) FindOpenVendors(priceRange, search string) ([]entity.User, error) {
	db := r.DB.Where("role = ? AND is_open = ?", entity.RoleVendor, true)
	if priceRange != "" {
		db = db.Where("price_range = ?", priceRange)
	}
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where(
			"LOWER(restaurant_name) LIKE ? OR LOWER(cuisine) LIKE ? OR LOWER(address) LIKE ?",
			like, like, like,
		)
	}
	var vendors []entity.User
	err := db.Order("id ASC").Find(&vendors).Error
	return vendors, err
}
