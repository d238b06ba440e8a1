package services

import (
	"path/filepath"
	"testing"

	"github.com/nitishmehan/Eatsy/configs"
	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewUserRepository(db),
	)
}

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewOrderRepository(db),
	)
}

func newRestaurantService(db *gorm.DB) *RestaurantService {
	return NewRestaurantService(
		repository.NewRestaurantRepository(db),
		repository.NewReviewRepository(db),
		repository.NewMenuRepository(db),
	)
}

func createCustomer(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := entity.NewCustomer(email, "hash", "Test Customer", "")
	require.NoError(t, db.Create(u).Error)
	return u
}

func createVendor(t *testing.T, db *gorm.DB, email, name string, cuisine ...string) *entity.User {
	t.Helper()
	if len(cuisine) == 0 {
		cuisine = []string{"Indian"}
	}
	u := entity.NewVendor(email, "hash", "Test Vendor", "", entity.Restaurant{
		Name:              name,
		Cuisine:           cuisine,
		PriceRange:        entity.PriceRange100To300,
		EstimatedDelivery: 30,
		Address:           "12 Market Street, Springfield",
	})
	require.NoError(t, db.Create(u).Error)
	return u
}

func createMenuItem(t *testing.T, db *gorm.DB, vendorID uint, name string, price float64) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{
		VendorID:  vendorID,
		Name:      name,
		Price:     price,
		Category:  "Mains",
		Available: true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

// placeOrder creates an order for one unit of each given item.
func placeOrder(t *testing.T, svc *OrderService, userID, vendorID uint, items ...OrderItemIn) *entity.Order {
	t.Helper()
	order, err := svc.Create(userID, &CreateOrderReq{
		VendorID:        vendorID,
		Items:           items,
		DeliveryAddress: "221B Baker Street, London",
	})
	require.NoError(t, err)
	return order
}

func setStatus(t *testing.T, db *gorm.DB, orderID uint, status string) {
	t.Helper()
	require.NoError(t, db.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error)
}
