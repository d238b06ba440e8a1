package services

import (
	"testing"

	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVendorService(db *gorm.DB) *VendorService {
	return NewVendorService(
		repository.NewUserRepository(db),
		repository.NewOrderRepository(db),
		repository.NewReviewRepository(db),
		repository.NewMenuRepository(db),
	)
}

func TestUpdateRestaurantValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newVendorService(db)
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")

	valid := entity.Restaurant{
		Name:              "Spice Villa",
		Cuisine:           []string{"Indian"},
		PriceRange:        entity.PriceRangeUnder100,
		EstimatedDelivery: 25,
		Address:           "12 Market Street, Springfield",
	}

	for name, mutate := range map[string]func(r *entity.Restaurant){
		"empty name":      func(r *entity.Restaurant) { r.Name = " " },
		"no cuisine":      func(r *entity.Restaurant) { r.Cuisine = nil },
		"no address":      func(r *entity.Restaurant) { r.Address = "" },
		"zero delivery":   func(r *entity.Restaurant) { r.EstimatedDelivery = 0 },
		"bad price range": func(r *entity.Restaurant) { r.PriceRange = "$$$$" },
	} {
		t.Run(name, func(t *testing.T) {
			r := valid
			mutate(&r)
			_, err := svc.UpdateRestaurant(vendor.ID, r)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	updated, err := svc.UpdateRestaurant(vendor.ID, valid)
	require.NoError(t, err)
	assert.Equal(t, entity.PriceRangeUnder100, updated.PriceRange)
	assert.Equal(t, 25, updated.EstimatedDelivery)
}

func TestSetOpenControlsListing(t *testing.T) {
	db := newTestDB(t)
	svc := newVendorService(db)
	restSvc := newRestaurantService(db)
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")

	require.NoError(t, svc.SetOpen(vendor.ID, false))
	got, err := restSvc.Query(RestaurantFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, svc.SetOpen(vendor.ID, true))
	got, err = restSvc.Query(RestaurantFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDashboardRevenueCountsDeliveredOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newVendorService(db)
	orderSvc := newOrderService(db)

	customer := createCustomer(t, db, "c@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	item := createMenuItem(t, db, vendor.ID, "Biryani", 100)

	delivered := placeOrder(t, orderSvc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 2}) // 229
	setStatus(t, db, delivered.ID, entity.StatusDelivered)
	placeOrder(t, orderSvc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1}) // pending
	cancelled := placeOrder(t, orderSvc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
	setStatus(t, db, cancelled.ID, entity.StatusCancelled)

	seedReview(t, db, customer.ID, vendor.ID, delivered.ID, 4)

	dash, err := svc.GetDashboard(vendor.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, dash.TotalOrders)
	assert.Equal(t, 229.0, dash.Revenue)
	assert.Equal(t, 4.0, dash.AvgRating)
	assert.EqualValues(t, 1, dash.ReviewCount)
	assert.EqualValues(t, 1, dash.MenuItems)

	byStatus := map[string]int64{}
	for _, sc := range dash.OrdersByStatus {
		byStatus[sc.Status] = sc.Count
	}
	assert.EqualValues(t, 1, byStatus[entity.StatusDelivered])
	assert.EqualValues(t, 1, byStatus[entity.StatusPending])
	assert.EqualValues(t, 1, byStatus[entity.StatusCancelled])
}

func TestDashboardEmptyVendor(t *testing.T) {
	db := newTestDB(t)
	svc := newVendorService(db)
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")

	dash, err := svc.GetDashboard(vendor.ID)
	require.NoError(t, err)
	assert.Zero(t, dash.TotalOrders)
	assert.Zero(t, dash.Revenue)
	assert.Zero(t, dash.AvgRating)
	assert.Zero(t, dash.MenuItems)
}
