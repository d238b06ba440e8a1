package services

import (
	"testing"

	"github.com/nitishmehan/Eatsy/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	customer := createCustomer(t, db, "c@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	biryani := createMenuItem(t, db, vendor.ID, "Biryani", 100)
	lassi := createMenuItem(t, db, vendor.ID, "Lassi", 50)

	order := placeOrder(t, svc, customer.ID, vendor.ID,
		OrderItemIn{MenuItemID: biryani.ID, Quantity: 2},
		OrderItemIn{MenuItemID: lassi.ID, Quantity: 1},
	)

	// 100*2 + 50*1 + 29 delivery fee
	assert.Equal(t, 279.0, order.Total)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Len(t, order.Items, 2)
}

func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	customer := createCustomer(t, db, "c@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	item := createMenuItem(t, db, vendor.ID, "Biryani", 100)

	cases := []struct {
		name string
		req  CreateOrderReq
	}{
		{"empty items", CreateOrderReq{
			VendorID:        vendor.ID,
			DeliveryAddress: "221B Baker Street, London",
		}},
		{"zero quantity", CreateOrderReq{
			VendorID:        vendor.ID,
			Items:           []OrderItemIn{{MenuItemID: item.ID, Quantity: 0}},
			DeliveryAddress: "221B Baker Street, London",
		}},
		{"negative quantity", CreateOrderReq{
			VendorID:        vendor.ID,
			Items:           []OrderItemIn{{MenuItemID: item.ID, Quantity: -1}},
			DeliveryAddress: "221B Baker Street, London",
		}},
		{"short address", CreateOrderReq{
			VendorID:        vendor.ID,
			Items:           []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
			DeliveryAddress: "nowhere",
		}},
		{"unknown payment method", CreateOrderReq{
			VendorID:        vendor.ID,
			Items:           []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
			DeliveryAddress: "221B Baker Street, London",
			PaymentMethod:   "cheque",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(customer.ID, &tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreateOrderUnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	customer := createCustomer(t, db, "c@example.com")

	_, err := svc.Create(customer.ID, &CreateOrderReq{
		VendorID:        9999,
		Items:           []OrderItemIn{{MenuItemID: 1, Quantity: 1}},
		DeliveryAddress: "221B Baker Street, London",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrderForeignMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	customer := createCustomer(t, db, "c@example.com")
	vendorA := createVendor(t, db, "a@example.com", "Spice Villa")
	vendorB := createVendor(t, db, "b@example.com", "Pasta Point")
	foreign := createMenuItem(t, db, vendorB.ID, "Carbonara", 200)

	_, err := svc.Create(customer.ID, &CreateOrderReq{
		VendorID:        vendorA.ID,
		Items:           []OrderItemIn{{MenuItemID: foreign.ID, Quantity: 1}},
		DeliveryAddress: "221B Baker Street, London",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOrderSnapshotSurvivesMenuEdits(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	customer := createCustomer(t, db, "c@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	item := createMenuItem(t, db, vendor.ID, "Biryani", 100)

	order := placeOrder(t, svc, customer.ID, vendor.ID,
		OrderItemIn{MenuItemID: item.ID, Quantity: 1})

	// Rename and reprice the menu item after checkout.
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Updates(map[string]any{"name": "Hyderabadi Biryani", "price": 250.0}).Error)

	got, err := svc.DetailForUser(customer.ID, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Biryani", got.Items[0].Name)
	assert.Equal(t, 100.0, got.Items[0].Price)
	assert.Equal(t, 129.0, got.Total)
}

func TestListForUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	customer := createCustomer(t, db, "c@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	item := createMenuItem(t, db, vendor.ID, "Biryani", 100)

	first := placeOrder(t, svc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
	second := placeOrder(t, svc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 2})

	orders, err := svc.ListForUser(customer.ID, 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestDetailForUserForeignOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	owner := createCustomer(t, db, "owner@example.com")
	other := createCustomer(t, db, "other@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	item := createMenuItem(t, db, vendor.ID, "Biryani", 100)

	order := placeOrder(t, svc, owner.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})

	_, err := svc.DetailForUser(other.ID, order.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListForVendorStatusFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	customer := createCustomer(t, db, "c@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	item := createMenuItem(t, db, vendor.ID, "Biryani", 100)

	a := placeOrder(t, svc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
	placeOrder(t, svc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
	setStatus(t, db, a.ID, entity.StatusConfirmed)

	confirmed, err := svc.ListForVendor(vendor.ID, entity.StatusConfirmed, 0)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, a.ID, confirmed[0].ID)

	_, err = svc.ListForVendor(vendor.ID, "shipped", 0)
	assert.ErrorIs(t, err, ErrValidation)
}
