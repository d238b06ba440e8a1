package services

import (
	"testing"

	"github.com/nitishmehan/Eatsy/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionHappyPath(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	customer := createCustomer(t, db, "c@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	item := createMenuItem(t, db, vendor.ID, "Biryani", 100)
	order := placeOrder(t, svc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})

	for _, next := range []string{
		entity.StatusConfirmed,
		entity.StatusPreparing,
		entity.StatusOutForDelivery,
		entity.StatusDelivered,
	} {
		got, err := svc.Transition(vendor.ID, order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, got.Status)
	}
}

func TestTransitionCannotSkipStages(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	customer := createCustomer(t, db, "c@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	item := createMenuItem(t, db, vendor.ID, "Biryani", 100)
	order := placeOrder(t, svc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})

	_, err := svc.Transition(vendor.ID, order.ID, entity.StatusConfirmed)
	require.NoError(t, err)

	// confirmed -> delivered skips two stages
	_, err = svc.Transition(vendor.ID, order.ID, entity.StatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionMatrix(t *testing.T) {
	all := []string{
		entity.StatusPending,
		entity.StatusConfirmed,
		entity.StatusPreparing,
		entity.StatusOutForDelivery,
		entity.StatusDelivered,
		entity.StatusCancelled,
	}
	legal := map[[2]string]bool{
		{entity.StatusPending, entity.StatusConfirmed}:        true,
		{entity.StatusPending, entity.StatusCancelled}:        true,
		{entity.StatusConfirmed, entity.StatusPreparing}:      true,
		{entity.StatusPreparing, entity.StatusOutForDelivery}: true,
		{entity.StatusOutForDelivery, entity.StatusDelivered}: true,
	}

	db := newTestDB(t)
	svc := newOrderService(db)
	customer := createCustomer(t, db, "c@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	item := createMenuItem(t, db, vendor.ID, "Biryani", 100)

	for _, from := range all {
		for _, to := range all {
			order := placeOrder(t, svc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
			setStatus(t, db, order.ID, from)

			_, err := svc.Transition(vendor.ID, order.ID, to)
			if legal[[2]string{from, to}] {
				assert.NoError(t, err, "%s -> %s should be allowed", from, to)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s should be rejected", from, to)
			}
		}
	}
}

func TestTransitionWrongVendor(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	customer := createCustomer(t, db, "c@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	intruder := createVendor(t, db, "x@example.com", "Pasta Point")
	item := createMenuItem(t, db, vendor.ID, "Biryani", 100)
	order := placeOrder(t, svc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})

	_, err := svc.Transition(intruder.ID, order.ID, entity.StatusConfirmed)
	assert.ErrorIs(t, err, ErrForbidden)

	// the failed attempt must not have touched the order
	got, err := svc.DetailForVendor(vendor.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got.Status)
}

func TestTransitionUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")

	_, err := svc.Transition(vendor.ID, 4242, entity.StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransitionUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	customer := createCustomer(t, db, "c@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	item := createMenuItem(t, db, vendor.ID, "Biryani", 100)
	order := placeOrder(t, svc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})

	_, err := svc.Transition(vendor.ID, order.ID, "shipped")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCancelOnlyFromPending(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	customer := createCustomer(t, db, "c@example.com")
	vendor := createVendor(t, db, "v@example.com", "Spice Villa")
	item := createMenuItem(t, db, vendor.ID, "Biryani", 100)

	order := placeOrder(t, svc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
	got, err := svc.Transition(vendor.ID, order.ID, entity.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, got.Status)

	order = placeOrder(t, svc, customer.ID, vendor.ID, OrderItemIn{MenuItemID: item.ID, Quantity: 1})
	_, err = svc.Transition(vendor.ID, order.ID, entity.StatusConfirmed)
	require.NoError(t, err)
	_, err = svc.Transition(vendor.ID, order.ID, entity.StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
