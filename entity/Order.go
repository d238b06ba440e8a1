package entity

import (
	"gorm.io/gorm"
)

// Order statuses. The only legal moves are
// pending → confirmed → preparing → out-for-delivery → delivered
// and pending → cancelled. Delivered and cancelled are terminal.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Payment methods recorded on an order.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	UserID uint `gorm:"not null;index:idx_orders_user" json:"userId"`
	User   User `json:"-"`

	VendorID uint `gorm:"not null;index:idx_orders_vendor_status" json:"vendorId"`
	Vendor   User `gorm:"foreignKey:VendorID" json:"-"`

	Status          string  `gorm:"not null;default:pending;index:idx_orders_vendor_status" json:"status"`
	Total           float64 `gorm:"not null" json:"total"`
	DeliveryAddress string  `gorm:"not null" json:"deliveryAddress"`
	PaymentMethod   string  `gorm:"not null;default:cash" json:"paymentMethod"`

	Items   []OrderItem `json:"items,omitempty"`
	Reviews []Review    `json:"-"`
}

// OrderItem is a by-value snapshot of a menu item at checkout time; later
// menu edits never change it.
type OrderItem struct {
	gorm.Model
	OrderID uint `gorm:"not null;index" json:"orderId"`

	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}
