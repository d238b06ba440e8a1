package entity

import (
	"gorm.io/gorm"
)

// Review of one delivered order. The composite unique index on
// (user_id, order_id) is the storage-level guarantee that a pair can never
// produce two reviews, whatever the application layer missed.
type Review struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex:uniq_user_order" json:"userId"`
	User   User `json:"-"`

	VendorID uint `gorm:"not null;index:idx_reviews_vendor" json:"vendorId"`
	Vendor   User `gorm:"foreignKey:VendorID" json:"-"`

	OrderID uint  `gorm:"not null;uniqueIndex:uniq_user_order" json:"orderId"`
	Order   Order `json:"-"`

	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `json:"comment,omitempty"`

	Items []ReviewItem `json:"items,omitempty"`
}

// ReviewItem snapshots what was ordered, copied from the order's items so
// menu renames never rewrite old reviews.
type ReviewItem struct {
	gorm.Model
	ReviewID uint `gorm:"not null;index" json:"reviewId"`

	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}
