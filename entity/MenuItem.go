package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	VendorID uint `gorm:"not null;index:idx_vendor_available" json:"vendorId"`
	Vendor   User `gorm:"foreignKey:VendorID" json:"-"`

	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `gorm:"not null;index" json:"category"`
	Dietary     string  `json:"-"` // comma-joined tags
	Available   bool    `gorm:"index:idx_vendor_available" json:"available"`

	PreparationTime int `json:"preparationTime,omitempty"` // minutes

	OrderItems []OrderItem `gorm:"foreignKey:MenuItemID" json:"-"`
}

func (m *MenuItem) DietaryList() []string {
	return SplitTags(m.Dietary)
}
