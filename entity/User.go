package entity

import (
	"strings"

	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
)

// Price range buckets a vendor can declare.
const (
	PriceRangeUnder100 = "under-100"
	PriceRange100To300 = "100-300"
	PriceRange300To500 = "300-500"
	PriceRange500Plus  = "500+"
)

func ValidPriceRange(v string) bool {
	switch v {
	case PriceRangeUnder100, PriceRange100To300, PriceRange300To500, PriceRange500Plus:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Phone    string `json:"phone,omitempty"`
	Role     string `gorm:"not null;index:idx_role_open" json:"role"`

	// Vendor profile. Empty for customers — the constructors below keep it
	// that way instead of a save hook.
	RestaurantName    string `json:"restaurantName,omitempty"`
	RestaurantImage   string `json:"restaurantImage,omitempty"`
	Cuisine           string `gorm:"column:cuisine" json:"-"` // comma-joined set
	PriceRange        string `json:"priceRange,omitempty"`
	IsOpen            bool   `gorm:"index:idx_role_open" json:"isOpen"`
	EstimatedDelivery int    `json:"estimatedDelivery,omitempty"` // minutes, 0 = unknown
	Address           string `json:"address,omitempty"`

	MenuItems []MenuItem `gorm:"foreignKey:VendorID" json:"-"`
	Orders    []Order    `gorm:"foreignKey:UserID" json:"-"`
	Reviews   []Review   `gorm:"foreignKey:UserID" json:"-"`
	Blogs     []Blog     `gorm:"foreignKey:UserID" json:"-"`
}

// NewCustomer builds a customer account. Vendor columns stay zero.
func NewCustomer(email, passwordHash, name, phone string) *User {
	return &User{
		Email:    email,
		Password: passwordHash,
		Name:     name,
		Phone:    phone,
		Role:     RoleCustomer,
	}
}

// NewVendor builds a vendor account with the restaurant defaults applied:
// open by default, 30 min delivery estimate when none is given.
func NewVendor(email, passwordHash, name, phone string, r Restaurant) *User {
	if r.EstimatedDelivery <= 0 {
		r.EstimatedDelivery = 30
	}
	return &User{
		Email:             email,
		Password:          passwordHash,
		Name:              name,
		Phone:             phone,
		Role:              RoleVendor,
		RestaurantName:    r.Name,
		RestaurantImage:   r.Image,
		Cuisine:           JoinTags(r.Cuisine),
		PriceRange:        r.PriceRange,
		IsOpen:            true,
		EstimatedDelivery: r.EstimatedDelivery,
		Address:           r.Address,
	}
}

// Restaurant groups the vendor-only attributes for construction and updates.
type Restaurant struct {
	Name              string   `json:"restaurantName"`
	Image             string   `json:"restaurantImage"`
	Cuisine           []string `json:"cuisine"`
	PriceRange        string   `json:"priceRange"`
	EstimatedDelivery int      `json:"estimatedDelivery"`
	Address           string   `json:"address"`
}

func (u *User) CuisineList() []string {
	return SplitTags(u.Cuisine)
}

// JoinTags / SplitTags store string sets as one comma-joined column.
func JoinTags(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ",")
}

func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
