package entity

import (
	"gorm.io/gorm"
)

var BlogCategories = []string{
	"Food Review",
	"Recipe",
	"Restaurant Experience",
	"Tips & Tricks",
	"Other",
}

func ValidBlogCategory(c string) bool {
	for _, v := range BlogCategories {
		if v == c {
			return true
		}
	}
	return false
}

type Blog struct {
	gorm.Model
	UserID uint `gorm:"not null;index:idx_blogs_user" json:"userId"`
	User   User `json:"-"`

	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"not null" json:"content"`
	Image    string `json:"image,omitempty"`
	Category string `gorm:"not null;default:Other;index" json:"category"`
	Tags     string `json:"-"` // comma-joined

	Comments []BlogComment `json:"comments,omitempty"`
	Likes    []BlogLike    `json:"-"`
}

func (b *Blog) TagList() []string {
	return SplitTags(b.Tags)
}

type BlogComment struct {
	gorm.Model
	BlogID  uint   `gorm:"not null;index" json:"blogId"`
	UserID  uint   `gorm:"not null" json:"userId"`
	Comment string `gorm:"not null" json:"comment"`
}

// BlogLike is one user's like on one post; the unique index makes the like
// toggle idempotent under double-submits.
type BlogLike struct {
	gorm.Model
	BlogID uint `gorm:"not null;uniqueIndex:uniq_blog_user" json:"blogId"`
	UserID uint `gorm:"not null;uniqueIndex:uniq_blog_user" json:"userId"`
}
