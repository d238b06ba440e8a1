package repository

import (
	"strings"

	"github.com/nitishmehan/Eatsy/entity"

	"gorm.io/gorm"
)

type BlogRepository struct {
	DB *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{DB: db}
}

func (r *BlogRepository) Create(blog *entity.Blog) error {
	return r.DB.Create(blog).Error
}

func (r *BlogRepository) Get(blogID uint) (*entity.Blog, error) {
	var blog entity.Blog
	if err := r.DB.Preload("Comments").First(&blog, blogID).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// GetForAuthor loads a post only when the caller wrote it.
func (r *BlogRepository) GetForAuthor(userID, blogID uint) (*entity.Blog, error) {
	var blog entity.Blog
	err := r.DB.Where("id = ? AND user_id = ?", blogID, userID).First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) Save(blog *entity.Blog) error {
	return r.DB.Save(blog).Error
}

func (r *BlogRepository) DeleteForAuthor(userID, blogID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", blogID, userID).Delete(&entity.Blog{})
	return res.RowsAffected, res.Error
}

// List returns posts newest first, optionally narrowed by category or a
// text search over title/content/tags.
func (r *BlogRepository) List(category, search string, limit, offset int) ([]entity.Blog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	db := r.DB.Model(&entity.Blog{})
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(tags) LIKE ?",
			like, like, like)
	}
	var blogs []entity.Blog
	err := db.Order("id DESC").Limit(limit).Offset(offset).Find(&blogs).Error
	return blogs, err
}

func (r *BlogRepository) ListForAuthor(userID uint) ([]entity.Blog, error) {
	var blogs []entity.Blog
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&blogs).Error
	return blogs, err
}

func (r *BlogRepository) AddComment(comment *entity.BlogComment) error {
	return r.DB.Create(comment).Error
}

func (r *BlogRepository) FindLike(blogID, userID uint) (*entity.BlogLike, error) {
	var like entity.BlogLike
	err := r.DB.Where("blog_id = ? AND user_id = ?", blogID, userID).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *BlogRepository) CreateLike(like *entity.BlogLike) error {
	return r.DB.Create(like).Error
}

// DeleteLike removes the row permanently so a re-like can insert again
// without tripping the unique index on soft-deleted rows.
func (r *BlogRepository) DeleteLike(blogID, userID uint) error {
	return r.DB.Unscoped().
		Where("blog_id = ? AND user_id = ?", blogID, userID).
		Delete(&entity.BlogLike{}).Error
}

func (r *BlogRepository) CountLikes(blogID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.BlogLike{}).Where("blog_id = ?", blogID).Count(&count).Error
	return count, err
}
