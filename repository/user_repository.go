package repository

import (
	"github.com/nitishmehan/Eatsy/entity"

	"gorm.io/gorm"
)

// UserRepository owns all queries against the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

// FindVendorByID returns the user only when it is a vendor account.
func (r *UserRepository) FindVendorByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.DB.Where("id = ? AND role = ?", id, entity.RoleVendor).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
