package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/repository"

	"gorm.io/gorm"
)

// MenuService handles a vendor's menu; every mutation is scoped to the
// owning vendor.
type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuItemInput struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Image           string   `json:"image"`
	Category        string   `json:"category"`
	Dietary         []string `json:"dietary"`
	Available       *bool    `json:"available"`
	PreparationTime int      `json:"preparationTime"`
}

func (in *MenuItemInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: name and category are required", ErrValidation)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	return nil
}

func (s *MenuService) Create(vendorID uint, in MenuItemInput) (*entity.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	item := &entity.MenuItem{
		VendorID:        vendorID,
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		Price:           in.Price,
		Image:           in.Image,
		Category:        strings.TrimSpace(in.Category),
		Dietary:         entity.JoinTags(in.Dietary),
		Available:       available,
		PreparationTime: in.PreparationTime,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Update(vendorID, itemID uint, in MenuItemInput) (*entity.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item, err := s.Repo.GetForVendor(vendorID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item", ErrNotFound)
		}
		return nil, err
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Description = in.Description
	item.Price = in.Price
	item.Category = strings.TrimSpace(in.Category)
	item.Dietary = entity.JoinTags(in.Dietary)
	item.PreparationTime = in.PreparationTime
	if in.Image != "" {
		item.Image = in.Image
	}
	if in.Available != nil {
		item.Available = *in.Available
	}

	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Delete(vendorID, itemID uint) error {
	affected, err := s.Repo.DeleteForVendor(vendorID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: menu item", ErrNotFound)
	}
	return nil
}

func (s *MenuService) ListForVendor(vendorID uint) ([]entity.MenuItem, error) {
	return s.Repo.ListForVendor(vendorID)
}
