package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/repository"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// unknownDelivery makes vendors without an estimate sort last ascending.
const unknownDelivery = 999

// RestaurantService joins open vendors with their aggregated ratings for
// the public listing and detail pages.
type RestaurantService struct {
	Repo       *repository.RestaurantRepository
	ReviewRepo *repository.ReviewRepository
	MenuRepo   *repository.MenuRepository

	collator *collate.Collator
}

func NewRestaurantService(
	repo *repository.RestaurantRepository,
	reviewRepo *repository.ReviewRepository,
	menuRepo *repository.MenuRepository,
) *RestaurantService {
	return &RestaurantService{
		Repo:       repo,
		ReviewRepo: reviewRepo,
		MenuRepo:   menuRepo,
		collator:   collate.New(language.English, collate.IgnoreCase),
	}
}

type RestaurantFilter struct {
	Cuisine    string
	PriceRange string
	MinRating  *float64
	Search     string
	SortBy     string // rating | deliveryTime | name
	SortOrder  string // asc | desc
}

// RestaurantSummary is one listing row.
type RestaurantSummary struct {
	ID                uint     `json:"id"`
	RestaurantName    string   `json:"restaurantName"`
	RestaurantImage   string   `json:"restaurantImage,omitempty"`
	Cuisine           []string `json:"cuisine"`
	PriceRange        string   `json:"priceRange"`
	EstimatedDelivery int      `json:"estimatedDelivery,omitempty"`
	Address           string   `json:"address"`
	IsOpen            bool     `json:"isOpen"`
	AvgRating         float64  `json:"avgRating"`
	ReviewCount       int64    `json:"reviewCount"`
}

// Query runs the filter/sort pipeline: select open vendors narrowed by the
// predicates, merge in per-vendor rating aggregates (zero when unreviewed),
// apply the inclusive minRating cut, then stable-sort. Descending order
// flips the comparator sign, so ties keep their relative order either way.
func (s *RestaurantService) Query(f RestaurantFilter) ([]RestaurantSummary, error) {
	if f.PriceRange != "" && !entity.ValidPriceRange(f.PriceRange) {
		return nil, fmt.Errorf("%w: invalid price range", ErrValidation)
	}

	vendors, err := s.Repo.FindOpenVendors(f.PriceRange, f.Search)
	if err != nil {
		return nil, err
	}

	if f.Cuisine != "" {
		kept := vendors[:0]
		for _, v := range vendors {
			for _, c := range v.CuisineList() {
				if c == f.Cuisine {
					kept = append(kept, v)
					break
				}
			}
		}
		vendors = kept
	}

	ids := make([]uint, 0, len(vendors))
	for _, v := range vendors {
		ids = append(ids, v.ID)
	}
	ratings, err := s.ReviewRepo.AggregateByVendor(ids)
	if err != nil {
		return nil, err
	}

	out := make([]RestaurantSummary, 0, len(vendors))
	for _, v := range vendors {
		agg := ratings[v.ID] // zero value: avg 0, count 0
		out = append(out, RestaurantSummary{
			ID:                v.ID,
			RestaurantName:    v.RestaurantName,
			RestaurantImage:   v.RestaurantImage,
			Cuisine:           v.CuisineList(),
			PriceRange:        v.PriceRange,
			EstimatedDelivery: v.EstimatedDelivery,
			Address:           v.Address,
			IsOpen:            v.IsOpen,
			AvgRating:         agg.AvgRating,
			ReviewCount:       agg.ReviewCount,
		})
	}

	if f.MinRating != nil {
		kept := out[:0]
		for _, r := range out {
			if r.AvgRating >= *f.MinRating {
				kept = append(kept, r)
			}
		}
		out = kept
	}

	s.sortRestaurants(out, f.SortBy, f.SortOrder)
	return out, nil
}

func (s *RestaurantService) sortRestaurants(list []RestaurantSummary, sortBy, sortOrder string) {
	var cmp func(a, b *RestaurantSummary) int
	switch sortBy {
	case "deliveryTime":
		cmp = func(a, b *RestaurantSummary) int {
			da, db := a.EstimatedDelivery, b.EstimatedDelivery
			if da <= 0 {
				da = unknownDelivery
			}
			if db <= 0 {
				db = unknownDelivery
			}
			return da - db
		}
	case "name":
		cmp = func(a, b *RestaurantSummary) int {
			return s.collator.CompareString(a.RestaurantName, b.RestaurantName)
		}
	case "rating", "":
		cmp = func(a, b *RestaurantSummary) int {
			switch {
			case a.AvgRating < b.AvgRating:
				return -1
			case a.AvgRating > b.AvgRating:
				return 1
			}
			return 0
		}
	default:
		return
	}

	desc := sortOrder == "desc"
	sort.SliceStable(list, func(i, j int) bool {
		c := cmp(&list[i], &list[j])
		if desc {
			c = -c
		}
		return c < 0
	})
}

// RestaurantDetail is the profile page payload.
type RestaurantDetail struct {
	RestaurantSummary
	Phone string `json:"phone,omitempty"`
}

func (s *RestaurantService) Detail(vendorID uint) (*RestaurantDetail, error) {
	var vendor entity.User
	err := s.Repo.DB.Where("id = ? AND role = ?", vendorID, entity.RoleVendor).
		First(&vendor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: restaurant", ErrNotFound)
		}
		return nil, err
	}

	agg, err := s.ReviewRepo.AggregateForVendor(vendorID)
	if err != nil {
		return nil, err
	}

	return &RestaurantDetail{
		RestaurantSummary: RestaurantSummary{
			ID:                vendor.ID,
			RestaurantName:    vendor.RestaurantName,
			RestaurantImage:   vendor.RestaurantImage,
			Cuisine:           vendor.CuisineList(),
			PriceRange:        vendor.PriceRange,
			EstimatedDelivery: vendor.EstimatedDelivery,
			Address:           vendor.Address,
			IsOpen:            vendor.IsOpen,
			AvgRating:         agg.AvgRating,
			ReviewCount:       agg.ReviewCount,
		},
		Phone: vendor.Phone,
	}, nil
}

// Menu lists a restaurant's available items for the public page.
func (s *RestaurantService) Menu(vendorID uint, f repository.MenuFilter) ([]entity.MenuItem, error) {
	if _, err := s.Detail(vendorID); err != nil {
		return nil, err
	}
	return s.MenuRepo.ListAvailable(vendorID, f)
}
