package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nitishmehan/Eatsy/entity"
	"github.com/nitishmehan/Eatsy/repository"

	"gorm.io/gorm"
)

// DeliveryFee is the fixed charge added to every order total.
const DeliveryFee = 29.0

// MinAddressLen is the shortest delivery address accepted at checkout.
const MinAddressLen = 10

// OrderEvent is pushed to the owning vendor's live feed.
type OrderEvent struct {
	Type    string  `json:"type"` // order_created | status_changed
	OrderID uint    `json:"orderId"`
	Status  string  `json:"status"`
	Total   float64 `json:"total,omitempty"`
}

// OrderEventPublisher delivers order events to subscribed vendors. A nil
// publisher disables the feed.
type OrderEventPublisher interface {
	Publish(vendorID uint, ev OrderEvent)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	UserRepo *repository.UserRepository

	Events OrderEventPublisher
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, UserRepo: userRepo}
}

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}

type CreateOrderReq struct {
	VendorID        uint          `json:"vendorId"`
	Items           []OrderItemIn `json:"items"`
	DeliveryAddress string        `json:"deliveryAddress"`
	PaymentMethod   string        `json:"paymentMethod"`
}

// Create places an order: validates the input, prices the items from the
// live menu, and persists the order with a by-value item snapshot in one
// transaction. Initial status is always pending.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items is required", ErrValidation)
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", ErrValidation)
		}
	}
	address := strings.TrimSpace(req.DeliveryAddress)
	if len(address) < MinAddressLen {
		return nil, fmt.Errorf("%w: delivery address is too short", ErrValidation)
	}
	payment := req.PaymentMethod
	if payment == "" {
		payment = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(payment) {
		return nil, fmt.Errorf("%w: unknown payment method", ErrValidation)
	}

	if _, err := s.UserRepo.FindVendorByID(req.VendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: restaurant", ErrNotFound)
		}
		return nil, err
	}

	ids := make([]uint, 0, len(req.Items))
	for _, it := range req.Items {
		ids = append(ids, it.MenuItemID)
	}
	menus, err := s.MenuRepo.GetBasics(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]entity.MenuItem, len(menus))
	for _, m := range menus {
		byID[m.ID] = m
	}

	var total float64
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		m, ok := byID[it.MenuItemID]
		if !ok {
			return nil, fmt.Errorf("%w: menu item", ErrNotFound)
		}
		if m.VendorID != req.VendorID {
			return nil, fmt.Errorf("%w: menu item not from this restaurant", ErrValidation)
		}
		total += m.Price * float64(it.Quantity)
		items = append(items, entity.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			Price:      m.Price,
			Quantity:   it.Quantity,
		})
	}
	total += DeliveryFee

	order := entity.Order{
		UserID:          userID,
		VendorID:        req.VendorID,
		Status:          entity.StatusPending,
		Total:           total,
		DeliveryAddress: address,
		PaymentMethod:   payment,
		Items:           items,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &order)
	})
	if err != nil {
		return nil, err
	}

	if s.Events != nil {
		s.Events.Publish(order.VendorID, OrderEvent{
			Type:    "order_created",
			OrderID: order.ID,
			Status:  order.Status,
			Total:   order.Total,
		})
	}
	return &order, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListForUser(userID, limit)
}

// DetailForUser returns the order with its items, owner only.
func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}
	if o.UserID != userID {
		return nil, fmt.Errorf("%w: not your order", ErrForbidden)
	}
	return o, nil
}

// ListForVendor returns the vendor's queue, optionally narrowed by status.
func (s *OrderService) ListForVendor(vendorID uint, status string, limit int) ([]repository.OrderSummary, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status", ErrValidation)
	}
	return s.Repo.ListForVendor(vendorID, status, limit)
}

func (s *OrderService) DetailForVendor(vendorID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}
	if o.VendorID != vendorID {
		return nil, fmt.Errorf("%w: not your order", ErrForbidden)
	}
	return o, nil
}
