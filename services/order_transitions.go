package services

import (
	"errors"
	"fmt"

	"github.com/nitishmehan/Eatsy/entity"

	"gorm.io/gorm"
)

// successor lists the only forward move out of each non-terminal status.
// Cancellation is the single side branch, reachable from pending alone.
var successor = map[string]string{
	entity.StatusPending:        entity.StatusConfirmed,
	entity.StatusConfirmed:      entity.StatusPreparing,
	entity.StatusPreparing:      entity.StatusOutForDelivery,
	entity.StatusOutForDelivery: entity.StatusDelivered,
}

func legalMove(from, to string) bool {
	if from == entity.StatusPending && to == entity.StatusCancelled {
		return true
	}
	return successor[from] == to
}

// Transition moves an order along the status pipeline. Only the order's
// vendor may act, stages cannot be skipped, and the status update is
// guarded on the expected source status so the loser of a concurrent
// transition fails instead of overwriting.
func (s *OrderService) Transition(vendorID, orderID uint, to string) (*entity.Order, error) {
	if !entity.ValidStatus(to) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, to)
	}

	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}
	if o.VendorID != vendorID {
		return nil, fmt.Errorf("%w: not your order", ErrForbidden)
	}
	if !legalMove(o.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}

	ok, err := s.Repo.UpdateStatusFromTo(o.ID, o.Status, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Another request moved the order first.
		return nil, fmt.Errorf("%w: order status changed concurrently", ErrInvalidTransition)
	}
	o.Status = to

	if s.Events != nil {
		s.Events.Publish(o.VendorID, OrderEvent{
			Type:    "status_changed",
			OrderID: o.ID,
			Status:  o.Status,
		})
	}
	return o, nil
}
