package repository

import (
	"context"

	"order-desk/internal/model"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order data access operations.
// Implementations own their transactions: multi-statement writes either
// fully apply or fully roll back.
type OrderRepository interface {
	// Insert persists a fully-populated order together with its items.
	Insert(ctx context.Context, order *model.Order) error

	// GetAll retrieves all orders with their items in storage order.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves a single order by its ID. A missing order is
	// reported as (nil, nil).
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// UpdateByID replaces customer name, items and total on the matching
	// order and returns the post-update record, or (nil, nil) when the id
	// does not exist.
	UpdateByID(ctx context.Context, id uuid.UUID, customerName string, items []model.LineItem, totalPrice float64) (*model.Order, error)

	// DeleteByID removes the matching order and returns the record that was
	// deleted, or (nil, nil) when the id does not exist.
	DeleteByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
}
