package service

import (
	"context"

	"order-desk/internal/model"

	"github.com/google/uuid"
)

// OrderService defines operations for the order lifecycle.
type OrderService interface {
	// Create validates the request, computes the total and persists a new order.
	Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// List retrieves all orders.
	List(ctx context.Context) ([]model.Order, error)

	// Get retrieves a single order by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// Update replaces customer name and items on an existing order,
	// recomputing the total.
	Update(ctx context.Context, id uuid.UUID, req *model.OrderRequest) (*model.Order, error)

	// Delete removes an order and returns the deleted record.
	Delete(ctx context.Context, id uuid.UUID) (*model.Order, error)
}
