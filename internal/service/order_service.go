package service

import (
	"context"
	"fmt"
	"time"

	"order-desk/internal/events"
	"order-desk/internal/model"
	"order-desk/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	repo      repository.OrderRepository
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, publisher events.Publisher, logger zerolog.Logger) OrderService {
	return &orderService{
		repo:      repo,
		publisher: publisher,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Create validates the request, computes the total and persists a new order.
// The total is always recomputed from the items; whatever the client may
// have computed for display is never trusted.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid order request")
		return nil, err
	}

	items := req.LineItems()
	order := &model.Order{
		ID:           uuid.New(),
		CustomerName: req.CustomerName,
		OrderDate:    time.Now().UTC(),
		Items:        items,
		TotalPrice:   model.TotalPrice(items),
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(order.Items)).
		Float64("total_price", order.TotalPrice).
		Msg("order created")

	s.publish(ctx, events.ActionCreated, order)

	return order, nil
}

// List retrieves all orders.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// Get retrieves a single order by ID.
func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// Update replaces customer name and items on an existing order, recomputing
// the total from the submitted items.
func (s *orderService) Update(ctx context.Context, id uuid.UUID, req *model.OrderRequest) (*model.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		s.logger.Warn().Err(err).Str("order_id", id.String()).Msg("invalid order request")
		return nil, err
	}

	items := req.LineItems()
	order, err := s.repo.UpdateByID(ctx, id, req.CustomerName, items, model.TotalPrice(items))
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order")
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Float64("total_price", order.TotalPrice).
		Msg("order updated")

	s.publish(ctx, events.ActionUpdated, order)

	return order, nil
}

// Delete removes an order and returns the deleted record.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order deleted")

	s.publish(ctx, events.ActionDeleted, order)

	return order, nil
}

// publish emits a lifecycle event. Failures are logged and swallowed; the
// write that triggered the event has already been committed.
func (s *orderService) publish(ctx context.Context, action string, order *model.Order) {
	if err := s.publisher.Publish(ctx, action, order); err != nil {
		s.logger.Warn().
			Err(err).
			Str("action", action).
			Str("order_id", order.ID.String()).
			Msg("failed to publish order event")
	}
}

// validateOrderRequest enforces the required-field rules on write paths:
// non-empty customer name and, per item, non-empty name, quantity of at
// least 1 and non-negative price. An order with zero items is accepted.
func validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return fmt.Errorf("order request is nil")
	}

	if req.CustomerName == "" {
		return model.ErrCustomerNameMissing
	}

	for _, item := range req.Items {
		if item.ItemName == "" {
			return model.ErrItemNameMissing
		}
		if item.Quantity < 1 {
			return model.ErrInvalidQuantity
		}
		if item.Price < 0 {
			return model.ErrInvalidPrice
		}
	}

	return nil
}
