package repository

import (
	"context"
	"errors"
	"fmt"

	"order-desk/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Insert persists a fully-populated order together with its items.
func (r *orderRepository) Insert(ctx context.Context, order *model.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, customer_name, order_date, total_price)
		VALUES ($1, $2, $3, $4)
	`, order.ID, order.CustomerName, order.OrderDate, order.TotalPrice)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if err := insertItems(ctx, tx, order.ID, order.Items); err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to insert order items")
		return fmt.Errorf("failed to insert order items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Int("item_count", len(order.Items)).
		Msg("order inserted")

	return nil
}

// GetAll retrieves all orders with their items in storage order.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_name, order_date, total_price
		FROM orders
		ORDER BY order_date, id
	`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.OrderDate, &o.TotalPrice); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.Items = []model.LineItem{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.pool.Query(ctx, `
		SELECT order_id, item_name, quantity, price
		FROM order_items
		ORDER BY order_id, position
	`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID uuid.UUID
		var item model.LineItem
		if err := itemRows.Scan(&orderID, &item.ItemName, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return orders, nil
}

// GetByID retrieves a single order by its ID.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_name, order_date, total_price
		FROM orders
		WHERE id = $1
	`, id).Scan(&order.ID, &order.CustomerName, &order.OrderDate, &order.TotalPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	items, err := r.loadItems(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

// UpdateByID replaces customer name, items and total on the matching order.
func (r *orderRepository) UpdateByID(ctx context.Context, id uuid.UUID, customerName string, items []model.LineItem, totalPrice float64) (*model.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var order model.Order
	err = tx.QueryRow(ctx, `
		UPDATE orders
		SET customer_name = $2, total_price = $3
		WHERE id = $1
		RETURNING id, customer_name, order_date, total_price
	`, id, customerName, totalPrice).Scan(&order.ID, &order.CustomerName, &order.OrderDate, &order.TotalPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order")
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to clear order items: %w", err)
	}

	if err := insertItems(ctx, tx, id, items); err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Msg("failed to replace order items")
		return nil, fmt.Errorf("failed to replace order items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	order.Items = items
	if order.Items == nil {
		order.Items = []model.LineItem{}
	}

	r.logger.Debug().
		Str("order_id", id.String()).
		Int("item_count", len(items)).
		Msg("order updated")

	return &order, nil
}

// DeleteByID removes the matching order and returns the deleted record. The
// item read and the delete share one transaction so the returned payload
// matches what was actually removed.
func (r *orderRepository) DeleteByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	items, err := r.loadItems(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	var order model.Order
	err = tx.QueryRow(ctx, `
		DELETE FROM orders
		WHERE id = $1
		RETURNING id, customer_name, order_date, total_price
	`, id).Scan(&order.ID, &order.CustomerName, &order.OrderDate, &order.TotalPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}
	order.Items = items

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Debug().Str("order_id", id.String()).Msg("order deleted")

	return &order, nil
}

// querier is the query surface shared by the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// loadItems fetches the line items of one order in insertion order.
func (r *orderRepository) loadItems(ctx context.Context, q querier, orderID uuid.UUID) ([]model.LineItem, error) {
	rows, err := q.Query(ctx, `
		SELECT item_name, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`, orderID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", orderID.String()).
			Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	items := []model.LineItem{}
	for rows.Next() {
		var item model.LineItem
		if err := rows.Scan(&item.ItemName, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}

// insertItems batch-inserts line items for an order within a transaction.
// The position column preserves the submitted item order.
func insertItems(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, items []model.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, item := range items {
		batch.Queue(`
			INSERT INTO order_items (order_id, position, item_name, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
		`, orderID, i, item.ItemName, item.Quantity, item.Price)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return nil
}
