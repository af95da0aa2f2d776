package model

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a customer order as persisted and as served on the wire.
// The identifier is exposed as "_id" for compatibility with existing clients.
type Order struct {
	ID           uuid.UUID  `json:"_id" db:"id"`
	CustomerName string     `json:"customerName" db:"customer_name"`
	OrderDate    time.Time  `json:"orderDate" db:"order_date"`
	Items        []LineItem `json:"items" db:"-"`
	TotalPrice   float64    `json:"totalPrice" db:"total_price"`
}

// LineItem represents a named quantity/price pair within an order. Items
// have no identity beyond their position in the order.
type LineItem struct {
	ItemName string  `json:"itemName" db:"item_name"`
	Quantity int     `json:"quantity" db:"quantity"`
	Price    float64 `json:"price" db:"price"`
}

// OrderRequest represents the request payload for creating or updating an
// order. A client-sent totalPrice is deliberately absent: the server always
// recomputes the total from the items.
type OrderRequest struct {
	CustomerName string            `json:"customerName"`
	Items        []LineItemRequest `json:"items"`
}

// LineItemRequest represents a single item in an order request.
type LineItemRequest struct {
	ItemName string  `json:"itemName"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// TotalPrice computes the authoritative order total as the sum of quantity
// times price over all items. Every persisted total comes from this function.
func TotalPrice(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

// LineItems converts request items into order line items, preserving order.
func (r *OrderRequest) LineItems() []LineItem {
	items := make([]LineItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = LineItem{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return items
}
