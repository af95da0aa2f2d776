package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeOrders(n int) []Order {
	orders := make([]Order, n)
	for i := range orders {
		orders[i] = Order{ID: fmt.Sprintf("order-%02d", i)}
	}
	return orders
}

func TestPaginate(t *testing.T) {
	orders := makeOrders(12)

	tests := []struct {
		name    string
		page    int
		wantIDs []string
	}{
		{
			name:    "First page",
			page:    1,
			wantIDs: []string{"order-00", "order-01", "order-02", "order-03", "order-04"},
		},
		{
			name:    "Middle page",
			page:    2,
			wantIDs: []string{"order-05", "order-06", "order-07", "order-08", "order-09"},
		},
		{
			name:    "Short final page",
			page:    3,
			wantIDs: []string{"order-10", "order-11"},
		},
		{
			name:    "Past the end",
			page:    4,
			wantIDs: []string{},
		},
		{
			name:    "Page zero",
			page:    0,
			wantIDs: []string{},
		},
		{
			name:    "Negative page",
			page:    -1,
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(orders, tt.page)
			ids := make([]string, len(page))
			for i, o := range page {
				ids[i] = o.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPaginate_PagesCoverListExactlyOnce(t *testing.T) {
	orders := makeOrders(23)

	var seen []string
	for page := 1; page <= TotalPages(len(orders)); page++ {
		for _, o := range Paginate(orders, page) {
			seen = append(seen, o.ID)
		}
	}

	assert.Len(t, seen, len(orders))
	for i, o := range orders {
		assert.Equal(t, o.ID, seen[i])
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{0, 1},
		{1, 1},
		{5, 1},
		{6, 2},
		{10, 2},
		{11, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d orders", tt.n), func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.n))
		})
	}
}

func TestPreviewTotal(t *testing.T) {
	items := []Item{
		{ItemName: "Widget", Quantity: 3, Price: 10},
		{ItemName: "Bolt", Quantity: 2, Price: 2.5},
	}

	assert.InDelta(t, 35, PreviewTotal(items), 1e-9)
	assert.Zero(t, PreviewTotal(nil))
}
