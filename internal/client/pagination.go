package client

// PageSize is the fixed number of orders shown per list page.
const PageSize = 5

// PreviewTotal computes the client-side display total for a draft order.
// The server recomputes the persisted total independently; this value is
// for preview only.
func PreviewTotal(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

// Paginate returns the 1-based page of orders: page k holds the orders at
// indices [PageSize*(k-1), min(PageSize*k, len(orders))). An out-of-range
// page yields an empty slice.
func Paginate(orders []Order, page int) []Order {
	if page < 1 {
		return []Order{}
	}

	start := PageSize * (page - 1)
	if start >= len(orders) {
		return []Order{}
	}

	end := start + PageSize
	if end > len(orders) {
		end = len(orders)
	}

	return orders[start:end]
}

// TotalPages returns the number of pages needed for n orders; an empty list
// still has one (empty) page.
func TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}
