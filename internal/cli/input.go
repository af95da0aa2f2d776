package cli

import (
	"fmt"
	"strconv"
	"strings"

	"order-desk/internal/client"
)

// parseItemFlag parses one --item flag of the form "name:quantity:price".
// The item name may itself contain colons; the last two fields are always
// quantity and price.
func parseItemFlag(raw string) (client.Item, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 {
		return client.Item{}, fmt.Errorf("invalid item %q: expected name:quantity:price", raw)
	}

	name := strings.Join(parts[:len(parts)-2], ":")
	qtyRaw := parts[len(parts)-2]
	priceRaw := parts[len(parts)-1]

	quantity, err := strconv.Atoi(strings.TrimSpace(qtyRaw))
	if err != nil {
		return client.Item{}, fmt.Errorf("invalid item %q: quantity %q is not a number", raw, qtyRaw)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(priceRaw), 64)
	if err != nil {
		return client.Item{}, fmt.Errorf("invalid item %q: price %q is not a number", raw, priceRaw)
	}

	return client.Item{
		ItemName: strings.TrimSpace(name),
		Quantity: quantity,
		Price:    price,
	}, nil
}

// buildInput converts the raw flag values into an order input, enforcing the
// same field rules as the server so bad drafts fail before the network call.
func buildInput(customer string, rawItems []string) (client.OrderInput, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return client.OrderInput{}, fmt.Errorf("customer name is required")
	}

	items := make([]client.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, err := parseItemFlag(raw)
		if err != nil {
			return client.OrderInput{}, err
		}
		if item.ItemName == "" {
			return client.OrderInput{}, fmt.Errorf("invalid item %q: item name is required", raw)
		}
		if item.Quantity < 1 {
			return client.OrderInput{}, fmt.Errorf("invalid item %q: quantity must be at least 1", raw)
		}
		if item.Price < 0 {
			return client.OrderInput{}, fmt.Errorf("invalid item %q: price must not be negative", raw)
		}
		items = append(items, item)
	}

	return client.OrderInput{Customer: customer, Items: items}, nil
}
