// Command seed creates fake orders through the API for demos and local
// development.
package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"order-desk/internal/client"

	"github.com/brianvoe/gofakeit/v7"
)

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	apiURL := env("ORDERS_API_URL", "http://localhost:3000")
	count := envInt("SEED_COUNT", 10)
	gapMS := envInt("SEED_INTERVAL_MS", 0)

	log.Printf("api=%s count=%d", apiURL, count)

	c := client.New(apiURL)
	ctx := context.Background()

	for i := 0; i < count; i++ {
		order, err := c.CreateOrder(ctx, fakeOrder())
		if err != nil {
			log.Fatalf("create order: %v", err)
		}
		log.Printf("created id=%s customer=%q total=%.2f", order.ID, order.Customer, order.Total)
		if gapMS > 0 {
			time.Sleep(time.Duration(gapMS) * time.Millisecond)
		}
	}

	log.Printf("seeded %d order(s)", count)
}

func fakeOrder() client.OrderInput {
	items := make([]client.Item, gofakeit.Number(1, 4))
	for i := range items {
		items[i] = client.Item{
			ItemName: gofakeit.ProductName(),
			Quantity: gofakeit.Number(1, 5),
			Price:    gofakeit.Price(1, 500),
		}
	}
	return client.OrderInput{
		Customer: gofakeit.Name(),
		Items:    items,
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
