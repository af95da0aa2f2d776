package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"order-desk/internal/client"
	"order-desk/internal/events"
	"order-desk/internal/handler"
	"order-desk/internal/repository"
	"order-desk/internal/router"
	"order-desk/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full stack against the test database and serves it
// over a real listener so the HTTP client package can be exercised end to end.
func newTestServer(t *testing.T, testDB *TestDB) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()
	repo := repository.NewOrderRepository(testDB.Pool, logger)
	svc := service.NewOrderService(repo, events.NewNopPublisher(), logger)
	h := handler.NewOrderHandler(svc, logger)

	server := httptest.NewServer(router.New(h, []string{"*"}, logger))
	t.Cleanup(server.Close)
	return server
}

func TestOrdersAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := newTestServer(t, testDB)
	api := client.New(server.URL)

	ctx := context.Background()

	t.Run("Create then fetch returns the same record", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := api.CreateOrder(ctx, client.OrderInput{
			Customer: "Jane",
			Items: []client.Item{
				{ItemName: "Widget", Quantity: 3, Price: 10},
				{ItemName: "Bolt", Quantity: 2, Price: 2.5},
			},
		})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, "Jane", created.Customer)
		assert.Equal(t, 35.0, created.Total)

		fetched, err := api.GetOrder(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, created.Customer, fetched.Customer)
		assert.Equal(t, created.Total, fetched.Total)
		assert.Equal(t, created.Items, fetched.Items)
	})

	t.Run("Server recomputes the total from items", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		// The request carries no total field at all; the persisted value
		// must come from the items alone.
		created, err := api.CreateOrder(ctx, client.OrderInput{
			Customer: "Omar",
			Items:    []client.Item{{ItemName: "Nut", Quantity: 4, Price: 0.25}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1.0, created.Total)
	})

	t.Run("List returns all created orders", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		for _, name := range []string{"Jane", "Omar", "Priya"} {
			_, err := api.CreateOrder(ctx, client.OrderInput{Customer: name})
			require.NoError(t, err)
		}

		orders, err := api.FetchOrders(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 3)
	})

	t.Run("Create rejects a missing customer name", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		_, err := api.CreateOrder(ctx, client.OrderInput{})

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Customer name is required", apiErr.Message)

		orders, err := api.FetchOrders(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("Update replaces items and recomputes the total", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := api.CreateOrder(ctx, client.OrderInput{
			Customer: "Jane",
			Items:    []client.Item{{ItemName: "Widget", Quantity: 3, Price: 10}},
		})
		require.NoError(t, err)

		updated, err := api.UpdateOrder(ctx, created.ID, client.OrderInput{
			Customer: "Jane D.",
			Items:    []client.Item{{ItemName: "Bolt", Quantity: 4, Price: 5}},
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Jane D.", updated.Customer)
		assert.Equal(t, 20.0, updated.Total)
	})

	t.Run("Update of a missing order is a 404 and creates nothing", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		_, err := api.UpdateOrder(ctx, uuid.NewString(), client.OrderInput{
			Customer: "Nobody",
			Items:    []client.Item{{ItemName: "Widget", Quantity: 1, Price: 1}},
		})

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Order not found", apiErr.Message)

		orders, err := api.FetchOrders(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("Delete then fetch is a 404", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := api.CreateOrder(ctx, client.OrderInput{Customer: "Jane"})
		require.NoError(t, err)

		require.NoError(t, api.DeleteOrder(ctx, created.ID))

		_, err = api.GetOrder(ctx, created.ID)

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Order not found", apiErr.Message)
	})

	t.Run("Delete of a missing order is a 404", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		err := api.DeleteOrder(ctx, uuid.NewString())

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("Unknown route reports path and method", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/nope")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
