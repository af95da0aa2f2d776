package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchOrders(t *testing.T) {
	orderDate := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"message": "Successfully fetched orders",
			"order": []map[string]any{
				{
					"_id":          "abc-123",
					"customerName": "Jane",
					"orderDate":    orderDate,
					"items": []map[string]any{
						{"itemName": "Widget", "quantity": 3, "price": 10},
						{"itemName": "Bolt", "quantity": 2, "price": 2.5},
					},
					"totalPrice": 35,
				},
				{
					"_id": "def-456",
				},
			},
		})
	}))
	defer server.Close()

	orders, err := New(server.URL).FetchOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "abc-123", orders[0].ID)
	assert.Equal(t, "Jane", orders[0].Customer)
	assert.Equal(t, 35.0, orders[0].Total)
	assert.Equal(t, orderDate.Local().Format("1/2/2006"), orders[0].Date)
	assert.Len(t, orders[0].Items, 2)

	// Missing fields fall back to the display defaults.
	assert.Equal(t, "def-456", orders[1].ID)
	assert.Equal(t, "No Name", orders[1].Customer)
	assert.Equal(t, 0.0, orders[1].Total)
	assert.Equal(t, "", orders[1].Date)
	assert.Empty(t, orders[1].Items)
}

func TestGetOrder_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Order not found"})
	}))
	defer server.Close()

	order, err := New(server.URL).GetOrder(context.Background(), "missing")
	assert.Nil(t, order)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Order not found", apiErr.Message)
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			CustomerName string `json:"customerName"`
			Items        []struct {
				ItemName string  `json:"itemName"`
				Quantity int     `json:"quantity"`
				Price    float64 `json:"price"`
			} `json:"items"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Jane", req.CustomerName)
		require.Len(t, req.Items, 1)
		assert.Equal(t, "Widget", req.Items[0].ItemName)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Order created successfully!",
			"order": map[string]any{
				"_id":          "new-order",
				"customerName": "Jane",
				"totalPrice":   30,
			},
		})
	}))
	defer server.Close()

	order, err := New(server.URL).CreateOrder(context.Background(), OrderInput{
		Customer: "Jane",
		Items:    []Item{{ItemName: "Widget", Quantity: 3, Price: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, "new-order", order.ID)
	assert.Equal(t, 30.0, order.Total)
}

func TestUpdateOrder_ValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/orders/update/abc-123", r.URL.Path)

		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Customer name is required"})
	}))
	defer server.Close()

	order, err := New(server.URL).UpdateOrder(context.Background(), "abc-123", OrderInput{})
	assert.Nil(t, order)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Customer name is required", apiErr.Message)
}

func TestDeleteOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/orders/delete/abc-123", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{"message": "Order deleted successfully!"})
		}))
		defer server.Close()

		assert.NoError(t, New(server.URL).DeleteOrder(context.Background(), "abc-123"))
	})

	t.Run("Not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Order not found"})
		}))
		defer server.Close()

		err := New(server.URL).DeleteOrder(context.Background(), "missing")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})
}

func TestAPIError_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	_, err := New(server.URL).FetchOrders(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "502")
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"message": "Successfully fetched orders", "order": []any{}})
	}))
	defer server.Close()

	orders, err := New(server.URL + "/").FetchOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}
