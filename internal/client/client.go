// Package client is the frontend data-access layer for the orders API. It
// translates the wire shape (_id, customerName, totalPrice, orderDate) into
// the UI-facing shape (ID, Customer, Total, Date) and surfaces every
// non-success response as an *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Order is the UI-facing shape of an order.
type Order struct {
	ID       string
	Customer string
	Total    float64
	Date     string
	Items    []Item
}

// Item is the UI-facing shape of a line item.
type Item struct {
	ItemName string
	Quantity int
	Price    float64
}

// OrderInput is the payload for creating or updating an order.
type OrderInput struct {
	Customer string
	Items    []Item
}

// APIError is returned for any non-2xx response or undecodable body. Message
// carries the server's message field when the body parses as JSON, else the
// raw response text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Client calls the orders API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Wire shapes of the API envelope.
type wireItem struct {
	ItemName string  `json:"itemName"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type wireOrder struct {
	ID           string     `json:"_id"`
	CustomerName string     `json:"customerName"`
	OrderDate    *time.Time `json:"orderDate"`
	Items        []wireItem `json:"items"`
	TotalPrice   float64    `json:"totalPrice"`
}

type listEnvelope struct {
	Message string      `json:"message"`
	Order   []wireOrder `json:"order"`
}

type singleEnvelope struct {
	Message string    `json:"message"`
	Order   wireOrder `json:"order"`
}

type wireRequest struct {
	CustomerName string     `json:"customerName"`
	Items        []wireItem `json:"items"`
}

// FetchOrders retrieves and normalizes all orders.
func (c *Client) FetchOrders(ctx context.Context) ([]Order, error) {
	body, err := c.do(ctx, http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}

	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &APIError{StatusCode: http.StatusOK, Message: string(body)}
	}

	orders := make([]Order, len(env.Order))
	for i, o := range env.Order {
		orders[i] = mapOrder(o)
	}
	return orders, nil
}

// GetOrder retrieves and normalizes a single order.
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	return c.orderCall(ctx, http.MethodGet, "/orders/"+id, nil)
}

// CreateOrder creates an order and returns the normalized server record.
func (c *Client) CreateOrder(ctx context.Context, input OrderInput) (*Order, error) {
	return c.orderCall(ctx, http.MethodPost, "/orders", requestBody(input))
}

// UpdateOrder replaces the customer name and items of an existing order.
func (c *Client) UpdateOrder(ctx context.Context, id string, input OrderInput) (*Order, error) {
	return c.orderCall(ctx, http.MethodPatch, "/orders/update/"+id, requestBody(input))
}

// DeleteOrder deletes an order. Any non-success status is reported as an
// error carrying the server's message.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/orders/delete/"+id, nil)
	return err
}

// orderCall performs a request whose success body is a single-order envelope.
func (c *Client) orderCall(ctx context.Context, method, path string, payload any) (*Order, error) {
	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	var env singleEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &APIError{StatusCode: http.StatusOK, Message: string(body)}
	}

	order := mapOrder(env.Order)
	return &order, nil
}

// do performs an HTTP call and returns the raw body of a 2xx response. Any
// other status becomes an *APIError with the server message when parseable.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: serverMessage(body)}
	}

	return body, nil
}

// serverMessage extracts the message field from an error body, falling back
// to the raw text when the body is not JSON.
func serverMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return string(body)
}

// mapOrder normalizes a wire order to the UI shape, applying the display
// defaults for missing fields.
func mapOrder(o wireOrder) Order {
	customer := o.CustomerName
	if customer == "" {
		customer = "No Name"
	}

	date := ""
	if o.OrderDate != nil {
		date = o.OrderDate.Local().Format("1/2/2006")
	}

	items := make([]Item, len(o.Items))
	for i, item := range o.Items {
		items[i] = Item{ItemName: item.ItemName, Quantity: item.Quantity, Price: item.Price}
	}

	return Order{
		ID:       o.ID,
		Customer: customer,
		Total:    o.TotalPrice,
		Date:     date,
		Items:    items,
	}
}

// requestBody converts an input into the wire request shape.
func requestBody(input OrderInput) wireRequest {
	items := make([]wireItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = wireItem{ItemName: item.ItemName, Quantity: item.Quantity, Price: item.Price}
	}
	return wireRequest{CustomerName: input.Customer, Items: items}
}
