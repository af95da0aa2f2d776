package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"order-desk/internal/model"
	"order-desk/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error(), h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err, "Failed to create order")
		return
	}

	writeOrder(w, http.StatusCreated, "Order created successfully!", order)
}

// List handles GET /orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch orders")
		return
	}

	writeOrder(w, http.StatusOK, "Successfully fetched orders", orders)
}

// GetByID handles GET /orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch order")
		return
	}

	writeOrder(w, http.StatusOK, "Fetched single order", order)
}

// Update handles PATCH /orders/update/{id} requests.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error(), h.logger)
		return
	}

	order, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.writeServiceError(w, err, "Failed to update order")
		return
	}

	writeOrder(w, http.StatusOK, "Order updated successfully!", order)
}

// Delete handles DELETE /orders/delete/{id} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, "Failed to delete order")
		return
	}

	writeOrder(w, http.StatusOK, "Order deleted successfully!", order)
}

// orderID extracts and parses the id path parameter, answering 400 on
// malformed input.
func (h *OrderHandler) orderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id", raw, h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps service errors onto the wire contract: missing
// orders become 404, validation failures 400, anything else 500 with the
// route-specific failure message.
func (h *OrderHandler) writeServiceError(w http.ResponseWriter, err error, failMessage string) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		if domainErr == model.ErrOrderNotFound {
			writeJSON(w, http.StatusNotFound, errorEnvelope{Message: "Order not found"})
			return
		}
		writeError(w, http.StatusBadRequest, domainErr.Message, domainErr.Code, h.logger)
		return
	}

	writeError(w, http.StatusInternalServerError, failMessage, err.Error(), h.logger)
}
